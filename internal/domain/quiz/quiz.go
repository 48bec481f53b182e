package quiz

import "math"

// Question is one multiple-choice quiz entry as stored on a course unit.
// Answer is the index into Options.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Unanswered marks a question the respondent skipped.
const Unanswered = -1

// Score grades an answer vector against the key and returns a rounded
// percentage in [0,100]. Answers beyond len(answers), Unanswered entries
// and out-of-range picks all count as incorrect.
//
// An empty key scores 0. The product has no zero-question quizzes today;
// 0 keeps the reducer total without dividing by zero.
func Score(key []int, answers []int) int {
	if len(key) == 0 {
		return 0
	}
	correct := 0
	for i, want := range key {
		if i < len(answers) && answers[i] != Unanswered && answers[i] == want {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(key))))
}

// KeyOf extracts the answer key from a unit's questions.
func KeyOf(questions []Question) []int {
	key := make([]int, len(questions))
	for i, q := range questions {
		key[i] = q.Answer
	}
	return key
}
