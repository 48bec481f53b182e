package quiz

import (
	"reflect"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		key     []int
		answers []int
		want    int
	}{
		{"all correct", []int{1, 2, 0}, []int{1, 2, 0}, 100},
		{"two of three rounds to 67", []int{1, 2, 0}, []int{1, 2, 1}, 67},
		{"one of three rounds to 33", []int{1, 2, 0}, []int{1, 0, 1}, 33},
		{"none correct", []int{0, 1}, []int{1, 0}, 0},
		{"empty key scores zero", []int{}, []int{0, 1}, 0},
		{"nil key scores zero", nil, nil, 0},
		{"short answer vector", []int{0, 1, 2, 3}, []int{0}, 25},
		{"extra answers ignored", []int{0}, []int{0, 1, 2}, 100},
		{"unanswered is incorrect", []int{0, 1}, []int{Unanswered, 1}, 50},
		{"all unanswered", []int{0, 1, 2}, []int{Unanswered, Unanswered, Unanswered}, 0},
		{"half rounds up", []int{0}, []int{0}, 100},
		{"one of six rounds to 17", []int{0, 0, 0, 0, 0, 0}, []int{0, 1, 1, 1, 1, 1}, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.key, tt.answers); got != tt.want {
				t.Errorf("Score(%v, %v) = %d, want %d", tt.key, tt.answers, got, tt.want)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	key := []int{0, 1, 2, 3, 0, 1, 2}
	for picks := 0; picks <= len(key); picks++ {
		answers := make([]int, len(key))
		for i := range answers {
			if i < picks {
				answers[i] = key[i]
			} else {
				answers[i] = Unanswered
			}
		}
		got := Score(key, answers)
		if got < 0 || got > 100 {
			t.Fatalf("Score out of range for %d correct: %d", picks, got)
		}
	}
}

func TestKeyOf(t *testing.T) {
	questions := []Question{
		{Question: "q1", Options: []string{"a", "b"}, Answer: 1},
		{Question: "q2", Options: []string{"a", "b", "c"}, Answer: 2},
		{Question: "q3", Options: []string{"a", "b"}, Answer: 0},
	}
	want := []int{1, 2, 0}
	if got := KeyOf(questions); !reflect.DeepEqual(got, want) {
		t.Errorf("KeyOf() = %v, want %v", got, want)
	}
}
