package courses

import (
	"encoding/json"
	"testing"

	"cohesion-academy/internal/domain/courses"
	"cohesion-academy/internal/domain/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUnit() courses.Unit {
	return courses.Unit{
		ID:         "u-1",
		CourseID:   "c-1",
		Title:      "Intro",
		OrderIndex: 0,
		YoutubeID:  "dQw4w9WgXcQ",
		QuizData:   json.RawMessage(`[{"question":"2+2?","options":["3","4"],"answer":1}]`),
	}
}

func TestToUnitDTOUnlocked(t *testing.T) {
	dto := toUnitDTO(sampleUnit(), true)

	assert.Equal(t, "dQw4w9WgXcQ", dto.YoutubeID)
	require.Len(t, dto.Quiz, 1)
	assert.Equal(t, "2+2?", dto.Quiz[0].Question)
	assert.Equal(t, []string{"3", "4"}, dto.Quiz[0].Options)
}

func TestToUnitDTOLockedWithholdsMedia(t *testing.T) {
	dto := toUnitDTO(sampleUnit(), false)

	assert.Empty(t, dto.YoutubeID, "locked viewers must not receive the video id")
	assert.Empty(t, dto.Quiz, "locked viewers must not receive the quiz")
	assert.Equal(t, "Intro", dto.Title, "metadata stays visible")
	assert.Equal(t, 0, dto.OrderIndex)
}

// The answer key must never be serializable out of the DTO, locked or not.
func TestQuestionDTONeverCarriesAnswer(t *testing.T) {
	dto := toUnitDTO(sampleUnit(), true)
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"answer"`)
}

func TestValidQuiz(t *testing.T) {
	tests := []struct {
		name string
		qs   []quiz.Question
		want bool
	}{
		{"empty quiz is fine", nil, true},
		{"well formed", []quiz.Question{{Question: "q", Options: []string{"a", "b"}, Answer: 1}}, true},
		{"missing text", []quiz.Question{{Options: []string{"a", "b"}, Answer: 0}}, false},
		{"single option", []quiz.Question{{Question: "q", Options: []string{"a"}, Answer: 0}}, false},
		{"answer out of range", []quiz.Question{{Question: "q", Options: []string{"a", "b"}, Answer: 2}}, false},
		{"negative answer", []quiz.Question{{Question: "q", Options: []string{"a", "b"}, Answer: -1}}, false},
		{"one bad question fails the batch", []quiz.Question{
			{Question: "ok", Options: []string{"a", "b"}, Answer: 0},
			{Question: "", Options: []string{"a", "b"}, Answer: 0},
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validQuiz(tt.qs))
		})
	}
}
