package courses

import (
	"time"

	"cohesion-academy/internal/domain/courses"
	"cohesion-academy/internal/domain/quiz"
)

// QuestionDTO is a quiz question as sent to viewers: the answer key never
// leaves the server, grading happens on submit.
type QuestionDTO struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// UnitDTO withholds the playable media for locked viewers. Title and order
// stay visible so the course remains discoverable.
type UnitDTO struct {
	ID         string        `json:"id"`
	CourseID   string        `json:"course_id"`
	Title      string        `json:"title"`
	OrderIndex int           `json:"order_index"`
	YoutubeID  string        `json:"youtube_id,omitempty"`
	Quiz       []QuestionDTO `json:"quiz,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

func toUnitDTO(u courses.Unit, unlocked bool) UnitDTO {
	dto := UnitDTO{
		ID:         u.ID,
		CourseID:   u.CourseID,
		Title:      u.Title,
		OrderIndex: u.OrderIndex,
		CreatedAt:  u.CreatedAt,
	}
	if !unlocked {
		return dto
	}

	dto.YoutubeID = u.YoutubeID
	if qs, err := u.Questions(); err == nil {
		dto.Quiz = toQuestionDTOs(qs)
	}
	return dto
}

func toQuestionDTOs(qs []quiz.Question) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionDTO{Question: q.Question, Options: q.Options})
	}
	return out
}
