package courses

import (
	"encoding/json"
	"time"

	"cohesion-academy/internal/domain/quiz"
)

type Unit struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	CourseID string `gorm:"type:uuid;not null;index:idx_units_course_order,priority:1" json:"course_id"`

	Title      string `gorm:"not null" json:"title"`
	YoutubeID  string `gorm:"column:youtube_id" json:"youtube_id,omitempty"`
	OrderIndex int    `gorm:"not null;default:0;index:idx_units_course_order,priority:2" json:"order_index"`

	QuizData json.RawMessage `gorm:"type:jsonb;not null;default:'[]'" json:"quiz_data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Questions decodes the unit's quiz payload. An empty or null column is a
// quiz with no questions, not an error.
func (u Unit) Questions() ([]quiz.Question, error) {
	if len(u.QuizData) == 0 {
		return nil, nil
	}
	var qs []quiz.Question
	if err := json.Unmarshal(u.QuizData, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}
