package hidden

import (
	"time"

	"cohesion-academy/internal/domain/users"
)

// HiddenInstructor is a viewer-scoped opt-out: courses by InstructorID stop
// appearing in UserID's listings. The pair is unique, so hiding twice is a
// no-op.
type HiddenInstructor struct {
	ID uint `gorm:"primaryKey" json:"-"`

	UserID       string `gorm:"type:uuid;not null;uniqueIndex:idx_hidden_user_instructor,priority:1" json:"user_id"`
	InstructorID string `gorm:"type:uuid;not null;uniqueIndex:idx_hidden_user_instructor,priority:2" json:"instructor_id"`

	Instructor *users.User `gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE" json:"instructor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
