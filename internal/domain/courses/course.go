package courses

import (
	"time"

	"cohesion-academy/internal/domain/users"
)

type Course struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `gorm:"index" json:"category"`

	InstructorID string      `gorm:"type:uuid;not null;index" json:"instructor_id"`
	Instructor   *users.User `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`

	Views       int64 `gorm:"not null;default:0" json:"views"`
	IsPublished bool  `gorm:"not null;default:false;index" json:"is_published"`
	IsFree      bool  `gorm:"not null;default:false" json:"is_free"`

	Units []Unit `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"units,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID and Published satisfy visibility.Publishable.
func (c Course) OwnerID() string { return c.InstructorID }
func (c Course) Published() bool { return c.IsPublished }
