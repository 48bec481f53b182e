package courses

import "time"

type Favorite struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_course,priority:1" json:"user_id"`
	CourseID string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_course,priority:2" json:"course_id"`

	Course *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
