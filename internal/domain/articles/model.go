package articles

import (
	"time"

	"cohesion-academy/internal/domain/users"
)

type Article struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title        string  `gorm:"not null" json:"title"`
	Content      string  `gorm:"type:text" json:"content"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`

	AuthorID string      `gorm:"type:uuid;not null;index" json:"author_id"`
	Author   *users.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	IsPublished bool `gorm:"not null;default:false;index" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Article) OwnerID() string { return a.AuthorID }
func (a Article) Published() bool { return a.IsPublished }
