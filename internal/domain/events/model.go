package events

import "time"

// Event is a hero-slider entry. IsActive is the admin kill switch; the
// date window additionally bounds when it shows.
type Event struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title    string `gorm:"not null" json:"title"`
	ImageURL string `gorm:"not null" json:"image_url"`
	LinkURL  string `json:"link_url"`

	IsActive  bool       `gorm:"not null;default:true;index" json:"is_active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
