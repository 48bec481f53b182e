package users

import (
	"time"
)

type User struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	FullName     string  `gorm:"not null" json:"full_name"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password     *string `gorm:"" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	Role string `gorm:"not null;default:'student';index" json:"role"`

	AvatarURL   *string `json:"avatar_url,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	DonateURL   *string `gorm:"column:donate_url" json:"donate_url,omitempty"`
	DonateEmbed *string `gorm:"column:donate_embed" json:"donate_embed,omitempty"`

	// Membership window granted by an admin. Nil bounds are unbounded.
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
