package sitecontent

import (
	"encoding/json"
	"time"
)

// Known setting keys. Content shape is editor-defined JSON per key.
const (
	KeyAbout           = "about"
	KeyContact         = "contact"
	KeyTerms           = "terms"
	KeyMembershipSteps = "membership_steps"
	KeyMarqueeMessages = "marquee_messages"
)

// Setting is one admin-edited site content record. UpdatedAt doubles as the
// content version token: every upsert bumps it, which invalidates stale
// marquee dismissals.
type Setting struct {
	ID      uint            `gorm:"primaryKey" json:"-"`
	Key     string          `gorm:"not null;uniqueIndex" json:"key"`
	Content json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`

	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Version returns the opaque content-version token for this record.
func (s Setting) Version() string {
	return s.UpdatedAt.UTC().Format(time.RFC3339Nano)
}

func KnownKey(key string) bool {
	switch key {
	case KeyAbout, KeyContact, KeyTerms, KeyMembershipSteps, KeyMarqueeMessages:
		return true
	}
	return false
}
