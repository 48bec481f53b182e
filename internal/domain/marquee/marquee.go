package marquee

import (
	"context"
	"time"

	"cohesion-academy/internal/domain/schedule"
)

// Message is one rotating announcement. Disabled or out-of-window messages
// never show.
type Message struct {
	Text      string     `json:"text"`
	Enabled   bool       `json:"enabled"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// Settings is the admin-edited marquee record. Version is an opaque token
// (the settings row's updated_at) that changes on every edit, so stale
// dismissals stop suppressing the banner the moment content changes.
type Settings struct {
	Messages []Message
	Version  string
}

// Dismissal is the per-device record written when a viewer closes the
// banner. It suppresses redisplay only for the rest of that calendar day,
// and only while the content version is unchanged.
type Dismissal struct {
	DismissedDate  string `json:"dismissed_date"`
	ContentVersion string `json:"content_version"`
}

// Store persists dismissal records keyed by device. Get returns nil when no
// record exists.
type Store interface {
	Get(ctx context.Context, key string) (*Dismissal, error)
	Set(ctx context.Context, key string, d Dismissal) error
}

const (
	DefaultShowDelay   = 15 * time.Second
	DefaultRotateEvery = 30 * time.Second
)

// Policy decides whether the banner may show and records dismissals. Zero
// valued durations fall back to the defaults; Now defaults to time.Now.
type Policy struct {
	Store       Store
	Now         func() time.Time
	ShowDelay   time.Duration
	RotateEvery time.Duration
}

func (p *Policy) clock() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Policy) showDelay() time.Duration {
	if p.ShowDelay > 0 {
		return p.ShowDelay
	}
	return DefaultShowDelay
}

func (p *Policy) rotateEvery() time.Duration {
	if p.RotateEvery > 0 {
		return p.RotateEvery
	}
	return DefaultRotateEvery
}

// Day formats t as the calendar-day string used in dismissal records.
func Day(t time.Time) string {
	return t.Format("2006-01-02")
}

// ActiveMessages keeps the enabled, non-empty, window-active messages,
// preserving order.
func ActiveMessages(now time.Time, msgs []Message) []Message {
	active := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if !m.Enabled || m.Text == "" {
			continue
		}
		if !schedule.Active(now, m.StartDate, m.EndDate) {
			continue
		}
		active = append(active, m)
	}
	return active
}

// Suppressed reports whether a persisted dismissal still holds: same
// calendar day and same content version. A day rollover or any admin edit
// reactivates the banner, so edits are never silently missed and the
// nuisance caps at once per day.
func Suppressed(d *Dismissal, now time.Time, version string) bool {
	if d == nil {
		return false
	}
	return d.DismissedDate == Day(now) && d.ContentVersion == version
}

// Eligible answers "may the banner show now for this device" and returns
// the active messages to rotate through. Store read failures count as "no
// record": losing a dismissal shows the banner once more, which beats
// hiding announcements on a flaky store.
func (p *Policy) Eligible(ctx context.Context, deviceKey string, s Settings) (bool, []Message) {
	now := p.clock()
	active := ActiveMessages(now, s.Messages)
	if len(active) == 0 {
		return false, nil
	}
	d, err := p.Store.Get(ctx, deviceKey)
	if err != nil {
		d = nil
	}
	if Suppressed(d, now, s.Version) {
		return false, nil
	}
	return true, active
}

// RecordDismissal persists a same-day dismissal for the current content
// version. Best-effort; the caller may log the error but should not fail
// the request on it.
func (p *Policy) RecordDismissal(ctx context.Context, deviceKey, version string) error {
	return p.Store.Set(ctx, deviceKey, Dismissal{
		DismissedDate:  Day(p.clock()),
		ContentVersion: version,
	})
}
