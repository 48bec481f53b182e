package sitecontent

import (
	"testing"
	"time"
)

func TestKnownKey(t *testing.T) {
	for _, key := range []string{KeyAbout, KeyContact, KeyTerms, KeyMembershipSteps, KeyMarqueeMessages} {
		if !KnownKey(key) {
			t.Errorf("KnownKey(%q) = false", key)
		}
	}
	for _, key := range []string{"", "secrets", "About", "marquee"} {
		if KnownKey(key) {
			t.Errorf("KnownKey(%q) = true", key)
		}
	}
}

func TestVersionChangesWithUpdatedAt(t *testing.T) {
	s := Setting{Key: KeyMarqueeMessages, UpdatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	v1 := s.Version()

	s.UpdatedAt = s.UpdatedAt.Add(time.Millisecond)
	v2 := s.Version()

	if v1 == v2 {
		t.Errorf("version did not change across an edit: %q", v1)
	}
}

func TestVersionTimezoneInvariant(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+7", 7*3600)

	a := Setting{UpdatedAt: at}.Version()
	b := Setting{UpdatedAt: at.In(loc)}.Version()
	if a != b {
		t.Errorf("version depends on stored timezone: %q vs %q", a, b)
	}
}
