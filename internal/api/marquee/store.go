package marquee

import (
	"context"
	"encoding/json"
	"time"

	"cohesion-academy/internal/domain/marquee"
	"cohesion-academy/internal/infra/cache"
)

// Dismissal records live for two days: long enough to cover the calendar
// day they suppress, short enough to not accumulate.
const dismissalTTL = 48 * time.Hour

// dismissalStore adapts the key-value cache to the marquee policy's store
// port, one record per device.
type dismissalStore struct {
	kv cache.Store
}

var _ marquee.Store = dismissalStore{}

func dismissalKey(deviceKey string) string {
	return "marquee_dismissal:" + deviceKey
}

func (s dismissalStore) Get(ctx context.Context, key string) (*marquee.Dismissal, error) {
	raw, err := s.kv.Get(ctx, dismissalKey(key))
	if err == cache.ErrMiss {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d marquee.Dismissal
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		// Unreadable record is as good as none.
		return nil, nil
	}
	return &d, nil
}

func (s dismissalStore) Set(ctx context.Context, key string, d marquee.Dismissal) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, dismissalKey(key), string(raw), dismissalTTL)
}
