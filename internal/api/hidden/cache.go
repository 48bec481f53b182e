package hidden

import (
	"context"
	"encoding/json"
	"time"

	"cohesion-academy/database"
	"cohesion-academy/internal/domain/hidden"
	"cohesion-academy/internal/infra/cache"
)

const setTTL = 15 * time.Minute

// store is wired in main. Defaults to an in-memory store so tests and
// cache-less deployments work unchanged.
var store cache.Store = cache.NewMemory()

func UseStore(s cache.Store) {
	store = s
}

func setKey(viewerID string) string {
	return "hidden_set:" + viewerID
}

// SetFor returns the set of instructor ids the viewer has hidden, reading
// through the cache. A cache failure falls back to the database; a database
// failure returns the error so callers can render "unavailable" instead of
// silently showing everything.
func SetFor(ctx context.Context, viewerID string) (map[string]bool, error) {
	if viewerID == "" {
		return map[string]bool{}, nil
	}

	if raw, err := store.Get(ctx, setKey(viewerID)); err == nil {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err == nil {
			set := make(map[string]bool, len(ids))
			for _, id := range ids {
				set[id] = true
			}
			return set, nil
		}
	}

	var rows []hidden.HiddenInstructor
	if err := database.DB.WithContext(ctx).Where("user_id = ?", viewerID).Find(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	set := make(map[string]bool, len(rows))
	for _, r := range rows {
		ids = append(ids, r.InstructorID)
		set[r.InstructorID] = true
	}

	if raw, err := json.Marshal(ids); err == nil {
		_ = store.Set(ctx, setKey(viewerID), string(raw), setTTL)
	}
	return set, nil
}

// Invalidate drops the cached set after a hide/unhide write.
func Invalidate(ctx context.Context, viewerID string) {
	_ = store.Del(ctx, setKey(viewerID))
}
