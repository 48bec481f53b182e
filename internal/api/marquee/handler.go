package marquee

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cohesion-academy/database"
	"cohesion-academy/internal/domain/marquee"
	"cohesion-academy/internal/domain/sitecontent"
	"cohesion-academy/internal/infra/cache"
	"cohesion-academy/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var policy = &marquee.Policy{Store: dismissalStore{kv: cache.NewMemory()}}

// UseStore rebinds dismissal persistence to the shared cache. Called from
// main after the cache is up.
func UseStore(kv cache.Store) {
	policy.Store = dismissalStore{kv: kv}
}

// rawMessage is the admin-edited wire form: dates are day strings from the
// dashboard's date inputs.
type rawMessage struct {
	Text      string `json:"text"`
	Enabled   bool   `json:"enabled"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type rawContent struct {
	Messages []rawMessage `json:"messages"`
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// endOfDay makes a day-granular end bound cover its whole day, matching
// the exclusive-end window convention.
func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	end := t.AddDate(0, 0, 1)
	return &end
}

func loadSettings() (marquee.Settings, error) {
	var row sitecontent.Setting
	err := database.DB.Where("key = ?", sitecontent.KeyMarqueeMessages).First(&row).Error
	if err != nil {
		return marquee.Settings{}, err
	}

	var content rawContent
	if err := json.Unmarshal(row.Content, &content); err != nil {
		return marquee.Settings{}, err
	}

	msgs := make([]marquee.Message, 0, len(content.Messages))
	for _, m := range content.Messages {
		msgs = append(msgs, marquee.Message{
			Text:      m.Text,
			Enabled:   m.Enabled,
			StartDate: parseDay(m.StartDate),
			EndDate:   endOfDay(parseDay(m.EndDate)),
		})
	}

	return marquee.Settings{Messages: msgs, Version: row.Version()}, nil
}

func deviceKey(c *gin.Context) string {
	if v := c.GetHeader("X-Device-ID"); v != "" {
		return v
	}
	return c.Query("device")
}

// GET /marquee
// Answers whether the banner may show for this device and with which
// messages. Timing (display delay, rotation interval) is returned so the
// surface can drive its own timers. A first visit without a device id gets
// one minted here; the client persists it and sends it back from then on.
func GetBanner(c *gin.Context) {
	device := deviceKey(c)
	if device == "" {
		device = uuid.NewString()
	}

	settings, err := loadSettings()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"eligible": false, "device": device})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load marquee settings"})
		return
	}

	eligible, active := policy.Eligible(c.Request.Context(), device, settings)
	if !eligible {
		c.JSON(http.StatusOK, gin.H{"eligible": false, "device": device, "version": settings.Version})
		return
	}

	texts := make([]string, 0, len(active))
	for _, m := range active {
		texts = append(texts, m.Text)
	}

	c.JSON(http.StatusOK, gin.H{
		"eligible":        true,
		"device":          device,
		"messages":        texts,
		"version":         settings.Version,
		"show_delay_ms":   marquee.DefaultShowDelay.Milliseconds(),
		"rotate_every_ms": marquee.DefaultRotateEvery.Milliseconds(),
	})
}

// POST /marquee/dismiss
// Best-effort: a failed write is logged and the dismissal still succeeds
// from the viewer's point of view.
func Dismiss(c *gin.Context) {
	var body struct {
		Device  string `json:"device"`
		Version string `json:"version" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	device := body.Device
	if device == "" {
		device = deviceKey(c)
	}
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing device id"})
		return
	}

	if err := policy.RecordDismissal(c.Request.Context(), device, body.Version); err != nil {
		logger.L.Warn("marquee dismissal persistence failed",
			zap.String("device", device), zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}
