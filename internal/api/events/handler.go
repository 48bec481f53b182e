package events

import (
	"net/http"
	"time"

	"cohesion-academy/database"
	"cohesion-academy/internal/domain/events"
	"cohesion-academy/internal/domain/schedule"

	"github.com/gin-gonic/gin"
)

// GET /events
// Active slider entries: admin-enabled and inside their date window.
func ListActive(c *gin.Context) {
	var list []events.Event
	if err := database.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}

	now := time.Now()
	active := make([]events.Event, 0, len(list))
	for _, e := range list {
		if schedule.Active(now, e.StartDate, e.EndDate) {
			active = append(active, e)
		}
	}

	c.JSON(http.StatusOK, gin.H{"events": active})
}
