package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"cohesion-academy/database"
	"cohesion-academy/internal/domain/sitecontent"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /site/:key
// Public site content: about, contact, terms, membership_steps.
func GetSetting(c *gin.Context) {
	key := c.Param("key")
	if !sitecontent.KnownKey(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown setting"})
		return
	}

	var setting sitecontent.Setting
	err := database.DB.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":        setting.Key,
		"content":    setting.Content,
		"updated_at": setting.UpdatedAt,
		"version":    setting.Version(),
	})
}

// PUT /admin/site/:key
// Upsert bumps UpdatedAt, which is the content version: any edit
// invalidates outstanding marquee dismissals.
func UpsertSetting(c *gin.Context) {
	key := c.Param("key")
	if !sitecontent.KnownKey(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown setting"})
		return
	}

	var body struct {
		Content json.RawMessage `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !json.Valid(body.Content) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content must be valid JSON"})
		return
	}

	setting := sitecontent.Setting{Key: key, Content: body.Content}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}

	var saved sitecontent.Setting
	if err := database.DB.Where("key = ?", key).First(&saved).Error; err == nil {
		setting = saved
	}

	c.JSON(http.StatusOK, gin.H{
		"key":        setting.Key,
		"content":    setting.Content,
		"updated_at": setting.UpdatedAt,
		"version":    setting.Version(),
	})
}
