package articles

import (
	"errors"
	"net/http"

	"cohesion-academy/database"
	"cohesion-academy/internal/api/hidden"
	"cohesion-academy/internal/domain/articles"
	"cohesion-academy/internal/domain/visibility"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /articles
func List(c *gin.Context) {
	var list []articles.Article
	if err := database.DB.
		Preload("Author").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	hiddenSet := map[string]bool{}
	if viewerID := c.GetString("user_id"); viewerID != "" {
		set, err := hidden.SetFor(c.Request.Context(), viewerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
			return
		}
		hiddenSet = set
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": visibility.Visible(list, hiddenSet, false),
	})
}

// GET /articles/:id
func Get(c *gin.Context) {
	var article articles.Article
	err := database.DB.
		Preload("Author").
		Where("id = ? AND is_published = ?", c.Param("id"), true).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
