package articles

import (
	"errors"
	"net/http"

	"cohesion-academy/database"
	"cohesion-academy/internal/api/identity"
	"cohesion-academy/internal/domain/articles"
	"cohesion-academy/internal/domain/roles"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustOwnArticle(c *gin.Context, articleID string) (*articles.Article, bool) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return nil, false
	}

	var article articles.Article
	if err := database.DB.Where("id = ?", articleID).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return nil, false
	}

	if article.AuthorID != userID && roles.Parse(c.GetString("role")) != roles.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your article"})
		return nil, false
	}
	return &article, true
}

// GET /manage/articles
func ListOwn(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	var list []articles.Article
	if err := database.DB.
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": list})
}

// POST /manage/articles
func Create(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title        string  `json:"title" binding:"required"`
		Content      string  `json:"content"`
		ThumbnailURL *string `json:"thumbnail_url"`
		IsPublished  bool    `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := articles.Article{
		Title:        req.Title,
		Content:      req.Content,
		ThumbnailURL: req.ThumbnailURL,
		AuthorID:     userID,
		IsPublished:  req.IsPublished,
	}
	if err := database.DB.Create(&article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// PUT /manage/articles/:id
func Update(c *gin.Context) {
	article, ok := mustOwnArticle(c, c.Param("id"))
	if !ok {
		return
	}

	var req struct {
		Title        *string `json:"title"`
		Content      *string `json:"content"`
		ThumbnailURL *string `json:"thumbnail_url"`
		IsPublished  *bool   `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(article).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DELETE /manage/articles/:id
func Delete(c *gin.Context) {
	article, ok := mustOwnArticle(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Delete(article).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}
