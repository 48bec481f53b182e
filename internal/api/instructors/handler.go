package instructors

import (
	"errors"
	"net/http"

	"cohesion-academy/database"
	"cohesion-academy/internal/domain/courses"
	"cohesion-academy/internal/domain/roles"
	"cohesion-academy/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /instructors
func List(c *gin.Context) {
	var list []users.User
	if err := database.DB.
		Where("role = ?", string(roles.Instructor)).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load instructors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"instructors": list})
}

// GET /instructors/:id
// Public profile with the instructor's published courses and total views.
func Get(c *gin.Context) {
	var instructor users.User
	err := database.DB.
		Where("id = ? AND role IN ?", c.Param("id"), []string{string(roles.Instructor), string(roles.Admin)}).
		First(&instructor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load instructor"})
		return
	}

	var list []courses.Course
	if err := database.DB.
		Where("instructor_id = ? AND is_published = ?", instructor.ID, true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
		return
	}

	var totalViews int64
	for _, course := range list {
		totalViews += course.Views
	}

	c.JSON(http.StatusOK, gin.H{
		"instructor":  instructor,
		"courses":     list,
		"total_views": totalViews,
	})
}
