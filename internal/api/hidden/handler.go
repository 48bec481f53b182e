package hidden

import (
	"errors"
	"net/http"

	"cohesion-academy/database"
	"cohesion-academy/internal/api/identity"
	"cohesion-academy/internal/domain/hidden"
	"cohesion-academy/internal/domain/roles"
	"cohesion-academy/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /me/hidden-instructors
func ListMine(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	var rows []hidden.HiddenInstructor
	if err := database.DB.
		Preload("Instructor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hidden instructors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hidden_instructors": rows})
}

// POST /me/hidden-instructors/:id
// Hiding an already-hidden instructor is a no-op.
func Hide(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}
	instructorID := c.Param("id")

	var instructor users.User
	if err := database.DB.Where("id = ? AND role = ?", instructorID, string(roles.Instructor)).First(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up instructor"})
		return
	}

	row := hidden.HiddenInstructor{UserID: userID, InstructorID: instructorID}
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hide instructor"})
		return
	}

	Invalidate(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Instructor hidden"})
}

// DELETE /me/hidden-instructors/:id
func Unhide(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}
	instructorID := c.Param("id")

	if err := database.DB.
		Where("user_id = ? AND instructor_id = ?", userID, instructorID).
		Delete(&hidden.HiddenInstructor{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unhide instructor"})
		return
	}

	Invalidate(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Instructor unhidden"})
}

// GET /admin/hidden-instructors
// Read-only aggregate view; only viewers themselves create or remove edges.
func AdminList(c *gin.Context) {
	var rows []hidden.HiddenInstructor
	if err := database.DB.
		Preload("Instructor").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hidden instructors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hidden_instructors": rows, "count": len(rows)})
}
