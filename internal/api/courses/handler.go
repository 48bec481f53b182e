package courses

import (
	"errors"
	"net/http"
	"time"

	"cohesion-academy/database"
	"cohesion-academy/internal/api/hidden"
	"cohesion-academy/internal/api/identity"
	"cohesion-academy/internal/domain/access"
	"cohesion-academy/internal/domain/courses"
	"cohesion-academy/internal/domain/quiz"
	"cohesion-academy/internal/domain/roles"
	"cohesion-academy/internal/domain/visibility"
	"cohesion-academy/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GET /courses
// Published courses, minus the viewer's hidden instructors when signed in.
func ListCourses(c *gin.Context) {
	q := publishedCoursesQuery(database.DB).Preload("Instructor")
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var list []courses.Course
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
		return
	}

	hiddenSet := map[string]bool{}
	if viewerID := c.GetString("user_id"); viewerID != "" {
		set, err := hidden.SetFor(c.Request.Context(), viewerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
			return
		}
		hiddenSet = set
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": visibility.Visible(list, hiddenSet, false),
	})
}

// GET /courses/:id
// Detail payload carries the gate decision; locked viewers get unit titles
// but no playable media. Each successful load counts one view.
func GetCourse(c *gin.Context) {
	var course courses.Course
	err := database.DB.
		Preload("Instructor").
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("id = ?", c.Param("id")).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load course"})
		return
	}

	id := identity.Current(c)

	// Unpublished courses exist only for their owner and admins.
	if !course.IsPublished {
		if id == nil || (id.UserID != course.InstructorID && id.Role != roles.Admin) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
	}

	gate := access.Evaluate(time.Now(), id, access.Item{IsFree: course.IsFree})
	unlocked := gate == access.Unlocked

	units := make([]UnitDTO, 0, len(course.Units))
	for _, u := range course.Units {
		units = append(units, toUnitDTO(u, unlocked))
	}
	course.Units = nil

	if course.IsPublished {
		if err := incrementViews(database.DB, course.ID); err != nil {
			logger.L.Warn("view counter increment failed",
				zap.String("course_id", course.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"course": course,
		"units":  units,
		"gate":   gate,
	})
}

// POST /units/:id/quiz
// Grades server-side; the result is returned, never stored.
func SubmitQuiz(c *gin.Context) {
	var body struct {
		Answers []int `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var unit courses.Unit
	if err := database.DB.Where("id = ?", c.Param("id")).First(&unit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}

	var course courses.Course
	if err := database.DB.Where("id = ?", unit.CourseID).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	id := identity.Current(c)
	gate := access.Evaluate(time.Now(), id, access.Item{IsFree: course.IsFree})
	switch gate {
	case access.RequiresAuth:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to take quizzes", "gate": gate})
		return
	case access.LockedPreview:
		c.JSON(http.StatusForbidden, gin.H{"error": "Quiz requires an active membership", "gate": gate})
		return
	}

	questions, err := unit.Questions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Quiz data unavailable"})
		return
	}

	score := quiz.Score(quiz.KeyOf(questions), body.Answers)
	c.JSON(http.StatusOK, gin.H{
		"score": score,
		"total": len(questions),
	})
}

// POST /courses/:id/favorite
func AddFavorite(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}
	courseID := c.Param("id")

	var course courses.Course
	if err := publishedCoursesQuery(database.DB).Where("id = ?", courseID).First(&course).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	fav := courses.Favorite{UserID: userID, CourseID: courseID}
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course favorited"})
}

// DELETE /courses/:id/favorite
func RemoveFavorite(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	if err := database.DB.
		Where("user_id = ? AND course_id = ?", userID, c.Param("id")).
		Delete(&courses.Favorite{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

// GET /me/favorites
func ListFavorites(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	var favs []courses.Favorite
	if err := database.DB.
		Preload("Course").
		Preload("Course.Instructor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}
