package courses

import (
	"encoding/json"
	"errors"
	"net/http"

	"cohesion-academy/database"
	"cohesion-academy/internal/api/identity"
	"cohesion-academy/internal/domain/courses"
	"cohesion-academy/internal/domain/quiz"
	"cohesion-academy/internal/domain/roles"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// mustOwnCourse loads the course and enforces the mutation rule: only the
// creating instructor or an admin may touch it.
func mustOwnCourse(c *gin.Context, courseID string) (*courses.Course, bool) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return nil, false
	}

	var course courses.Course
	if err := database.DB.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load course"})
		return nil, false
	}

	if course.InstructorID != userID && roles.Parse(c.GetString("role")) != roles.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your course"})
		return nil, false
	}
	return &course, true
}

func validQuiz(qs []quiz.Question) bool {
	for _, q := range qs {
		if q.Question == "" || len(q.Options) < 2 {
			return false
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return false
		}
	}
	return true
}

// GET /manage/courses
// The instructor's own courses, drafts included.
func ListOwnCourses(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	var list []courses.Course
	if err := instructorCoursesQuery(database.DB, userID).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": list})
}

// POST /manage/courses
func CreateCourse(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title        string `json:"title" binding:"required"`
		Description  string `json:"description"`
		ThumbnailURL string `json:"thumbnail_url"`
		Category     string `json:"category"`
		IsFree       bool   `json:"is_free"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := courses.Course{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		InstructorID: userID,
		IsFree:       req.IsFree,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"course": course})
}

// PUT /manage/courses/:id
func UpdateCourse(c *gin.Context) {
	course, ok := mustOwnCourse(c, c.Param("id"))
	if !ok {
		return
	}

	var req struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		ThumbnailURL *string `json:"thumbnail_url"`
		Category     *string `json:"category"`
		IsFree       *bool   `json:"is_free"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsFree != nil {
		updates["is_free"] = *req.IsFree
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(course).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}

// DELETE /manage/courses/:id
// Units cascade at the database level.
func DeleteCourse(c *gin.Context) {
	course, ok := mustOwnCourse(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Delete(course).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

// POST /manage/courses/:id/publish
func PublishCourse(c *gin.Context) {
	setPublished(c, true)
}

// POST /manage/courses/:id/unpublish
func UnpublishCourse(c *gin.Context) {
	setPublished(c, false)
}

func setPublished(c *gin.Context, published bool) {
	course, ok := mustOwnCourse(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Model(course).Update("is_published", published).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}

// POST /manage/courses/:id/units
func CreateUnit(c *gin.Context) {
	course, ok := mustOwnCourse(c, c.Param("id"))
	if !ok {
		return
	}

	var req struct {
		Title      string          `json:"title" binding:"required"`
		YoutubeID  string          `json:"youtube_id"`
		OrderIndex *int            `json:"order_index"`
		Quiz       []quiz.Question `json:"quiz"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validQuiz(req.Quiz) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz data"})
		return
	}

	unit := courses.Unit{
		CourseID:  course.ID,
		Title:     req.Title,
		YoutubeID: req.YoutubeID,
	}
	if req.OrderIndex != nil {
		unit.OrderIndex = *req.OrderIndex
	} else {
		var count int64
		database.DB.Model(&courses.Unit{}).Where("course_id = ?", course.ID).Count(&count)
		unit.OrderIndex = int(count)
	}
	if raw, err := json.Marshal(req.Quiz); err == nil {
		unit.QuizData = raw
	}

	if err := database.DB.Create(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create unit"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"unit": unit})
}

// PUT /manage/units/:id
func UpdateUnit(c *gin.Context) {
	var unit courses.Unit
	if err := database.DB.Where("id = ?", c.Param("id")).First(&unit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}

	if _, ok := mustOwnCourse(c, unit.CourseID); !ok {
		return
	}

	var req struct {
		Title      *string         `json:"title"`
		YoutubeID  *string         `json:"youtube_id"`
		OrderIndex *int            `json:"order_index"`
		Quiz       []quiz.Question `json:"quiz"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != "" {
		updates["title"] = *req.Title
	}
	if req.YoutubeID != nil {
		updates["youtube_id"] = *req.YoutubeID
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}
	if req.Quiz != nil {
		if !validQuiz(req.Quiz) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz data"})
			return
		}
		raw, _ := json.Marshal(req.Quiz)
		updates["quiz_data"] = raw
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&unit).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update unit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// DELETE /manage/units/:id
func DeleteUnit(c *gin.Context) {
	var unit courses.Unit
	if err := database.DB.Where("id = ?", c.Param("id")).First(&unit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		return
	}

	if _, ok := mustOwnCourse(c, unit.CourseID); !ok {
		return
	}

	if err := database.DB.Delete(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete unit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted"})
}

// PUT /manage/courses/:id/units/reorder
func ReorderUnits(c *gin.Context) {
	course, ok := mustOwnCourse(c, c.Param("id"))
	if !ok {
		return
	}

	var req struct {
		UnitIDs []string `json:"unit_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i, unitID := range req.UnitIDs {
			res := tx.Model(&courses.Unit{}).
				Where("id = ? AND course_id = ?", unitID, course.ID).
				Update("order_index", i)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder units"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Units reordered"})
}
