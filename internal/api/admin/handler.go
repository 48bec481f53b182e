package admin

import (
	"net/http"
	"time"

	"cohesion-academy/database"
	"cohesion-academy/internal/domain/articles"
	"cohesion-academy/internal/domain/courses"
	"cohesion-academy/internal/domain/events"
	"cohesion-academy/internal/domain/hidden"
	"cohesion-academy/internal/domain/roles"
	"cohesion-academy/internal/domain/schedule"
	"cohesion-academy/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID                string     `json:"id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	AuthProvider      string     `json:"auth_provider"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
	MembershipActive  bool       `json:"membership_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalCourses     int64 `json:"total_courses"`
	PublishedCourses int64 `json:"published_courses"`
	TotalArticles    int64 `json:"total_articles"`
	TotalEvents      int64 `json:"total_events"`
	ActiveMembers    int64 `json:"active_members"`
	HiddenRelations  int64 `json:"hidden_relations"`
}

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var stats AdminStats
	now := time.Now()

	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&courses.Course{}).Count(&stats.TotalCourses)
	database.DB.Model(&courses.Course{}).Where("is_published = ?", true).Count(&stats.PublishedCourses)
	database.DB.Model(&articles.Article{}).Count(&stats.TotalArticles)
	database.DB.Model(&events.Event{}).Count(&stats.TotalEvents)
	database.DB.Model(&hidden.HiddenInstructor{}).Count(&stats.HiddenRelations)
	database.DB.Model(&users.User{}).
		Where("(subscription_start IS NULL OR subscription_start <= ?) AND (subscription_end IS NULL OR subscription_end > ?)", now, now).
		Where("subscription_start IS NOT NULL OR subscription_end IS NOT NULL").
		Count(&stats.ActiveMembers)

	c.JSON(http.StatusOK, stats)
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	now := time.Now()
	adminUsers := make([]AdminUser, 0, len(list))
	for _, u := range list {
		adminUsers = append(adminUsers, AdminUser{
			ID:                u.ID,
			FullName:          u.FullName,
			Email:             u.Email,
			Role:              u.Role,
			AuthProvider:      u.AuthProvider,
			SubscriptionStart: u.SubscriptionStart,
			SubscriptionEnd:   u.SubscriptionEnd,
			MembershipActive:  schedule.Active(now, u.SubscriptionStart, u.SubscriptionEnd),
			CreatedAt:         u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}

// GET /admin/users/:id
func GetUserDetails(c *gin.Context) {
	var user users.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var ownCourses []courses.Course
	database.DB.Where("instructor_id = ?", user.ID).Find(&ownCourses)

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"courses": ownCourses,
	})
}

// PUT /admin/users/:id/role
func SetUserRole(c *gin.Context) {
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only exact role names are accepted here; Parse would silently
	// downgrade typos to student.
	switch roles.Role(body.Role) {
	case roles.Student, roles.Instructor, roles.Admin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	res := database.DB.Model(&users.User{}).Where("id = ?", c.Param("id")).Update("role", body.Role)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

// PUT /admin/users/:id/subscription
// Manual membership grant; payment handling lives outside this system.
// Null bounds are unbounded, clearing both revokes membership entirely.
func SetUserSubscription(c *gin.Context) {
	var body struct {
		SubscriptionStart *time.Time `json:"subscription_start"`
		SubscriptionEnd   *time.Time `json:"subscription_end"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&users.User{}).Where("id = ?", c.Param("id")).Updates(map[string]interface{}{
		"subscription_start": body.SubscriptionStart,
		"subscription_end":   body.SubscriptionEnd,
	})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription updated"})
}
