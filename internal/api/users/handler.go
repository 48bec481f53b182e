package users

import (
	"net/http"
	"time"

	"cohesion-academy/database"
	"cohesion-academy/internal/api/identity"
	"cohesion-academy/internal/domain/access"
	"cohesion-academy/internal/domain/roles"
	"cohesion-academy/internal/domain/schedule"
	"cohesion-academy/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /me
func GetCurrentUser(c *gin.Context) {
	u := identity.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now()
	id := &access.Identity{
		UserID:            u.ID,
		Role:              roles.Parse(u.Role),
		SubscriptionStart: u.SubscriptionStart,
		SubscriptionEnd:   u.SubscriptionEnd,
	}

	c.JSON(http.StatusOK, gin.H{
		"user": u,
		"membership": gin.H{
			"active":             schedule.Active(now, u.SubscriptionStart, u.SubscriptionEnd),
			"subscription_start": u.SubscriptionStart,
			"subscription_end":   u.SubscriptionEnd,
		},
		// What a paid course would decide for this viewer right now.
		"paid_content": access.Evaluate(now, id, access.Item{IsFree: false}),
	})
}

// PUT /me
func UpdateProfile(c *gin.Context) {
	userID, ok := identity.MustUserID(c)
	if !ok {
		return
	}

	var body struct {
		FullName    *string `json:"full_name"`
		AvatarURL   *string `json:"avatar_url"`
		Bio         *string `json:"bio"`
		DonateURL   *string `json:"donate_url"`
		DonateEmbed *string `json:"donate_embed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if body.FullName != nil && *body.FullName != "" {
		updates["full_name"] = *body.FullName
	}
	if body.AvatarURL != nil {
		updates["avatar_url"] = *body.AvatarURL
	}
	if body.Bio != nil {
		updates["bio"] = *body.Bio
	}
	if body.DonateURL != nil {
		updates["donate_url"] = *body.DonateURL
	}
	if body.DonateEmbed != nil {
		updates["donate_embed"] = *body.DonateEmbed
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
