package identity

import (
	"net/http"

	"cohesion-academy/database"
	"cohesion-academy/internal/domain/access"
	"cohesion-academy/internal/domain/roles"
	"cohesion-academy/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// MustUserID aborts with 401 when the request carries no authenticated
// user id.
func MustUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// CurrentUser loads the authenticated user's row. Returns nil for
// anonymous requests and for tokens whose user no longer exists; a deleted
// account gets no access, not an error.
func CurrentUser(c *gin.Context) *users.User {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil
	}
	var u users.User
	if err := database.DB.Where("id = ?", userID).First(&u).Error; err != nil {
		return nil
	}
	return &u
}

// Current builds the access-gate identity for the request, or nil when
// anonymous.
func Current(c *gin.Context) *access.Identity {
	u := CurrentUser(c)
	if u == nil {
		return nil
	}
	return &access.Identity{
		UserID:            u.ID,
		Role:              roles.Parse(u.Role),
		SubscriptionStart: u.SubscriptionStart,
		SubscriptionEnd:   u.SubscriptionEnd,
	}
}
