package middleware

import (
	"net/http"
	"net/url"

	"cohesion-academy/internal/domain/access"
	"cohesion-academy/internal/domain/roles"

	"github.com/gin-gonic/gin"
)

func loginRedirect(c *gin.Context) string {
	return "/login?from=" + url.QueryEscape(c.Request.URL.RequestURI())
}

// RequireRole guards a route group behind a minimum role. It is the route
// variant of the access gate: an under-ranked viewer is pointed at the
// dashboard, never an error page, so the SPA lands somewhere safe.
// Must run after AuthMiddleware.
func RequireRole(required roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id *access.Identity
		if userID := c.GetString("user_id"); userID != "" {
			id = &access.Identity{
				UserID: userID,
				Role:   roles.Parse(c.GetString("role")),
			}
		}

		decision := access.EvaluateRoute(id, required, c.Request.URL.RequestURI())
		switch decision.Action {
		case access.RouteRedirectLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": decision.Location,
			})
		case access.RouteRedirectHome:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Access denied",
				"redirect": decision.Location,
			})
		default:
			c.Next()
		}
	}
}
