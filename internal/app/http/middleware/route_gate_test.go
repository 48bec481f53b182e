package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cohesion-academy/config"
	"cohesion-academy/internal/domain/roles"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"email":   "user@example.com",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testRouter(required roles.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(), RequireRole(required), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "role": c.GetString("role")})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded?tab=stats", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	config.JWT_SECRET = testSecret

	tests := []struct {
		name       string
		required   roles.Role
		tokenRole  string
		anonymous  bool
		wantStatus int
	}{
		{"admin on admin route", roles.Admin, "admin", false, http.StatusOK},
		{"admin on instructor route", roles.Instructor, "admin", false, http.StatusOK},
		{"instructor on instructor route", roles.Instructor, "instructor", false, http.StatusOK},
		{"instructor on admin route", roles.Admin, "instructor", false, http.StatusForbidden},
		{"student on instructor route", roles.Instructor, "student", false, http.StatusForbidden},
		{"student on admin route", roles.Admin, "student", false, http.StatusForbidden},
		{"unknown role treated as student", roles.Instructor, "superuser", false, http.StatusForbidden},
		{"anonymous", roles.Instructor, "", true, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRouter(tt.required)
			var token string
			if !tt.anonymous {
				token = signTestToken(t, tt.tokenRole)
			}
			w := doRequest(r, token)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRoleRedirects(t *testing.T) {
	config.JWT_SECRET = testSecret

	t.Run("anonymous gets a login redirect keeping the destination", func(t *testing.T) {
		w := doRequest(testRouter(roles.Instructor), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "/login?from=%2Fguarded%3Ftab%3Dstats", body["redirect"])
	})

	t.Run("under-ranked gets a dashboard redirect", func(t *testing.T) {
		w := doRequest(testRouter(roles.Admin), signTestToken(t, "student"))
		require.Equal(t, http.StatusForbidden, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "/dashboard", body["redirect"])
	})
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	config.JWT_SECRET = testSecret
	r := testRouter(roles.Student)

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(r, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "u1",
			"role":    "admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)
		w := doRequest(r, signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "u1",
			"role":    "admin",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		w := doRequest(r, signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	config.JWT_SECRET = testSecret

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "student"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", body["user_id"])
	})

	t.Run("invalid token is ignored, not rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer junk")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body["user_id"])
	})
}
