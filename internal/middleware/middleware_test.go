package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/harentsoaR/tattoo-studio-api/internal/middleware"
	"github.com/harentsoaR/tattoo-studio-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuth struct{}

func (fakeAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	if token == "good" {
		return &models.User{UserID: "u1", Name: "Ink"}, nil
	}
	return nil, errors.New("bad token")
}

func writeErr(c *gin.Context, err error) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "token_invalid"})
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(fakeAuth{}, writeErr), func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, user.Name)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "missing_authorization_header"},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, "invalid_authorization_header"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "invalid_authorization_header"},
		{"rejected token", "Bearer bad", http.StatusUnauthorized, "token_invalid"},
		{"valid", "Bearer good", http.StatusOK, "Ink"},
		{"lowercase scheme", "bearer good", http.StatusOK, "Ink"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	assert.True(t, rl.Allow("10.0.0.2"), "other clients have their own bucket")
}

func TestRateLimit_Middleware(t *testing.T) {
	r := gin.New()
	r.POST("/login", middleware.RateLimit(middleware.NewRateLimiter(0.001, 1)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
