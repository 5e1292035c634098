package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tattoo-studio-api/internal/middleware"
)

// RegisterRoutes mounts the API under /api. limiter guards the credential
// endpoints.
func RegisterRoutes(r *gin.Engine, h *Handler, limiter *middleware.RateLimiter) {
	useJSONFieldNames()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(h.Auth, WriteError)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Neax Tattoos API"})
		})

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", middleware.RateLimit(limiter), h.RegisterUser)
			authRoutes.POST("/login", middleware.RateLimit(limiter), h.Login)
			authRoutes.GET("/me", requireAuth, h.GetCurrentUser)
		}

		api.GET("/artists", h.ListArtists)
		api.POST("/artists", h.CreateArtist)
		api.GET("/services", h.ListServices)
		api.POST("/services", h.CreateService)

		api.POST("/bookings", requireAuth, h.CreateBooking)
		api.GET("/bookings/my", requireAuth, h.GetMyBookings)
		api.GET("/bookings", h.GetAllBookings)

		api.POST("/seed", h.Seed)
	}
}
