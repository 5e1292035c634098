package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tattoo-studio-api/internal/middleware"
	"github.com/harentsoaR/tattoo-studio-api/internal/services"
)

type CreateBookingRequest struct {
	ArtistID        string  `json:"artist_id" binding:"required"`
	ServiceID       string  `json:"service_id" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	Notes           *string `json:"notes"`
}

// CreateBooking books an appointment for the authenticated user.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		WriteError(c, services.ErrUserNotFound)
		return
	}

	booking, err := h.Bookings.Create(c.Request.Context(), user, services.CreateBookingInput{
		ArtistID:        req.ArtistID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Notes:           req.Notes,
	})
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		WriteError(c, services.ErrUserNotFound)
		return
	}

	views, err := h.Bookings.ListForUser(c.Request.Context(), user)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetAllBookings lists bookings across all users. The route is public.
func (h *Handler) GetAllBookings(c *gin.Context) {
	views, err := h.Bookings.ListAll(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
