package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
)

// Counts and prices are pointers so that a missing field fails "required"
// instead of binding as zero.
type CreateArtistRequest struct {
	ArtistID        string  `json:"artist_id"`
	Name            string  `json:"name" binding:"required"`
	Bio             string  `json:"bio" binding:"required"`
	Specialty       string  `json:"specialty" binding:"required"`
	ImageURL        string  `json:"image_url" binding:"required"`
	Instagram       *string `json:"instagram"`
	YearsExperience *int    `json:"years_experience" binding:"required,gte=0"`
}

type CreateServiceRequest struct {
	ServiceID       string `json:"service_id"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	DurationMinutes *int   `json:"duration_minutes" binding:"required,gte=0"`
	PriceStart      *int   `json:"price_start" binding:"required,gte=0"`
	Icon            string `json:"icon" binding:"required"`
}

// ListArtists returns artists with duplicate entries hidden.
func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.Catalog.ListArtists(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *Handler) CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	artist := models.Artist{
		ArtistID:        req.ArtistID,
		Name:            req.Name,
		Bio:             req.Bio,
		Specialty:       req.Specialty,
		ImageURL:        req.ImageURL,
		Instagram:       req.Instagram,
		YearsExperience: *req.YearsExperience,
	}
	if err := h.Catalog.CreateArtist(c.Request.Context(), &artist); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	service := models.Service{
		ServiceID:       req.ServiceID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: *req.DurationMinutes,
		PriceStart:      *req.PriceStart,
		Icon:            req.Icon,
	}
	if err := h.Catalog.CreateService(c.Request.Context(), &service); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// Seed fills an empty catalog with the studio's starter artists and services.
func (h *Handler) Seed(c *gin.Context) {
	seeded, err := h.Seeder.Seed(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Data already seeded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data seeded successfully"})
}
