package handlers

import (
	"github.com/harentsoaR/tattoo-studio-api/internal/services"
)

// Handler carries the services every route handler needs.
type Handler struct {
	Auth     *services.AuthService
	Catalog  *services.CatalogService
	Bookings *services.BookingService
	Seeder   *services.Seeder
}

func NewHandler(auth *services.AuthService, catalog *services.CatalogService, bookings *services.BookingService, seeder *services.Seeder) *Handler {
	return &Handler{
		Auth:     auth,
		Catalog:  catalog,
		Bookings: bookings,
		Seeder:   seeder,
	}
}
