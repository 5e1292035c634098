package repositories

import (
	"context"
	"errors"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// List operations return documents in storage (insertion) order and never
// more than limit of them.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, artistID string) (*models.Artist, error)
	List(ctx context.Context, limit int64) ([]models.Artist, error)
	Count(ctx context.Context) (int64, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	List(ctx context.Context, limit int64) ([]models.Service, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
}

// Set bundles the repositories of one storage backend.
type Set struct {
	Users    UserRepository
	Artists  ArtistRepository
	Services ServiceRepository
	Bookings BookingRepository
}
