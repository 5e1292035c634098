package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
	"github.com/harentsoaR/tattoo-studio-api/internal/repositories"
	"github.com/harentsoaR/tattoo-studio-api/internal/utils"
)

const (
	MyBookingsLimit  = 100
	AllBookingsLimit = 1000

	unknownName = "Unknown"
)

type CreateBookingInput struct {
	ArtistID        string
	ServiceID       string
	AppointmentDate string
	AppointmentTime string
	Notes           *string
}

// BookingService creates bookings and assembles them for display.
type BookingService struct {
	bookings repositories.BookingRepository
	artists  repositories.ArtistRepository
	services repositories.ServiceRepository
	users    repositories.UserRepository
	queue    ConfirmationQueue
}

func NewBookingService(repos repositories.Set, queue ConfirmationQueue) *BookingService {
	return &BookingService{
		bookings: repos.Bookings,
		artists:  repos.Artists,
		services: repos.Services,
		users:    repos.Users,
		queue:    queue,
	}
}

// Create stores a pending booking for user. The confirmation email is queued
// after the booking is stored and its outcome never affects the result.
func (s *BookingService) Create(ctx context.Context, user *models.User, in CreateBookingInput) (*models.Booking, error) {
	artist, err := s.artists.GetByID(ctx, in.ArtistID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to load artist: %w", err)
	}

	service, err := s.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	booking := &models.Booking{
		BookingID:       utils.NewID(),
		UserID:          user.UserID,
		ArtistID:        artist.ArtistID,
		ServiceID:       service.ServiceID,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		Notes:           in.Notes,
		Status:          models.BookingStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.queue != nil {
		err := s.queue.Enqueue(ctx, Confirmation{
			BookingID:   booking.BookingID,
			To:          user.Email,
			UserName:    user.Name,
			ServiceName: service.Name,
			ArtistName:  artist.Name,
			Date:        booking.AppointmentDate,
			Time:        booking.AppointmentTime,
		})
		if err != nil {
			log.Printf("Failed to queue confirmation email for booking %s: %v", booking.BookingID, err)
		}
	}

	return booking, nil
}

// ListForUser returns the user's bookings with artist and service names.
func (s *BookingService) ListForUser(ctx context.Context, user *models.User) ([]models.BookingView, error) {
	bookings, err := s.bookings.ListByUser(ctx, user.UserID, MyBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	j := s.newJoiner()
	j.users[user.UserID] = user
	return j.views(ctx, bookings)
}

// ListAll returns every user's bookings with user, artist and service names.
func (s *BookingService) ListAll(ctx context.Context) ([]models.BookingView, error) {
	bookings, err := s.bookings.List(ctx, AllBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return s.newJoiner().views(ctx, bookings)
}

// joiner resolves references once per id for the duration of one listing.
// A nil cache entry records a reference that does not resolve.
type joiner struct {
	s        *BookingService
	users    map[string]*models.User
	artists  map[string]*models.Artist
	services map[string]*models.Service
}

func (s *BookingService) newJoiner() *joiner {
	return &joiner{
		s:        s,
		users:    make(map[string]*models.User),
		artists:  make(map[string]*models.Artist),
		services: make(map[string]*models.Service),
	}
}

func (j *joiner) views(ctx context.Context, bookings []models.Booking) ([]models.BookingView, error) {
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		user, err := lookup(ctx, j.users, b.UserID, j.s.users.GetByID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user %s: %w", b.UserID, err)
		}
		artist, err := lookup(ctx, j.artists, b.ArtistID, j.s.artists.GetByID)
		if err != nil {
			return nil, fmt.Errorf("failed to load artist %s: %w", b.ArtistID, err)
		}
		service, err := lookup(ctx, j.services, b.ServiceID, j.s.services.GetByID)
		if err != nil {
			return nil, fmt.Errorf("failed to load service %s: %w", b.ServiceID, err)
		}

		v := models.BookingView{
			BookingID:       b.BookingID,
			UserName:        unknownName,
			UserEmail:       unknownName,
			ArtistName:      unknownName,
			ServiceName:     unknownName,
			AppointmentDate: b.AppointmentDate,
			AppointmentTime: b.AppointmentTime,
			Notes:           b.Notes,
			Status:          b.Status,
			CreatedAt:       b.CreatedAt,
		}
		if user != nil {
			v.UserName = user.Name
			v.UserEmail = user.Email
		}
		if artist != nil {
			v.ArtistName = artist.Name
		}
		if service != nil {
			v.ServiceName = service.Name
		}
		views = append(views, v)
	}
	return views, nil
}

func lookup[T any](ctx context.Context, cache map[string]*T, id string, get func(context.Context, string) (*T, error)) (*T, error) {
	if v, ok := cache[id]; ok {
		return v, nil
	}
	v, err := get(ctx, id)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		v = nil
	}
	cache[id] = v
	return v, nil
}
