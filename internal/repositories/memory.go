package repositories

import (
	"context"
	"sync"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
)

// NewMemorySet builds process-local repositories. Data lives only as long as
// the process; used for local runs and tests.
func NewMemorySet() Set {
	return Set{
		Users:    NewMemoryUserRepository(),
		Artists:  NewMemoryArtistRepository(),
		Services: NewMemoryServiceRepository(),
		Bookings: NewMemoryBookingRepository(),
	}
}

// memoryCollection keeps documents in insertion order with a unique key.
type memoryCollection[T any] struct {
	mu   sync.RWMutex
	docs []T
	key  func(*T) string
}

func (c *memoryCollection[T]) insert(doc T, unique ...func(*T) string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := append([]func(*T) string{c.key}, unique...)
	for i := range c.docs {
		for _, k := range keys {
			if k(&c.docs[i]) == k(&doc) {
				return ErrDuplicateKey
			}
		}
	}
	c.docs = append(c.docs, doc)
	return nil
}

func (c *memoryCollection[T]) findOne(match func(*T) bool) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.docs {
		if match(&c.docs[i]) {
			found := c.docs[i]
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (c *memoryCollection[T]) find(match func(*T) bool, limit int64) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for i := range c.docs {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if match == nil || match(&c.docs[i]) {
			out = append(out, c.docs[i])
		}
	}
	return out
}

func (c *memoryCollection[T]) count() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.docs))
}

type MemoryUserRepository struct {
	users memoryCollection[models.User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: memoryCollection[models.User]{
		key: func(u *models.User) string { return u.UserID },
	}}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	return r.users.insert(*user, func(u *models.User) string { return u.Email })
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.users.findOne(func(u *models.User) bool { return u.Email == email })
}

func (r *MemoryUserRepository) GetByID(_ context.Context, userID string) (*models.User, error) {
	return r.users.findOne(func(u *models.User) bool { return u.UserID == userID })
}

type MemoryArtistRepository struct {
	artists memoryCollection[models.Artist]
}

func NewMemoryArtistRepository() *MemoryArtistRepository {
	return &MemoryArtistRepository{artists: memoryCollection[models.Artist]{
		key: func(a *models.Artist) string { return a.ArtistID },
	}}
}

func (r *MemoryArtistRepository) Create(_ context.Context, artist *models.Artist) error {
	return r.artists.insert(*artist)
}

func (r *MemoryArtistRepository) GetByID(_ context.Context, artistID string) (*models.Artist, error) {
	return r.artists.findOne(func(a *models.Artist) bool { return a.ArtistID == artistID })
}

func (r *MemoryArtistRepository) List(_ context.Context, limit int64) ([]models.Artist, error) {
	return r.artists.find(nil, limit), nil
}

func (r *MemoryArtistRepository) Count(_ context.Context) (int64, error) {
	return r.artists.count(), nil
}

type MemoryServiceRepository struct {
	services memoryCollection[models.Service]
}

func NewMemoryServiceRepository() *MemoryServiceRepository {
	return &MemoryServiceRepository{services: memoryCollection[models.Service]{
		key: func(s *models.Service) string { return s.ServiceID },
	}}
}

func (r *MemoryServiceRepository) Create(_ context.Context, service *models.Service) error {
	return r.services.insert(*service)
}

func (r *MemoryServiceRepository) GetByID(_ context.Context, serviceID string) (*models.Service, error) {
	return r.services.findOne(func(s *models.Service) bool { return s.ServiceID == serviceID })
}

func (r *MemoryServiceRepository) List(_ context.Context, limit int64) ([]models.Service, error) {
	return r.services.find(nil, limit), nil
}

type MemoryBookingRepository struct {
	bookings memoryCollection[models.Booking]
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: memoryCollection[models.Booking]{
		key: func(b *models.Booking) string { return b.BookingID },
	}}
}

func (r *MemoryBookingRepository) Create(_ context.Context, booking *models.Booking) error {
	return r.bookings.insert(*booking)
}

func (r *MemoryBookingRepository) ListByUser(_ context.Context, userID string, limit int64) ([]models.Booking, error) {
	return r.bookings.find(func(b *models.Booking) bool { return b.UserID == userID }, limit), nil
}

func (r *MemoryBookingRepository) List(_ context.Context, limit int64) ([]models.Booking, error) {
	return r.bookings.find(nil, limit), nil
}
