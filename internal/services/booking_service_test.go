package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
	"github.com/harentsoaR/tattoo-studio-api/internal/repositories"
	"github.com/harentsoaR/tattoo-studio-api/internal/services"
)

type bookingFixture struct {
	repos   repositories.Set
	queue   *recordingQueue
	svc     *services.BookingService
	user    *models.User
	artist  *models.Artist
	service *models.Service
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	ctx := context.Background()
	f := &bookingFixture{
		repos: repositories.NewMemorySet(),
		queue: &recordingQueue{},
		user:  &models.User{UserID: "u1", Email: "ink@example.com", Name: "Ink Lover"},
		artist: &models.Artist{
			ArtistID: "a1",
			Name:     "Marcus Chen",
		},
		service: &models.Service{ServiceID: "s1", Name: "Custom Tattoo"},
	}
	require.NoError(t, f.repos.Users.Create(ctx, f.user))
	require.NoError(t, f.repos.Artists.Create(ctx, f.artist))
	require.NoError(t, f.repos.Services.Create(ctx, f.service))
	f.svc = services.NewBookingService(f.repos, f.queue)
	return f
}

func (f *bookingFixture) input() services.CreateBookingInput {
	return services.CreateBookingInput{
		ArtistID:        f.artist.ArtistID,
		ServiceID:       f.service.ServiceID,
		AppointmentDate: "2026-11-02",
		AppointmentTime: "14:00",
		Notes:           strPtr("Forearm piece"),
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking, err := f.svc.Create(ctx, f.user, f.input())
	require.NoError(t, err)
	assert.NotEmpty(t, booking.BookingID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "UTC", booking.CreatedAt.Location().String())
	require.NotNil(t, booking.Notes)
	assert.Equal(t, "Forearm piece", *booking.Notes)

	confirmations := f.queue.all()
	require.Len(t, confirmations, 1)
	assert.Equal(t, services.Confirmation{
		BookingID:   booking.BookingID,
		To:          "ink@example.com",
		UserName:    "Ink Lover",
		ServiceName: "Custom Tattoo",
		ArtistName:  "Marcus Chen",
		Date:        "2026-11-02",
		Time:        "14:00",
	}, confirmations[0])
}

func TestBookingService_CreateUniqueIDs(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		booking, err := f.svc.Create(ctx, f.user, f.input())
		require.NoError(t, err)
		_, dup := seen[booking.BookingID]
		require.False(t, dup, "booking id reused: %s", booking.BookingID)
		seen[booking.BookingID] = struct{}{}
	}
}

func TestBookingService_CreateMissingReferences(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	in := f.input()
	in.ArtistID = "00000000-0000-4000-8000-000000000000"
	_, err := f.svc.Create(ctx, f.user, in)
	assert.ErrorIs(t, err, services.ErrArtistNotFound)

	in = f.input()
	in.ServiceID = "00000000-0000-4000-8000-000000000000"
	_, err = f.svc.Create(ctx, f.user, in)
	assert.ErrorIs(t, err, services.ErrServiceNotFound)

	views, err := f.svc.ListForUser(ctx, f.user)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Empty(t, f.queue.all())
}

func TestBookingService_QueueFailureDoesNotFailBooking(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)
	f.queue.fail = errors.New("broker down")

	booking, err := f.svc.Create(ctx, f.user, f.input())
	require.NoError(t, err)

	views, err := f.svc.ListForUser(ctx, f.user)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, booking.BookingID, views[0].BookingID)
}

func TestBookingService_NilQueue(t *testing.T) {
	f := newBookingFixture(t)
	svc := services.NewBookingService(f.repos, nil)

	_, err := svc.Create(context.Background(), f.user, f.input())
	assert.NoError(t, err)
}

func TestBookingService_ArtistLookupErrorPropagates(t *testing.T) {
	f := newBookingFixture(t)
	artists := new(MockArtistRepository)
	artists.On("GetByID", mock.Anything, "a1").Return(nil, errors.New("timeout")).Once()
	repos := f.repos
	repos.Artists = artists

	_, err := services.NewBookingService(repos, f.queue).Create(context.Background(), f.user, f.input())
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrArtistNotFound)
	artists.AssertExpectations(t)
}

func TestBookingService_ListViewsWithUnknownFallback(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	_, err := f.svc.Create(ctx, f.user, f.input())
	require.NoError(t, err)

	// bookings whose references no longer resolve
	orphan := &models.Booking{
		BookingID: "b-orphan",
		UserID:    "gone-user",
		ArtistID:  "gone-artist",
		ServiceID: "gone-service",
		Status:    models.BookingStatusPending,
	}
	require.NoError(t, f.repos.Bookings.Create(ctx, orphan))
	mine := &models.Booking{
		BookingID: "b-mine-orphan",
		UserID:    f.user.UserID,
		ArtistID:  "gone-artist",
		ServiceID: f.service.ServiceID,
		Status:    models.BookingStatusPending,
	}
	require.NoError(t, f.repos.Bookings.Create(ctx, mine))

	views, err := f.svc.ListForUser(ctx, f.user)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Marcus Chen", views[0].ArtistName)
	assert.Equal(t, "Custom Tattoo", views[0].ServiceName)
	assert.Equal(t, "Ink Lover", views[0].UserName)
	assert.Equal(t, "ink@example.com", views[0].UserEmail)
	assert.Equal(t, "Unknown", views[1].ArtistName)
	assert.Equal(t, "Custom Tattoo", views[1].ServiceName)

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b-orphan", all[1].BookingID)
	assert.Equal(t, "Unknown", all[1].UserName)
	assert.Equal(t, "Unknown", all[1].UserEmail)
	assert.Equal(t, "Unknown", all[1].ArtistName)
	assert.Equal(t, "Unknown", all[1].ServiceName)
	assert.Equal(t, "Ink Lover", all[2].UserName)
}
