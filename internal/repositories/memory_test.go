package repositories_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
	"github.com/harentsoaR/tattoo-studio-api/internal/repositories"
)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryUserRepository()

	user := &models.User{UserID: "u1", Email: "ink@example.com", Name: "Ink"}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByEmail(ctx, "ink@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ink", got.Name)

	_, err = repo.GetByEmail(ctx, "INK@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound, "email lookup is exact")

	err = repo.Create(ctx, &models.User{UserID: "u2", Email: "ink@example.com"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

	err = repo.Create(ctx, &models.User{UserID: "u1", Email: "other@example.com"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
}

func TestMemoryArtistRepository_OrderAndLimit(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryArtistRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Artist{ArtistID: fmt.Sprintf("a%d", i), Name: fmt.Sprintf("Artist %d", i)}))
	}

	all, err := repo.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, a := range all {
		assert.Equal(t, fmt.Sprintf("a%d", i), a.ArtistID)
	}

	capped, err := repo.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, capped, 3)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryBookingRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryBookingRepository()

	for i := 0; i < 4; i++ {
		owner := "u1"
		if i%2 == 1 {
			owner = "u2"
		}
		require.NoError(t, repo.Create(ctx, &models.Booking{BookingID: fmt.Sprintf("b%d", i), UserID: owner}))
	}

	mine, err := repo.ListByUser(ctx, "u1", 100)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "b0", mine[0].BookingID)
	assert.Equal(t, "b2", mine[1].BookingID)

	none, err := repo.ListByUser(ctx, "nobody", 100)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := repo.List(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryServiceRepository()
	require.NoError(t, repo.Create(ctx, &models.Service{ServiceID: "s1", Name: "Cover-Up"}))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Cover-Up", again.Name)
}

func TestMemoryRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryBookingRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &models.Booking{BookingID: fmt.Sprintf("b%d", i), UserID: "u1"}))
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
