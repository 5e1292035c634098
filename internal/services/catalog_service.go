package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
	"github.com/harentsoaR/tattoo-studio-api/internal/repositories"
	"github.com/harentsoaR/tattoo-studio-api/internal/utils"
)

// CatalogListLimit caps artist and service listings. A full page is normal,
// not a sign of missing data.
const CatalogListLimit = 100

type CatalogService struct {
	artists  repositories.ArtistRepository
	services repositories.ServiceRepository
}

func NewCatalogService(artists repositories.ArtistRepository, services repositories.ServiceRepository) *CatalogService {
	return &CatalogService{artists: artists, services: services}
}

func (s *CatalogService) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if artist.ArtistID == "" {
		artist.ArtistID = utils.NewID()
	}
	if err := s.artists.Create(ctx, artist); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to create artist: %w", err)
	}
	return nil
}

func (s *CatalogService) CreateService(ctx context.Context, service *models.Service) error {
	if service.ServiceID == "" {
		service.ServiceID = utils.NewID()
	}
	if err := s.services.Create(ctx, service); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// ListArtists returns stored artists with duplicates hidden, see DedupArtists.
func (s *CatalogService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.artists.List(ctx, CatalogListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return DedupArtists(artists), nil
}

// ListServices returns stored services as they are. Unlike artists, services
// are not de-duplicated.
func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.services.List(ctx, CatalogListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// DedupArtists keeps the first artist for each key and drops the rest.
func DedupArtists(artists []models.Artist) []models.Artist {
	seen := make(map[string]struct{}, len(artists))
	unique := make([]models.Artist, 0, len(artists))
	for _, a := range artists {
		key := artistKey(&a)
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		unique = append(unique, a)
	}
	return unique
}

// artistKey is the normalized name, else the normalized instagram handle,
// else the artist id.
func artistKey(a *models.Artist) string {
	if name := normalize(a.Name); name != "" {
		return name
	}
	if a.Instagram != nil {
		if handle := normalize(*a.Instagram); handle != "" {
			return handle
		}
	}
	return a.ArtistID
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
