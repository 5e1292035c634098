package services

import (
	"context"
	"fmt"
	"log"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
	"github.com/harentsoaR/tattoo-studio-api/internal/repositories"
	"github.com/harentsoaR/tattoo-studio-api/internal/utils"
)

func strPtr(s string) *string { return &s }

var seedArtists = []models.Artist{
	{
		Name:            "Marcus Chen",
		Bio:             "Specializing in blackwork and geometric designs with 12 years of experience. Every piece tells a story.",
		Specialty:       "Blackwork & Geometric",
		ImageURL:        "https://images.unsplash.com/photo-1655960556432-b74f6ff0a54b?crop=entropy&cs=srgb&fm=jpg&q=85",
		Instagram:       strPtr("@marcuschen.ink"),
		YearsExperience: 12,
	},
	{
		Name:            "Aria Rodriguez",
		Bio:             "Fine line artist passionate about minimalist designs and delicate floral work. Precision is my art.",
		Specialty:       "Fine Line & Floral",
		ImageURL:        "https://images.unsplash.com/photo-1767887874488-5f715c7db794?crop=entropy&cs=srgb&fm=jpg&q=85",
		Instagram:       strPtr("@aria.fineline"),
		YearsExperience: 8,
	},
	{
		Name:            "Jake Morrison",
		Bio:             "Traditional American tattoo artist with a modern twist. Bold lines, vibrant colors, timeless designs.",
		Specialty:       "Traditional American",
		ImageURL:        "https://images.unsplash.com/photo-1604449325317-4967c715538a?crop=entropy&cs=srgb&fm=jpg&q=85",
		Instagram:       strPtr("@jakemorrison.trad"),
		YearsExperience: 15,
	},
}

var seedServices = []models.Service{
	{
		Name:            "Custom Tattoo",
		Description:     "Fully customized tattoo design tailored to your vision. Consultation included.",
		DurationMinutes: 180,
		PriceStart:      200,
		Icon:            "Palette",
	},
	{
		Name:            "Small Tattoo",
		Description:     "Simple, small designs perfect for first-timers. Quick and affordable.",
		DurationMinutes: 60,
		PriceStart:      80,
		Icon:            "Sparkles",
	},
	{
		Name:            "Cover-Up",
		Description:     "Expert cover-up work to transform old tattoos into something new.",
		DurationMinutes: 240,
		PriceStart:      300,
		Icon:            "RefreshCw",
	},
	{
		Name:            "Consultation",
		Description:     "Free consultation to discuss your ideas and get a quote.",
		DurationMinutes: 30,
		PriceStart:      0,
		Icon:            "MessageCircle",
	},
}

type Seeder struct {
	artists  repositories.ArtistRepository
	services repositories.ServiceRepository
}

func NewSeeder(artists repositories.ArtistRepository, services repositories.ServiceRepository) *Seeder {
	return &Seeder{artists: artists, services: services}
}

// Seed inserts the starter catalog unless any artist already exists. It
// reports whether anything was written.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	n, err := s.artists.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count artists: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	for _, a := range seedArtists {
		artist := a
		artist.ArtistID = utils.NewID()
		if err := s.artists.Create(ctx, &artist); err != nil {
			return false, fmt.Errorf("failed to seed artist %s: %w", artist.Name, err)
		}
	}
	for _, sv := range seedServices {
		service := sv
		service.ServiceID = utils.NewID()
		if err := s.services.Create(ctx, &service); err != nil {
			return false, fmt.Errorf("failed to seed service %s: %w", service.Name, err)
		}
	}
	log.Printf("Seeded %d artists and %d services", len(seedArtists), len(seedServices))
	return true, nil
}
