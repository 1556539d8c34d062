// Package catalog holds the startup seed routine that populates the
// reference data: countries, their destinations, and each destination's
// restaurants and cultural sites.
package catalog

import (
	"context"
	"fmt"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

// Seed populates the catalog. It is idempotent: when any country rows
// already exist the routine is a no-op, so a persistent store is only seeded
// once while the in-memory store is repopulated on every process start.
func Seed(ctx context.Context, store ports.Storage) error {
	existing, err := store.GetCountries(ctx)
	if err != nil {
		return fmt.Errorf("seed: check existing countries: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, c := range seedCountries {
		country, err := store.CreateCountry(ctx, domain.CountryInput{
			Name:        c.name,
			Slug:        c.slug,
			Description: c.description,
			HeroImage:   c.heroImage,
			Continent:   ptr(c.continent),
		})
		if err != nil {
			return fmt.Errorf("seed: country %s: %w", c.name, err)
		}

		for _, d := range c.destinations {
			dest, err := store.CreateDestination(ctx, domain.DestinationInput{
				CountryID:   country.ID,
				Name:        d.name,
				Slug:        d.slug,
				Description: d.description,
				Image:       d.image,
			})
			if err != nil {
				return fmt.Errorf("seed: destination %s: %w", d.name, err)
			}

			for _, r := range d.restaurants {
				if _, err := store.CreateRestaurant(ctx, domain.RestaurantInput{
					DestinationID: dest.ID,
					Name:          r.name,
					Description:   r.description,
					Cuisine:       r.cuisine,
					PriceRange:    r.priceRange,
					ImageURL:      r.imageURL,
				}); err != nil {
					return fmt.Errorf("seed: restaurant %s: %w", r.name, err)
				}
			}

			for _, s := range d.sites {
				if _, err := store.CreateCulturalSite(ctx, domain.CulturalSiteInput{
					DestinationID: dest.ID,
					Name:          s.name,
					Description:   s.description,
					TicketPrice:   ptr(s.ticketPrice),
					ImageURL:      s.imageURL,
				}); err != nil {
					return fmt.Errorf("seed: cultural site %s: %w", s.name, err)
				}
			}
		}
	}
	return nil
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
