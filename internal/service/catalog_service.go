package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

var (
	ErrCountryNotFound     = errors.New("country not found")
	ErrDestinationNotFound = errors.New("destination not found")
)

// CatalogService exposes the read side of the travel catalog. Writes happen
// only through the seed routine, so the service surface is queries plus
// search.
type CatalogService struct {
	store ports.Storage
}

func NewCatalogService(store ports.Storage) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.store.GetCountries(ctx)
}

func (s *CatalogService) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	country, err := s.store.GetCountry(ctx, id)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

func (s *CatalogService) ListDestinations(ctx context.Context, countryID int64) ([]domain.Destination, error) {
	country, err := s.store.GetCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}
	return s.store.GetDestinationsByCountry(ctx, countryID)
}

func (s *CatalogService) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	dest, err := s.store.GetDestination(ctx, id)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, ErrDestinationNotFound
	}
	return dest, nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context, destinationID int64) ([]domain.Restaurant, error) {
	dest, err := s.store.GetDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, ErrDestinationNotFound
	}
	return s.store.GetRestaurantsByDestination(ctx, destinationID)
}

func (s *CatalogService) ListCulturalSites(ctx context.Context, destinationID int64) ([]domain.CulturalSite, error) {
	dest, err := s.store.GetDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, ErrDestinationNotFound
	}
	return s.store.GetCulturalSitesByDestination(ctx, destinationID)
}

// Search returns empty slices rather than an error for a blank query.
func (s *CatalogService) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &domain.SearchResult{
			Countries:    []domain.Country{},
			Destinations: []domain.Destination{},
		}, nil
	}
	return s.store.Search(ctx, query)
}
