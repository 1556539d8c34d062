package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/memory"
)

func newTestCatalog(t *testing.T) (*CatalogService, domain.Country, domain.Destination) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	country, err := store.CreateCountry(ctx, domain.CountryInput{
		Name: "Italy", Slug: "italy", Description: "A culinary paradise.",
	})
	if err != nil {
		t.Fatalf("CreateCountry returned error: %v", err)
	}
	dest, err := store.CreateDestination(ctx, domain.DestinationInput{
		CountryID: country.ID, Name: "Rome", Slug: "rome", Description: "The Eternal City.",
	})
	if err != nil {
		t.Fatalf("CreateDestination returned error: %v", err)
	}
	return NewCatalogService(store), *country, *dest
}

func TestCatalogService_GetCountry_NotFound(t *testing.T) {
	svc, _, _ := newTestCatalog(t)

	_, err := svc.GetCountry(context.Background(), 404)
	if !errors.Is(err, ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
}

func TestCatalogService_ListDestinations_UnknownCountry(t *testing.T) {
	svc, _, _ := newTestCatalog(t)

	_, err := svc.ListDestinations(context.Background(), 404)
	if !errors.Is(err, ErrCountryNotFound) {
		t.Fatalf("expected ErrCountryNotFound, got %v", err)
	}
}

func TestCatalogService_ListDestinations(t *testing.T) {
	svc, country, _ := newTestCatalog(t)

	destinations, err := svc.ListDestinations(context.Background(), country.ID)
	if err != nil {
		t.Fatalf("ListDestinations returned error: %v", err)
	}
	if len(destinations) != 1 || destinations[0].Name != "Rome" {
		t.Fatalf("expected Rome, got %+v", destinations)
	}
}

func TestCatalogService_ListRestaurants_UnknownDestination(t *testing.T) {
	svc, _, _ := newTestCatalog(t)

	_, err := svc.ListRestaurants(context.Background(), 404)
	if !errors.Is(err, ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestCatalogService_Search_BlankQuery(t *testing.T) {
	svc, _, _ := newTestCatalog(t)

	result, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Countries) != 0 || len(result.Destinations) != 0 {
		t.Fatalf("expected empty result for blank query, got %+v", result)
	}
}

func TestCatalogService_Search_TrimsQuery(t *testing.T) {
	svc, _, _ := newTestCatalog(t)

	result, err := svc.Search(context.Background(), "  rome  ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Destinations) != 1 {
		t.Fatalf("expected one destination match, got %+v", result.Destinations)
	}
}
