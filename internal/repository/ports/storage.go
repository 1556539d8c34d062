package ports

import (
	"context"
	"errors"

	"github.com/tastetrek/taste-trek-api/internal/domain"
)

// ErrNotFound is returned by write operations whose target row does not
// exist (or is not owned by the caller). Get-by-id reads signal absence with
// a nil result instead.
var ErrNotFound = errors.New("not found")

// Storage is the data-access contract implemented identically by the
// in-memory and Postgres backends. The backend is chosen once at startup.
type Storage interface {
	GetCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)
	CreateCountry(ctx context.Context, input domain.CountryInput) (*domain.Country, error)

	GetDestinationsByCountry(ctx context.Context, countryID int64) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id int64) (*domain.Destination, error)
	CreateDestination(ctx context.Context, input domain.DestinationInput) (*domain.Destination, error)

	GetRestaurantsByDestination(ctx context.Context, destinationID int64) ([]domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, input domain.RestaurantInput) (*domain.Restaurant, error)

	GetCulturalSitesByDestination(ctx context.Context, destinationID int64) ([]domain.CulturalSite, error)
	CreateCulturalSite(ctx context.Context, input domain.CulturalSiteInput) (*domain.CulturalSite, error)

	// Search matches the query case-insensitively against name and
	// description of countries and destinations.
	Search(ctx context.Context, query string) (*domain.SearchResult, error)

	// GetFavorites returns a user's favorites joined with their items.
	// Favorites whose item no longer exists are dropped.
	GetFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithItem, error)
	CreateFavorite(ctx context.Context, input domain.FavoriteInput) (*domain.Favorite, error)
	// DeleteFavorite removes a favorite scoped to its owner. Deleting
	// another user's favorite id is a no-op reported as ErrNotFound.
	DeleteFavorite(ctx context.Context, id int64, userID string) error
	GetFavoriteByItem(ctx context.Context, userID, itemType string, itemID int64) (*domain.Favorite, error)

	UpsertUser(ctx context.Context, user domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
