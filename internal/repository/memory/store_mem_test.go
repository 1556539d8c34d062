package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

func seedCatalog(t *testing.T, s *Store) (domain.Country, domain.Destination) {
	t.Helper()
	ctx := context.Background()

	country, err := s.CreateCountry(ctx, domain.CountryInput{
		Name:        "Japan",
		Slug:        "japan",
		Description: "A blend of ancient traditions and cutting-edge modernity.",
	})
	if err != nil {
		t.Fatalf("CreateCountry returned error: %v", err)
	}

	dest, err := s.CreateDestination(ctx, domain.DestinationInput{
		CountryID:   country.ID,
		Name:        "Tokyo",
		Slug:        "tokyo",
		Description: "The bustling capital.",
	})
	if err != nil {
		t.Fatalf("CreateDestination returned error: %v", err)
	}
	return *country, *dest
}

func TestStore_GetCountry_MissIsNilNil(t *testing.T) {
	s := NewStore()
	country, err := s.GetCountry(context.Background(), 99)
	if err != nil {
		t.Fatalf("GetCountry returned error: %v", err)
	}
	if country != nil {
		t.Fatalf("expected nil country for unknown id, got %+v", country)
	}
}

func TestStore_Search_CaseInsensitive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedCatalog(t, s)

	result, err := s.Search(ctx, "TOKYO")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Destinations) != 1 || result.Destinations[0].Name != "Tokyo" {
		t.Fatalf("expected Tokyo destination match, got %+v", result.Destinations)
	}
	if len(result.Countries) != 0 {
		t.Fatalf("expected no country matches, got %+v", result.Countries)
	}

	result, err = s.Search(ctx, "traditions")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(result.Countries) != 1 || result.Countries[0].Name != "Japan" {
		t.Fatalf("expected Japan description match, got %+v", result.Countries)
	}
}

func TestStore_GetFavorites_JoinsItems(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	country, dest := seedCatalog(t, s)

	if _, err := s.CreateFavorite(ctx, domain.FavoriteInput{
		UserID: "u1", ItemID: country.ID, ItemType: domain.FavoriteItemCountry,
	}); err != nil {
		t.Fatalf("CreateFavorite returned error: %v", err)
	}
	if _, err := s.CreateFavorite(ctx, domain.FavoriteInput{
		UserID: "u1", ItemID: dest.ID, ItemType: domain.FavoriteItemDestination,
	}); err != nil {
		t.Fatalf("CreateFavorite returned error: %v", err)
	}
	if _, err := s.CreateFavorite(ctx, domain.FavoriteInput{
		UserID: "u2", ItemID: country.ID, ItemType: domain.FavoriteItemCountry,
	}); err != nil {
		t.Fatalf("CreateFavorite returned error: %v", err)
	}

	favorites, err := s.GetFavorites(ctx, "u1")
	if err != nil {
		t.Fatalf("GetFavorites returned error: %v", err)
	}
	if len(favorites) != 2 {
		t.Fatalf("expected 2 favorites for u1, got %d", len(favorites))
	}
	if got, ok := favorites[0].Item.(domain.Country); !ok || got.Name != "Japan" {
		t.Fatalf("expected joined country item, got %+v", favorites[0].Item)
	}
	if got, ok := favorites[1].Item.(domain.Destination); !ok || got.Name != "Tokyo" {
		t.Fatalf("expected joined destination item, got %+v", favorites[1].Item)
	}
}

func TestStore_GetFavorites_DropsDanglingItems(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	country, _ := seedCatalog(t, s)

	if _, err := s.CreateFavorite(ctx, domain.FavoriteInput{
		UserID: "u1", ItemID: country.ID, ItemType: domain.FavoriteItemCountry,
	}); err != nil {
		t.Fatalf("CreateFavorite returned error: %v", err)
	}
	if _, err := s.CreateFavorite(ctx, domain.FavoriteInput{
		UserID: "u1", ItemID: 999, ItemType: domain.FavoriteItemDestination,
	}); err != nil {
		t.Fatalf("CreateFavorite returned error: %v", err)
	}

	favorites, err := s.GetFavorites(ctx, "u1")
	if err != nil {
		t.Fatalf("GetFavorites returned error: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected dangling favorite to be dropped, got %d results", len(favorites))
	}
	if favorites[0].ItemID != country.ID {
		t.Fatalf("expected surviving favorite to point at the country, got %+v", favorites[0])
	}
}

func TestStore_DeleteFavorite_ScopedToOwner(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	country, _ := seedCatalog(t, s)

	favorite, err := s.CreateFavorite(ctx, domain.FavoriteInput{
		UserID: "u1", ItemID: country.ID, ItemType: domain.FavoriteItemCountry,
	})
	if err != nil {
		t.Fatalf("CreateFavorite returned error: %v", err)
	}

	if err := s.DeleteFavorite(ctx, favorite.ID, "u2"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting another user's favorite, got %v", err)
	}
	if err := s.DeleteFavorite(ctx, favorite.ID, "u1"); err != nil {
		t.Fatalf("DeleteFavorite returned error: %v", err)
	}
	if err := s.DeleteFavorite(ctx, favorite.ID, "u1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestStore_GetFavoriteByItem(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	country, _ := seedCatalog(t, s)

	found, err := s.GetFavoriteByItem(ctx, "u1", domain.FavoriteItemCountry, country.ID)
	if err != nil {
		t.Fatalf("GetFavoriteByItem returned error: %v", err)
	}
	if found != nil {
		t.Fatalf("expected nil before saving, got %+v", found)
	}

	created, err := s.CreateFavorite(ctx, domain.FavoriteInput{
		UserID: "u1", ItemID: country.ID, ItemType: domain.FavoriteItemCountry,
	})
	if err != nil {
		t.Fatalf("CreateFavorite returned error: %v", err)
	}

	found, err = s.GetFavoriteByItem(ctx, "u1", domain.FavoriteItemCountry, country.ID)
	if err != nil {
		t.Fatalf("GetFavoriteByItem returned error: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("expected favorite %d, got %+v", created.ID, found)
	}
}

func TestStore_UpsertUser_PreservesCreatedAt(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first, err := s.UpsertUser(ctx, domain.User{ID: "sub-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("UpsertUser returned error: %v", err)
	}
	if first.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}

	time.Sleep(5 * time.Millisecond)
	second, err := s.UpsertUser(ctx, domain.User{ID: "sub-1", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("UpsertUser returned error: %v", err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected CreatedAt preserved, got %v then %v", first.CreatedAt, second.CreatedAt)
	}
	if second.Email != "b@example.com" {
		t.Fatalf("expected email updated, got %s", second.Email)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance")
	}
}
