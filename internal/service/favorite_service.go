package service

import (
	"context"
	"errors"

	"github.com/tastetrek/taste-trek-api/internal/domain"
	"github.com/tastetrek/taste-trek-api/internal/repository/ports"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteService struct {
	store ports.Storage
}

func NewFavoriteService(store ports.Storage) *FavoriteService {
	return &FavoriteService{store: store}
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.FavoriteWithItem, error) {
	return s.store.GetFavorites(ctx, userID)
}

// Save records a favorite. Repeated saves of the same item create separate
// rows; the client treats the first match as canonical.
func (s *FavoriteService) Save(ctx context.Context, userID string, input domain.FavoriteInput) (*domain.Favorite, error) {
	input.UserID = userID
	if err := input.Validate(); err != nil {
		return nil, err
	}

	switch input.ItemType {
	case domain.FavoriteItemCountry:
		country, err := s.store.GetCountry(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, ErrCountryNotFound
		}
	case domain.FavoriteItemDestination:
		dest, err := s.store.GetDestination(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, ErrDestinationNotFound
		}
	}

	return s.store.CreateFavorite(ctx, input)
}

// Remove deletes a favorite owned by userID. Another user's favorite id is
// indistinguishable from a missing one.
func (s *FavoriteService) Remove(ctx context.Context, id int64, userID string) error {
	if err := s.store.DeleteFavorite(ctx, id, userID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// CheckItem reports whether the user has favorited the item, returning the
// matching favorite when they have.
func (s *FavoriteService) CheckItem(ctx context.Context, userID, itemType string, itemID int64) (*domain.Favorite, error) {
	return s.store.GetFavoriteByItem(ctx, userID, itemType, itemID)
}
