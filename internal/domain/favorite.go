package domain

import (
	"errors"
	"time"
)

const (
	FavoriteItemCountry     = "country"
	FavoriteItemDestination = "destination"
)

// Favorite is a user's saved reference to a country or destination. The user
// id is an external identity: either an OIDC subject or a locally fabricated
// id, never a row in this process's control.
type Favorite struct {
	ID        int64      `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	ItemID    int64      `db:"item_id" json:"itemId"`
	ItemType  string     `db:"item_type" json:"itemType"`
	CreatedAt *time.Time `db:"created_at" json:"createdAt"`
}

// FavoriteWithItem is a favorite joined with the country or destination it
// points at. Favorites whose item no longer resolves are dropped from list
// results rather than surfaced with a nil item.
type FavoriteWithItem struct {
	Favorite
	Item any `json:"item"`
}

type FavoriteInput struct {
	UserID   string `json:"userId"`
	ItemID   int64  `json:"itemId"`
	ItemType string `json:"itemType"`
}

func (in FavoriteInput) Validate() error {
	if in.ItemID <= 0 {
		return errors.New("itemId must be a positive integer")
	}
	if in.ItemType != FavoriteItemCountry && in.ItemType != FavoriteItemDestination {
		return errors.New("itemType must be 'country' or 'destination'")
	}
	return nil
}
