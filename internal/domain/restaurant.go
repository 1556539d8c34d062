package domain

import (
	"errors"
	"strings"
)

// PriceRanges enumerates the accepted restaurant price brackets.
var PriceRanges = []string{"$", "$$", "$$$", "$$$$"}

type Restaurant struct {
	ID            int64           `db:"id" json:"id"`
	DestinationID int64           `db:"destination_id" json:"destinationId"`
	Name          string          `db:"name" json:"name"`
	Description   string          `db:"description" json:"description"`
	Cuisine       string          `db:"cuisine" json:"cuisine"`
	PriceRange    string          `db:"price_range" json:"priceRange"`
	ImageURL      string          `db:"image_url" json:"imageUrl"`
	Coordinates   NullCoordinates `db:"coordinates" json:"coordinates"`
}

type RestaurantInput struct {
	DestinationID int64           `json:"destinationId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Cuisine       string          `json:"cuisine"`
	PriceRange    string          `json:"priceRange"`
	ImageURL      string          `json:"imageUrl"`
	Coordinates   NullCoordinates `json:"coordinates"`
}

func (in RestaurantInput) Validate() error {
	if in.DestinationID <= 0 {
		return errors.New("destinationId is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(in.Cuisine) == "" {
		return errors.New("cuisine is required")
	}
	if !validPriceRange(in.PriceRange) {
		return errors.New("priceRange must be one of $, $$, $$$, $$$$")
	}
	return nil
}

func validPriceRange(v string) bool {
	for _, p := range PriceRanges {
		if v == p {
			return true
		}
	}
	return false
}
