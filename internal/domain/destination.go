package domain

import (
	"errors"
	"strings"
)

type Destination struct {
	ID          int64           `db:"id" json:"id"`
	CountryID   int64           `db:"country_id" json:"countryId"`
	Name        string          `db:"name" json:"name"`
	Slug        string          `db:"slug" json:"slug"`
	Description string          `db:"description" json:"description"`
	Image       string          `db:"image" json:"image"`
	Coordinates NullCoordinates `db:"coordinates" json:"coordinates"`
}

type DestinationInput struct {
	CountryID   int64           `json:"countryId"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Coordinates NullCoordinates `json:"coordinates"`
}

func (in DestinationInput) Validate() error {
	if in.CountryID <= 0 {
		return errors.New("countryId is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(in.Slug) == "" {
		return errors.New("slug is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(in.Image) == "" {
		return errors.New("image is required")
	}
	if in.Coordinates.Valid {
		return in.Coordinates.Coordinates.Validate()
	}
	return nil
}

// SearchResult groups the two lists returned by the catalog search endpoint.
type SearchResult struct {
	Countries    []Country     `json:"countries"`
	Destinations []Destination `json:"destinations"`
}
