package domain

import (
	"errors"
	"strings"
)

type Country struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	Description string  `db:"description" json:"description"`
	HeroImage   string  `db:"hero_image" json:"heroImage"`
	Continent   *string `db:"continent" json:"continent"`
}

// CountryInput carries the fields of a country to be created. The id is
// assigned by the store.
type CountryInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	HeroImage   string  `json:"heroImage"`
	Continent   *string `json:"continent"`
}

func (in CountryInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(in.Slug) == "" {
		return errors.New("slug is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(in.HeroImage) == "" {
		return errors.New("heroImage is required")
	}
	return nil
}
