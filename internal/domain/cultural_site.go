package domain

import (
	"errors"
	"strings"
)

type CulturalSite struct {
	ID            int64           `db:"id" json:"id"`
	DestinationID int64           `db:"destination_id" json:"destinationId"`
	Name          string          `db:"name" json:"name"`
	Description   string          `db:"description" json:"description"`
	TicketPrice   *string         `db:"ticket_price" json:"ticketPrice"`
	ImageURL      string          `db:"image_url" json:"imageUrl"`
	Coordinates   NullCoordinates `db:"coordinates" json:"coordinates"`
}

type CulturalSiteInput struct {
	DestinationID int64           `json:"destinationId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TicketPrice   *string         `json:"ticketPrice"`
	ImageURL      string          `json:"imageUrl"`
	Coordinates   NullCoordinates `json:"coordinates"`
}

func (in CulturalSiteInput) Validate() error {
	if in.DestinationID <= 0 {
		return errors.New("destinationId is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return errors.New("description is required")
	}
	return nil
}
