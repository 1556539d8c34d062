package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Coordinates is a latitude/longitude pair attached to catalog entries that
// have a mappable location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NullCoordinates is an optional Coordinates stored as a jsonb column.
// It serializes to JSON null when unset, matching the wire format of rows
// whose coordinates column is NULL.
type NullCoordinates struct {
	Coordinates
	Valid bool
}

func (c NullCoordinates) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Coordinates)
}

func (c *NullCoordinates) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = NullCoordinates{}
		return nil
	}
	if err := json.Unmarshal(data, &c.Coordinates); err != nil {
		return err
	}
	c.Valid = true
	return nil
}

func (c *NullCoordinates) Scan(src any) error {
	if src == nil {
		*c = NullCoordinates{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return c.UnmarshalJSON(v)
	case string:
		return c.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("coordinates: unsupported scan type %T", src)
	}
}

func (c NullCoordinates) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return json.Marshal(c.Coordinates)
}

// ErrInvalidCoordinates is returned when a coordinate pair falls outside the
// valid latitude/longitude ranges.
var ErrInvalidCoordinates = errors.New("coordinates out of range")

func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
