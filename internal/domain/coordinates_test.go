package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNullCoordinates_MarshalNullWhenUnset(t *testing.T) {
	raw, err := json.Marshal(NullCoordinates{})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("expected null, got %s", raw)
	}
}

func TestNullCoordinates_RoundTrip(t *testing.T) {
	in := NullCoordinates{Coordinates: Coordinates{Lat: 41.9, Lng: 12.5}, Valid: true}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var out NullCoordinates
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !out.Valid || out.Lat != 41.9 || out.Lng != 12.5 {
		t.Fatalf("unexpected round trip result: %+v", out)
	}
}

func TestNullCoordinates_ScanNil(t *testing.T) {
	c := NullCoordinates{Coordinates: Coordinates{Lat: 1}, Valid: true}
	if err := c.Scan(nil); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if c.Valid {
		t.Fatalf("expected invalid after scanning NULL")
	}
}

func TestNullCoordinates_ScanBytes(t *testing.T) {
	var c NullCoordinates
	if err := c.Scan([]byte(`{"lat": 35.68, "lng": 139.69}`)); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if !c.Valid || c.Lat != 35.68 || c.Lng != 139.69 {
		t.Fatalf("unexpected scan result: %+v", c)
	}
}

func TestNullCoordinates_ValueNilWhenUnset(t *testing.T) {
	v, err := NullCoordinates{}.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil driver value, got %v", v)
	}
}

func TestCoordinates_Validate(t *testing.T) {
	if err := (Coordinates{Lat: 45, Lng: 90}).Validate(); err != nil {
		t.Fatalf("expected valid coordinates, got %v", err)
	}
	if err := (Coordinates{Lat: 91}).Validate(); !errors.Is(err, ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates for latitude, got %v", err)
	}
	if err := (Coordinates{Lng: -181}).Validate(); !errors.Is(err, ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates for longitude, got %v", err)
	}
}
