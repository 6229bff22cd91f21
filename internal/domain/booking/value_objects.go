package booking

import (
	"strings"
	"time"

	"household-services/internal/pkg/errs"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts a full timestamp or a calendar date. Calendar dates are taken as UTC midnight.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errs.Wrap(errs.ErrValidation, "date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.Wrapf(errs.ErrValidation, "date %q is not a valid date", raw)
}

// Coordinates are GeoJSON ordered: longitude first.
type Coordinates struct {
	lng float64
	lat float64
}

func NewCoordinates(lng, lat float64) (Coordinates, error) {
	if lng < -180 || lng > 180 {
		return Coordinates{}, errs.Wrapf(errs.ErrValidation, "longitude %v out of range", lng)
	}
	if lat < -90 || lat > 90 {
		return Coordinates{}, errs.Wrapf(errs.ErrValidation, "latitude %v out of range", lat)
	}
	return Coordinates{lng: lng, lat: lat}, nil
}

func (c Coordinates) Lng() float64 { return c.lng }
func (c Coordinates) Lat() float64 { return c.lat }

// Location is where the customer wants the service performed. Either part may be absent.
type Location struct {
	address     *string
	coordinates *Coordinates
}

func NewLocation(address *string, coordinates *Coordinates) *Location {
	var addr *string
	if address != nil {
		if trimmed := strings.TrimSpace(*address); trimmed != "" {
			addr = &trimmed
		}
	}
	if addr == nil && coordinates == nil {
		return nil
	}
	return &Location{address: addr, coordinates: coordinates}
}

func (l *Location) Address() *string {
	if l == nil {
		return nil
	}
	return l.address
}

func (l *Location) Coordinates() *Coordinates {
	if l == nil {
		return nil
	}
	return l.coordinates
}
