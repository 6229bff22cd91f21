package request

import (
	"time"

	"household-services/internal/domain/booking"
	"household-services/internal/domain/service"
	"household-services/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID uuid.UUID        `json:"serviceId" binding:"required"`
	Date      string           `json:"date" binding:"required"`
	Address   *string          `json:"address,omitempty"`
	Location  *LocationRequest `json:"location,omitempty"`
}

// LocationRequest is a GeoJSON point: coordinates are [longitude, latitude].
type LocationRequest struct {
	Type        string    `json:"type,omitempty"`
	Coordinates []float64 `json:"coordinates" binding:"len=2"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r CreateBookingRequest) ToDomain(customerID uuid.UUID, svc *service.Service, now time.Time) (*booking.Booking, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	var coords *booking.Coordinates
	if r.Location != nil {
		if len(r.Location.Coordinates) != 2 {
			return nil, errs.Wrap(errs.ErrValidation, "location needs [longitude, latitude]")
		}
		c, err := booking.NewCoordinates(r.Location.Coordinates[0], r.Location.Coordinates[1])
		if err != nil {
			return nil, err
		}
		coords = &c
	}

	return booking.NewBooking(customerID, svc, date, booking.NewLocation(r.Address, coords), now)
}

func (r UpdateBookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}
