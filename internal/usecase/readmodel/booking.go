package readmodel

import (
	"time"

	"household-services/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID          uuid.UUID   `json:"id"`
	CustomerID  uuid.UUID   `json:"customerId"`
	ServiceID   uuid.UUID   `json:"serviceId"`
	VendorID    uuid.UUID   `json:"vendorId"`
	ServiceName string      `json:"serviceName"`
	Date        time.Time   `json:"date"`
	Status      string      `json:"status"`
	Location    *LocationRM `json:"location,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// LocationRM keeps GeoJSON point ordering: [longitude, latitude].
type LocationRM struct {
	Address     *string   `json:"address,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

func NewBookingRM(b *booking.Booking) *BookingRM {
	if b == nil {
		return nil
	}
	return &BookingRM{
		ID:          b.ID(),
		CustomerID:  b.CustomerID(),
		ServiceID:   b.ServiceID(),
		VendorID:    b.VendorID(),
		ServiceName: b.ServiceName(),
		Date:        b.Date(),
		Status:      b.Status().String(),
		Location:    newLocationRM(b.Location()),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func newLocationRM(l *booking.Location) *LocationRM {
	if l == nil {
		return nil
	}
	rm := &LocationRM{Address: l.Address()}
	if c := l.Coordinates(); c != nil {
		rm.Coordinates = []float64{c.Lng(), c.Lat()}
	}
	return rm
}
