package response

import (
	"time"

	"household-services/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID             `json:"id"`
	CustomerID  uuid.UUID             `json:"customerId"`
	ServiceID   uuid.UUID             `json:"serviceId"`
	VendorID    uuid.UUID             `json:"vendorId"`
	ServiceName string                `json:"serviceName"`
	Date        time.Time             `json:"date"`
	Status      string                `json:"status"`
	Location    *readmodel.LocationRM `json:"location,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

type BookingEnvelope struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

func FromBookingRM(rm *readmodel.BookingRM) (*BookingResponse, error) {
	resp := &BookingResponse{}
	if err := copier.Copy(resp, rm); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromBookingRMs(rms []*readmodel.BookingRM) (*BookingListResponse, error) {
	resp := &BookingListResponse{Bookings: make([]*BookingResponse, 0, len(rms))}
	for _, rm := range rms {
		b, err := FromBookingRM(rm)
		if err != nil {
			return nil, err
		}
		resp.Bookings = append(resp.Bookings, b)
	}
	return resp, nil
}
