package booking

import (
	"time"

	"household-services/internal/domain/service"
	"household-services/internal/pkg/errs"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	customerID  uuid.UUID
	serviceID   uuid.UUID
	vendorID    uuid.UUID
	serviceName string
	date        time.Time
	status      Status
	location    *Location
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking starts a booking in StatusPending. The service must exist and be approved.
func NewBooking(customerID uuid.UUID, svc *service.Service, date time.Time, location *Location, now time.Time) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrValidation, "customer id is required")
	}
	if svc == nil {
		return nil, errs.Wrap(errs.ErrNotFound, "service not found")
	}
	if !svc.IsBookable() {
		return nil, errs.Wrapf(errs.ErrServiceUnavailable, "service %s is %s", svc.ID(), svc.Status())
	}
	if date.IsZero() {
		return nil, errs.Wrap(errs.ErrValidation, "date is required")
	}

	return &Booking{
		id:          uuid.New(),
		customerID:  customerID,
		serviceID:   svc.ID(),
		vendorID:    svc.VendorID(),
		serviceName: svc.Name(),
		date:        date,
		status:      StatusPending,
		location:    location,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, customerID, serviceID, vendorID uuid.UUID,
	serviceName string,
	date time.Time,
	status Status,
	location *Location,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		customerID:  customerID,
		serviceID:   serviceID,
		vendorID:    vendorID,
		serviceName: serviceName,
		date:        date,
		status:      status,
		location:    location,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) IsTerminal() bool {
	return b.status.IsTerminal()
}

func (b *Booking) IsOwnedByCustomer(id uuid.UUID) bool {
	return b.customerID == id
}

func (b *Booking) IsOwnedByVendor(id uuid.UUID) bool {
	return b.vendorID == id
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) ServiceID() uuid.UUID  { return b.serviceID }
func (b *Booking) VendorID() uuid.UUID   { return b.vendorID }
func (b *Booking) ServiceName() string   { return b.serviceName }
func (b *Booking) Date() time.Time       { return b.date }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Location() *Location   { return b.location }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
