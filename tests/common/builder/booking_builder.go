//go:build unit || e2e

package builder

import (
	"time"

	"household-services/internal/domain/booking"
	reqdto "household-services/internal/handler/dto/request"
	sqlc "household-services/internal/infra/sqlc/generated"
	"household-services/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	ServiceID   uuid.UUID
	VendorID    uuid.UUID
	ServiceName string
	Date        time.Time
	Status      booking.Status
	Address     *string
	Coordinates []float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	address := "221B Baker Street"
	return &BookingBuilder{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		ServiceID:   uuid.New(),
		VendorID:    uuid.New(),
		ServiceName: "Deep Cleaning",
		Date:        time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
		Status:      booking.StatusPending,
		Address:     &address,
		Coordinates: []float64{-0.1586, 51.5238},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	var coords *booking.Coordinates
	if len(b.Coordinates) == 2 {
		c, err := booking.NewCoordinates(b.Coordinates[0], b.Coordinates[1])
		if err != nil {
			panic(err)
		}
		coords = &c
	}

	return booking.ReconstructBooking(
		b.ID, b.CustomerID, b.ServiceID, b.VendorID, b.ServiceName,
		b.Date, b.Status, booking.NewLocation(b.Address, coords),
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.FindBookingByIDRow {
	row := sqlc.FindBookingByIDRow{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		ServiceID:   b.ServiceID,
		Date:        pgtype.Timestamptz{Time: b.Date, Valid: true},
		Status:      b.Status.String(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		VendorID:    b.VendorID,
		ServiceName: b.ServiceName,
	}
	if b.Address != nil {
		row.Address = pgtype.Text{String: *b.Address, Valid: true}
	}
	if len(b.Coordinates) == 2 {
		row.Longitude = pgtype.Float8{Float64: b.Coordinates[0], Valid: true}
		row.Latitude = pgtype.Float8{Float64: b.Coordinates[1], Valid: true}
	}
	return row
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	return readmodel.NewBookingRM(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		ServiceID: b.ServiceID,
		Date:      b.Date.Format(time.RFC3339),
		Address:   b.Address,
	}
	if len(b.Coordinates) == 2 {
		req.Location = &reqdto.LocationRequest{
			Type:        "Point",
			Coordinates: []float64{b.Coordinates[0], b.Coordinates[1]},
		}
	}
	return req
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithVendorID(id uuid.UUID) *BookingBuilder {
	b.VendorID = id
	return b
}

func (b *BookingBuilder) WithServiceName(name string) *BookingBuilder {
	b.ServiceName = name
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithoutLocation() *BookingBuilder {
	b.Address = nil
	b.Coordinates = nil
	return b
}
