package repository

import (
	"context"

	"household-services/internal/domain/booking"
	"household-services/internal/infra"
	sqlc "household-services/internal/infra/sqlc/generated"
	"household-services/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingByIDRow, error)
	ListBookingsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListBookingsByCustomerRow, error)
	ListBookingsByVendor(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.ListBookingsByVendorRow, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, toCreateBookingParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return toBooking(row)
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(sqlc.FindBookingByIDRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *BookingRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByVendor(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor bookings", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(sqlc.FindBookingByIDRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

// UpdateStatus is a compare-and-set on the status column. Zero affected rows means another
// request moved the booking first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, expected booking.Status) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		NewStatus:      b.Status().String(),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:             b.ID(),
		ExpectedStatus: expected.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func toCreateBookingParams(b *booking.Booking) sqlc.CreateBookingParams {
	params := sqlc.CreateBookingParams{
		ID:         b.ID(),
		CustomerID: b.CustomerID(),
		ServiceID:  b.ServiceID(),
		Date:       pgconv.TimeToPgtype(b.Date()),
		Status:     b.Status().String(),
		Address:    pgconv.StringPtrToPgtype(b.Location().Address()),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	if c := b.Location().Coordinates(); c != nil {
		lng, lat := c.Lng(), c.Lat()
		params.Longitude = pgconv.Float64PtrToPgtype(&lng)
		params.Latitude = pgconv.Float64PtrToPgtype(&lat)
	}

	return params
}

func toBooking(row sqlc.FindBookingByIDRow) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has an unknown status", err)
	}

	var coords *booking.Coordinates
	lng, lat := pgconv.Float64PtrFromPgtype(row.Longitude), pgconv.Float64PtrFromPgtype(row.Latitude)
	if lng != nil && lat != nil {
		c, err := booking.NewCoordinates(*lng, *lat)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid coordinates", err)
		}
		coords = &c
	}

	return booking.ReconstructBooking(
		row.ID,
		row.CustomerID,
		row.ServiceID,
		row.VendorID,
		row.ServiceName,
		pgconv.TimeFromPgtype(row.Date),
		status,
		booking.NewLocation(pgconv.StringPtrFromPgtype(row.Address), coords),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
