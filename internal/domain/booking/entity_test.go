//go:build unit

package booking_test

import (
	"testing"
	"time"

	"household-services/internal/domain/booking"
	"household-services/internal/domain/service"
	"household-services/internal/pkg/errs"
	"household-services/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	customerID := uuid.New()
	date := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("starts pending and inherits vendor and name from the service", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()
		address := "221B Baker Street"
		coords, err := booking.NewCoordinates(-0.1586, 51.5238)
		require.NoError(t, err)

		b, err := booking.NewBooking(customerID, svc, date, booking.NewLocation(&address, &coords), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, customerID, b.CustomerID())
		assert.Equal(t, svc.ID(), b.ServiceID())
		assert.Equal(t, svc.VendorID(), b.VendorID())
		assert.Equal(t, svc.Name(), b.ServiceName())
		assert.Equal(t, date, b.Date())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, now, b.UpdatedAt())
		require.NotNil(t, b.Location())
		assert.Equal(t, address, *b.Location().Address())
		assert.Equal(t, -0.1586, b.Location().Coordinates().Lng())
		assert.Equal(t, 51.5238, b.Location().Coordinates().Lat())
	})

	t.Run("location is optional", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildDomain()

		b, err := booking.NewBooking(customerID, svc, date, nil, now)
		require.NoError(t, err)
		assert.Nil(t, b.Location())
		assert.Nil(t, b.Location().Address())
		assert.Nil(t, b.Location().Coordinates())
	})

	tests := []struct {
		name       string
		customerID uuid.UUID
		svc        *service.Service
		date       time.Time
		errIs      error
	}{
		{
			name:       "missing service",
			customerID: customerID,
			svc:        nil,
			date:       date,
			errIs:      errs.ErrNotFound,
		},
		{
			name:       "pending service",
			customerID: customerID,
			svc:        builder.NewServiceBuilder().AsPending().BuildDomain(),
			date:       date,
			errIs:      errs.ErrServiceUnavailable,
		},
		{
			name:       "rejected service",
			customerID: customerID,
			svc:        builder.NewServiceBuilder().AsRejected().BuildDomain(),
			date:       date,
			errIs:      errs.ErrServiceUnavailable,
		},
		{
			name:       "zero date",
			customerID: customerID,
			svc:        builder.NewServiceBuilder().BuildDomain(),
			date:       time.Time{},
			errIs:      errs.ErrValidation,
		},
		{
			name:       "missing customer",
			customerID: uuid.Nil,
			svc:        builder.NewServiceBuilder().BuildDomain(),
			date:       date,
			errIs:      errs.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := booking.NewBooking(tt.customerID, tt.svc, tt.date, nil, now)
			require.Nil(t, b)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
		wantErr  bool
	}{
		{name: "RFC3339 in UTC", raw: "2025-03-15T10:00:00Z", expected: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)},
		{name: "RFC3339 with offset is normalized to UTC", raw: "2025-03-15T10:00:00+02:00", expected: time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)},
		{name: "minute precision", raw: "2025-03-15T10:30", expected: time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)},
		{name: "calendar date", raw: "2025-03-15", expected: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding whitespace", raw: " 2025-03-15 ", expected: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "garbage", raw: "next tuesday", wantErr: true},
		{name: "impossible day", raw: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.ParseDate(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "want %s, got %s", tt.expected, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNewCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lng     float64
		lat     float64
		wantErr bool
	}{
		{name: "origin", lng: 0, lat: 0},
		{name: "bounds", lng: 180, lat: -90},
		{name: "longitude too large", lng: 180.1, lat: 0, wantErr: true},
		{name: "latitude too small", lng: 0, lat: -90.5, wantErr: true},
		{name: "swapped pair is caught when latitude overflows", lng: 51.5, lat: 139.7, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := booking.NewCoordinates(tt.lng, tt.lat)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lng, c.Lng())
			assert.Equal(t, tt.lat, c.Lat())
		})
	}
}

func TestNewLocation(t *testing.T) {
	blank := "   "
	padded := "  10 Downing Street "
	coords, _ := booking.NewCoordinates(1, 2)

	assert.Nil(t, booking.NewLocation(nil, nil))
	assert.Nil(t, booking.NewLocation(&blank, nil), "blank address alone is no location")

	loc := booking.NewLocation(&padded, nil)
	require.NotNil(t, loc)
	assert.Equal(t, "10 Downing Street", *loc.Address())
	assert.Nil(t, loc.Coordinates())

	loc = booking.NewLocation(&blank, &coords)
	require.NotNil(t, loc)
	assert.Nil(t, loc.Address())
	assert.Equal(t, coords, *loc.Coordinates())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		got, err := booking.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	for _, s := range []string{"", "Confirmed", "canceled", "done"} {
		_, err := booking.ParseStatus(s)
		assert.ErrorIs(t, err, errs.ErrValidation, s)
	}
}
