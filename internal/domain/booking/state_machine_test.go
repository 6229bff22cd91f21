//go:build unit

package booking_test

import (
	"testing"
	"time"

	"household-services/internal/domain/booking"
	"household-services/internal/domain/notification"
	"household-services/internal/domain/user"
	"household-services/internal/pkg/errs"
	"household-services/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusConfirmed,
	booking.StatusCancelled,
	booking.StatusCompleted,
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]booking.Status]bool{
		{booking.StatusPending, booking.StatusConfirmed}:   true,
		{booking.StatusPending, booking.StatusCancelled}:   true,
		{booking.StatusConfirmed, booking.StatusCompleted}: true,
		{booking.StatusConfirmed, booking.StatusCancelled}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[[2]booking.Status{from, to}], booking.CanTransition(from, to))
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range allStatuses {
		leaves := false
		for _, to := range allStatuses {
			leaves = leaves || booking.CanTransition(s, to)
		}
		assert.Equal(t, !leaves, s.IsTerminal(), s.String())
	}
}

func TestTransition(t *testing.T) {
	customerID := uuid.New()
	vendorID := uuid.New()
	later := now.Add(time.Hour)

	customer := booking.Actor{ID: customerID, Role: user.RoleCustomer}
	vendor := booking.Actor{ID: vendorID, Role: user.RoleVendor}
	admin := booking.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	otherCustomer := booking.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	otherVendor := booking.Actor{ID: uuid.New(), Role: user.RoleVendor}
	// Same id as the owning vendor but presenting the customer role.
	vendorAsCustomer := booking.Actor{ID: vendorID, Role: user.RoleCustomer}

	build := func(status booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithVendorID(vendorID).
			WithServiceName("Deep Cleaning").
			WithStatus(status).
			BuildDomain()
	}

	tests := []struct {
		name  string
		from  booking.Status
		to    booking.Status
		actor booking.Actor
		errIs error
	}{
		{name: "vendor confirms pending", from: booking.StatusPending, to: booking.StatusConfirmed, actor: vendor},
		{name: "admin confirms pending", from: booking.StatusPending, to: booking.StatusConfirmed, actor: admin},
		{name: "customer cancels pending", from: booking.StatusPending, to: booking.StatusCancelled, actor: customer},
		{name: "vendor cancels pending", from: booking.StatusPending, to: booking.StatusCancelled, actor: vendor},
		{name: "vendor completes confirmed", from: booking.StatusConfirmed, to: booking.StatusCompleted, actor: vendor},
		{name: "admin completes confirmed", from: booking.StatusConfirmed, to: booking.StatusCompleted, actor: admin},
		{name: "customer cancels confirmed", from: booking.StatusConfirmed, to: booking.StatusCancelled, actor: customer},

		{name: "customer may not confirm", from: booking.StatusPending, to: booking.StatusConfirmed, actor: customer, errIs: errs.ErrForbidden},
		{name: "customer may not complete", from: booking.StatusConfirmed, to: booking.StatusCompleted, actor: customer, errIs: errs.ErrForbidden},
		{name: "foreign vendor may not confirm", from: booking.StatusPending, to: booking.StatusConfirmed, actor: otherVendor, errIs: errs.ErrForbidden},
		{name: "foreign customer may not cancel", from: booking.StatusPending, to: booking.StatusCancelled, actor: otherCustomer, errIs: errs.ErrForbidden},
		{name: "admin may not cancel", from: booking.StatusPending, to: booking.StatusCancelled, actor: admin, errIs: errs.ErrForbidden},
		{name: "role decides, not the id", from: booking.StatusPending, to: booking.StatusConfirmed, actor: vendorAsCustomer, errIs: errs.ErrForbidden},

		{name: "same state", from: booking.StatusPending, to: booking.StatusPending, actor: vendor, errIs: errs.ErrInvalidTransition},
		{name: "skip confirmation", from: booking.StatusPending, to: booking.StatusCompleted, actor: vendor, errIs: errs.ErrInvalidTransition},
		{name: "back to pending", from: booking.StatusConfirmed, to: booking.StatusPending, actor: admin, errIs: errs.ErrInvalidTransition},
		{name: "cancelled is terminal", from: booking.StatusCancelled, to: booking.StatusConfirmed, actor: vendor, errIs: errs.ErrInvalidTransition},
		{name: "completed is terminal", from: booking.StatusCompleted, to: booking.StatusCancelled, actor: customer, errIs: errs.ErrInvalidTransition},
		{name: "edge is checked before the actor", from: booking.StatusCompleted, to: booking.StatusPending, actor: otherCustomer, errIs: errs.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := build(tt.from)

			next, directive, err := b.Transition(tt.to, tt.actor, later)

			assert.Equal(t, tt.from, b.Status(), "receiver must not change")
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, next)
				assert.Equal(t, notification.Directive{}, directive)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, next.Status())
			assert.Equal(t, later, next.UpdatedAt())
			assert.Equal(t, b.ID(), next.ID())
			assert.Equal(t, notification.KindBookingStatusChanged, directive.Kind)
		})
	}
}

func TestTransition_Directive(t *testing.T) {
	customerID := uuid.New()
	vendorID := uuid.New()
	base := builder.NewBookingBuilder().
		WithCustomerID(customerID).
		WithVendorID(vendorID).
		WithServiceName("Deep Cleaning")

	t.Run("vendor action notifies the customer", func(t *testing.T) {
		b := base.WithStatus(booking.StatusPending).BuildDomain()

		_, d, err := b.Transition(booking.StatusConfirmed, booking.Actor{ID: vendorID, Role: user.RoleVendor}, now)
		require.NoError(t, err)

		assert.Equal(t, customerID.String(), d.Target)
		assert.Equal(t, `Your booking for "Deep Cleaning" is now "confirmed"`, d.Message)
		assert.Empty(t, d.ContactField)
	})

	t.Run("admin action notifies the customer", func(t *testing.T) {
		b := base.WithStatus(booking.StatusConfirmed).BuildDomain()

		_, d, err := b.Transition(booking.StatusCompleted, booking.Actor{ID: uuid.New(), Role: user.RoleAdmin}, now)
		require.NoError(t, err)

		assert.Equal(t, customerID.String(), d.Target)
		assert.Equal(t, `Your booking for "Deep Cleaning" is now "completed"`, d.Message)
	})

	t.Run("customer action notifies the vendor", func(t *testing.T) {
		b := base.WithStatus(booking.StatusPending).BuildDomain()

		_, d, err := b.Transition(booking.StatusCancelled, booking.Actor{ID: customerID, Role: user.RoleCustomer}, now)
		require.NoError(t, err)

		assert.Equal(t, vendorID.String(), d.Target)
		assert.Equal(t, `Booking for "Deep Cleaning" was cancelled by the customer`, d.Message)
	})

	t.Run("missing service name", func(t *testing.T) {
		b := builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithVendorID(vendorID).
			WithServiceName("").
			BuildDomain()

		_, d, err := b.Transition(booking.StatusConfirmed, booking.Actor{ID: vendorID, Role: user.RoleVendor}, now)
		require.NoError(t, err)
		assert.Equal(t, `Your booking for "a service" is now "confirmed"`, d.Message)
	})
}

func TestCreationDirectives(t *testing.T) {
	b := builder.NewBookingBuilder().WithServiceName("Deep Cleaning").BuildDomain()

	t.Run("each side gets the other's name and phone", func(t *testing.T) {
		customer, err := builder.NewUserBuilder().WithID(b.CustomerID()).BuildDomain()
		require.NoError(t, err)
		vendor, err := builder.NewUserBuilder().AsVendor().WithID(b.VendorID()).BuildDomain()
		require.NoError(t, err)

		directives := b.CreationDirectives(customer, vendor)
		require.Len(t, directives, 2)

		toVendor, toCustomer := directives[0], directives[1]

		assert.Equal(t, notification.Directive{
			Target:       b.VendorID().String(),
			Kind:         notification.KindBookingNotification,
			Message:      "New booking from Jane Doe for Deep Cleaning",
			ContactField: "customerPhone",
			ContactPhone: "+1-555-0100",
		}, toVendor)

		assert.Equal(t, notification.Directive{
			Target:       b.CustomerID().String(),
			Kind:         notification.KindBookingNotification,
			Message:      "Your booking for Deep Cleaning with Acme Cleaning is pending",
			ContactField: "vendorPhone",
			ContactPhone: "+1-555-0199",
		}, toCustomer)
	})

	t.Run("unknown parties fall back to defaults", func(t *testing.T) {
		directives := b.CreationDirectives(nil, nil)
		require.Len(t, directives, 2)

		assert.Equal(t, "New booking from Customer for Deep Cleaning", directives[0].Message)
		assert.Equal(t, "Not provided", directives[0].ContactPhone)
		assert.Equal(t, "Your booking for Deep Cleaning with Vendor is pending", directives[1].Message)
		assert.Equal(t, "Not provided", directives[1].ContactPhone)
	})
}
