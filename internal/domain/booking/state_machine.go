package booking

import (
	"fmt"
	"time"

	"household-services/internal/domain/notification"
	"household-services/internal/domain/user"
	"household-services/internal/pkg/errs"

	"github.com/google/uuid"
)

const unnamedService = "a service"

// edges is the whole lifecycle graph. Nothing leads back to pending.
var edges = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Actor is whoever asks for a transition.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func CanTransition(from, to Status) bool {
	for _, next := range edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates the edge first and the actor second. The receiver is left
// untouched; the returned booking carries the new status.
func (b *Booking) Transition(to Status, actor Actor, now time.Time) (*Booking, notification.Directive, error) {
	if !CanTransition(b.status, to) {
		return nil, notification.Directive{}, errs.Wrapf(errs.ErrInvalidTransition,
			"booking cannot move from %s to %s", b.status, to)
	}

	if !b.mayPerform(to, actor) {
		return nil, notification.Directive{}, errs.Wrapf(errs.ErrForbidden,
			"%s %s may not mark booking %s as %s", actor.Role, actor.ID, b.id, to)
	}

	next := *b
	next.status = to
	next.updatedAt = now

	return &next, next.statusDirective(actor), nil
}

func (b *Booking) mayPerform(to Status, actor Actor) bool {
	ownsAsCustomer := actor.Role == user.RoleCustomer && b.IsOwnedByCustomer(actor.ID)
	ownsAsVendor := actor.Role == user.RoleVendor && b.IsOwnedByVendor(actor.ID)

	switch to {
	case StatusCancelled:
		return ownsAsCustomer || ownsAsVendor
	case StatusConfirmed, StatusCompleted:
		return ownsAsVendor || actor.Role == user.RoleAdmin
	default:
		return false
	}
}

// statusDirective addresses the party that did not act.
func (b *Booking) statusDirective(actor Actor) notification.Directive {
	name := b.displayServiceName()

	if actor.Role == user.RoleCustomer {
		return notification.Directive{
			Target:  b.vendorID.String(),
			Kind:    notification.KindBookingStatusChanged,
			Message: fmt.Sprintf("Booking for %q was %s by the customer", name, b.status),
		}
	}

	return notification.Directive{
		Target:  b.customerID.String(),
		Kind:    notification.KindBookingStatusChanged,
		Message: fmt.Sprintf("Your booking for %q is now %q", name, b.status),
	}
}

// CreationDirectives tells the vendor about the new booking and confirms it to the customer.
// Each side receives the other's phone number.
func (b *Booking) CreationDirectives(customer, vendor *user.User) []notification.Directive {
	name := b.displayServiceName()

	return []notification.Directive{
		{
			Target:       b.vendorID.String(),
			Kind:         notification.KindBookingNotification,
			Message:      fmt.Sprintf("New booking from %s for %s", customer.DisplayName("Customer"), name),
			ContactField: "customerPhone",
			ContactPhone: customer.ContactPhone(),
		},
		{
			Target:       b.customerID.String(),
			Kind:         notification.KindBookingNotification,
			Message:      fmt.Sprintf("Your booking for %s with %s is %s", name, vendor.DisplayName("Vendor"), b.status),
			ContactField: "vendorPhone",
			ContactPhone: vendor.ContactPhone(),
		},
	}
}

func (b *Booking) displayServiceName() string {
	if b.serviceName == "" {
		return unnamedService
	}
	return b.serviceName
}
