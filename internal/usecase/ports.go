package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

import (
	"context"

	"household-services/internal/domain/booking"
	"household-services/internal/domain/notification"
	"household-services/internal/domain/service"
	"household-services/internal/domain/user"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*booking.Booking, error)
	// UpdateStatus persists b only while the stored status still equals expected.
	UpdateStatus(ctx context.Context, b *booking.Booking, expected booking.Status) error
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	UpdateStatus(ctx context.Context, svc *service.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Notifier delivers events fire-and-forget. It never reports delivery failures to the caller.
type Notifier interface {
	Dispatch(ctx context.Context, event notification.Event)
}
