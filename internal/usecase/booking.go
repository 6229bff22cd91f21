package usecase

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/mock_booking.go -package=usecasemock

import (
	"context"
	"log/slog"

	"household-services/internal/domain/auth"
	"household-services/internal/domain/booking"
	"household-services/internal/domain/service"
	"household-services/internal/domain/user"
	reqdto "household-services/internal/handler/dto/request"
	"household-services/internal/infra"
	"household-services/internal/pkg/clock"
	"household-services/internal/pkg/errs"
	"household-services/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, identity auth.Identity, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error)
	UpdateBookingStatus(ctx context.Context, identity auth.Identity, bookingID uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*readmodel.BookingRM, error)
	ListBookings(ctx context.Context, identity auth.Identity) ([]*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	userRepo    UserRepository
	notifier    Notifier
	clock       clock.Clock
	logger      *slog.Logger
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	notifier Notifier,
	clock clock.Clock,
	logger *slog.Logger,
) BookingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		clock:       clock,
		logger:      logger,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	identity auth.Identity,
	req reqdto.CreateBookingRequest,
) (*readmodel.BookingRM, error) {
	svc, err := u.findService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	b, err := req.ToDomain(identity.SubjectID(), svc, u.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Create(ctx, b); err != nil {
		return nil, errs.Wrap(err, "failed to save booking")
	}

	rm := readmodel.NewBookingRM(b)

	// The booking is already stored; a failed contact lookup only degrades the message.
	customer := u.findContact(ctx, b.CustomerID())
	vendor := u.findContact(ctx, b.VendorID())
	for _, d := range b.CreationDirectives(customer, vendor) {
		u.notifier.Dispatch(ctx, d.Event(map[string]any{"booking": rm}))
	}

	return rm, nil
}

func (u *bookingUseCaseImpl) UpdateBookingStatus(
	ctx context.Context,
	identity auth.Identity,
	bookingID uuid.UUID,
	req reqdto.UpdateBookingStatusRequest,
) (*readmodel.BookingRM, error) {
	to, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	current, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFound, "booking %s not found", bookingID)
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	actor := booking.Actor{ID: identity.SubjectID(), Role: identity.Role()}
	next, directive, err := current.Transition(to, actor, u.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.UpdateStatus(ctx, next, current.Status()); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Wrapf(errs.ErrConflict, "booking %s changed while updating", bookingID)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Wrapf(errs.ErrNotFound, "booking %s not found", bookingID)
		default:
			return nil, errs.Wrap(err, "failed to update booking status")
		}
	}

	rm := readmodel.NewBookingRM(next)
	u.notifier.Dispatch(ctx, directive.Event(map[string]any{
		"booking": rm,
		"status":  next.Status().String(),
	}))

	return rm, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context, identity auth.Identity) ([]*readmodel.BookingRM, error) {
	var (
		bookings []*booking.Booking
		err      error
	)

	switch identity.Role() {
	case user.RoleCustomer:
		bookings, err = u.bookingRepo.ListByCustomer(ctx, identity.SubjectID())
	case user.RoleVendor:
		bookings, err = u.bookingRepo.ListByVendor(ctx, identity.SubjectID())
	default:
		return nil, errs.Wrapf(errs.ErrForbidden, "%s has no bookings of its own", identity.Role())
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	result := make([]*readmodel.BookingRM, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, readmodel.NewBookingRM(b))
	}
	return result, nil
}

func (u *bookingUseCaseImpl) findService(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFound, "service %s not found", id)
		}
		return nil, errs.Wrap(err, "failed to find service")
	}
	return svc, nil
}

func (u *bookingUseCaseImpl) findContact(ctx context.Context, id uuid.UUID) *user.User {
	contact, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.logger.WarnContext(ctx, "Contact lookup failed, using defaults",
			"user_id", id.String(),
			"error", err.Error())
		return nil
	}
	return contact
}
