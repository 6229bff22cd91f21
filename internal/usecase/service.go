package usecase

//go:generate mockgen -source=service.go -destination=../../tests/mock/usecase/mock_service.go -package=usecasemock

import (
	"context"
	"fmt"

	"household-services/internal/domain/auth"
	"household-services/internal/domain/notification"
	"household-services/internal/domain/service"
	"household-services/internal/domain/user"
	"household-services/internal/infra"
	"household-services/internal/pkg/clock"
	"household-services/internal/pkg/errs"
	"household-services/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ServiceUseCase interface {
	ApproveService(ctx context.Context, identity auth.Identity, serviceID uuid.UUID) (*readmodel.ServiceRM, error)
	DeleteService(ctx context.Context, identity auth.Identity, serviceID uuid.UUID) error
}

type serviceUseCaseImpl struct {
	serviceRepo ServiceRepository
	notifier    Notifier
	clock       clock.Clock
}

func NewServiceUseCase(serviceRepo ServiceRepository, notifier Notifier, clock clock.Clock) ServiceUseCase {
	return &serviceUseCaseImpl{
		serviceRepo: serviceRepo,
		notifier:    notifier,
		clock:       clock,
	}
}

// ApproveService notifies the vendor and announces the service to everyone, but only the
// first time it is approved.
func (u *serviceUseCaseImpl) ApproveService(
	ctx context.Context,
	identity auth.Identity,
	serviceID uuid.UUID,
) (*readmodel.ServiceRM, error) {
	if identity.Role() != user.RoleAdmin {
		return nil, errs.Wrap(errs.ErrForbidden, "only admins approve services")
	}

	svc, err := u.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if !svc.Approve(u.clock.Now()) {
		return readmodel.NewServiceRM(svc), nil
	}

	if err := u.serviceRepo.UpdateStatus(ctx, svc); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFound, "service %s not found", serviceID)
		}
		return nil, errs.Wrap(err, "failed to approve service")
	}

	rm := readmodel.NewServiceRM(svc)
	payload := map[string]any{"service": rm}

	u.notifier.Dispatch(ctx, notification.NewEvent(
		svc.VendorID().String(),
		notification.KindServiceNotification,
		fmt.Sprintf("Your service %q was approved", svc.Name()),
		payload,
	))
	u.notifier.Dispatch(ctx, notification.NewBroadcast(
		notification.KindServicePublished,
		fmt.Sprintf("New service available: %s", svc.Name()),
		payload,
	))

	return rm, nil
}

func (u *serviceUseCaseImpl) DeleteService(ctx context.Context, identity auth.Identity, serviceID uuid.UUID) error {
	svc, err := u.findService(ctx, serviceID)
	if err != nil {
		return err
	}

	if identity.Role() != user.RoleAdmin && !(identity.Role() == user.RoleVendor && svc.IsOwnedBy(identity.SubjectID())) {
		return errs.Wrapf(errs.ErrForbidden, "service %s belongs to another vendor", serviceID)
	}

	if err := u.serviceRepo.Delete(ctx, serviceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(errs.ErrNotFound, "service %s not found", serviceID)
		}
		return errs.Wrap(err, "failed to delete service")
	}

	u.notifier.Dispatch(ctx, notification.NewBroadcast(
		notification.KindServiceDeleted,
		fmt.Sprintf("Service %q is no longer available", svc.Name()),
		map[string]any{"serviceId": serviceID.String()},
	))

	return nil
}

func (u *serviceUseCaseImpl) findService(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFound, "service %s not found", id)
		}
		return nil, errs.Wrap(err, "failed to find service")
	}
	return svc, nil
}
