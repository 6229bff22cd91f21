package usecase

//go:generate mockgen -source=announcement.go -destination=../../tests/mock/usecase/mock_announcement.go -package=usecasemock

import (
	"context"
	"strings"

	"household-services/internal/domain/auth"
	"household-services/internal/domain/notification"
	"household-services/internal/pkg/errs"
)

type AnnouncementUseCase interface {
	Announce(ctx context.Context, identity auth.Identity, message string) error
}

type announcementUseCaseImpl struct {
	notifier Notifier
}

func NewAnnouncementUseCase(notifier Notifier) AnnouncementUseCase {
	return &announcementUseCaseImpl{
		notifier: notifier,
	}
}

func (u *announcementUseCaseImpl) Announce(ctx context.Context, identity auth.Identity, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.Wrap(errs.ErrValidation, "announcement message is required")
	}

	u.notifier.Dispatch(ctx, notification.NewBroadcast(
		notification.KindAnnouncement,
		message,
		map[string]any{"from": identity.Subject()},
	))
	return nil
}
