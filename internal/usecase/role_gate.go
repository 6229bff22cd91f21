package usecase

//go:generate mockgen -source=role_gate.go -destination=../../tests/mock/usecase/mock_role_gate.go -package=usecasemock

import (
	"context"
	"log/slog"

	"household-services/internal/domain/auth"
	"household-services/internal/pkg/errs"
)

// RoleGate is a pure set-membership check. Its only side effect is one log line per decision.
type RoleGate interface {
	Authorize(ctx context.Context, identity auth.Identity, allowed auth.RoleSet) error
}

type roleGateImpl struct {
	logger *slog.Logger
}

func NewRoleGate(logger *slog.Logger) RoleGate {
	if logger == nil {
		logger = slog.Default()
	}
	return &roleGateImpl{
		logger: logger,
	}
}

func (g *roleGateImpl) Authorize(ctx context.Context, identity auth.Identity, allowed auth.RoleSet) error {
	attrs := []any{
		slog.String("user_id", identity.Subject()),
		slog.String("role", identity.Role().String()),
		slog.String("allowed", allowed.String()),
	}

	if !allowed.Contains(identity.Role()) {
		g.logger.WarnContext(ctx, "Role check denied", attrs...)
		return errs.Wrapf(errs.ErrForbidden, "role %s required", allowed)
	}

	g.logger.DebugContext(ctx, "Role check passed", attrs...)
	return nil
}
