//go:build unit

package usecase_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"household-services/internal/domain/auth"
	"household-services/internal/domain/user"
	"household-services/internal/pkg/errs"
	"household-services/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func identityFor(role user.Role) auth.Identity {
	return auth.NewIdentity(uuid.New(), role, string(role)+"@example.com", tokenIssuedAt, tokenIssuedAt.Add(time.Hour))
}

func TestRoleGate_Authorize(t *testing.T) {
	tests := []struct {
		name    string
		role    user.Role
		allowed auth.RoleSet
		errIs   error
	}{
		{name: "single role match", role: user.RoleAdmin, allowed: auth.NewRoleSet(user.RoleAdmin)},
		{name: "member of allow set", role: user.RoleVendor, allowed: auth.NewRoleSet(user.RoleCustomer, user.RoleVendor)},
		{name: "not in allow set", role: user.RoleCustomer, allowed: auth.NewRoleSet(user.RoleAdmin), errIs: errs.ErrForbidden},
		{name: "admin is not implicitly allowed", role: user.RoleAdmin, allowed: auth.NewRoleSet(user.RoleVendor), errIs: errs.ErrForbidden},
		{name: "empty allow set admits nobody", role: user.RoleAdmin, allowed: auth.NewRoleSet(), errIs: errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := usecase.NewRoleGate(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			err := gate.Authorize(context.Background(), identityFor(tt.role), tt.allowed)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleGate_LogsEveryDecision(t *testing.T) {
	var buf bytes.Buffer
	gate := usecase.NewRoleGate(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	identity := identityFor(user.RoleCustomer)

	_ = gate.Authorize(context.Background(), identity, auth.NewRoleSet(user.RoleCustomer))
	assert.Contains(t, buf.String(), "Role check passed")
	assert.Contains(t, buf.String(), "user_id="+identity.Subject())

	buf.Reset()
	_ = gate.Authorize(context.Background(), identity, auth.NewRoleSet(user.RoleAdmin))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "Role check denied")
	assert.Contains(t, buf.String(), "allowed=admin")
}
