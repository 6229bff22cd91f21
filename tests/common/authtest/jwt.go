//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"household-services/internal/domain/user"
	"household-services/internal/pkg/config"
	pkgjwt "household-services/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the external identity provider does.
type JWTHelper struct {
	secret string
	now    func() time.Time
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{secret: cfg.Secret, now: time.Now}
}

// WithNow pins the issue time, for verifiers running on a mock clock.
func (h *JWTHelper) WithNow(now time.Time) *JWTHelper {
	h.now = func() time.Time { return now }
	return h
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	iat := h.now()
	return h.Sign(t, pkgjwt.Claims{
		UserID: userID.String(),
		Role:   role.String(),
		Email:  role.String() + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(time.Hour)),
		},
	})
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	iat := h.now().Add(-2 * time.Hour)
	return h.Sign(t, pkgjwt.Claims{
		UserID: userID.String(),
		Role:   role.String(),
		Email:  role.String() + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(time.Hour)),
		},
	})
}

func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	other := &JWTHelper{secret: h.secret + "-other", now: h.now}
	return other.GenerateToken(t, userID, role)
}

func (h *JWTHelper) Sign(t *testing.T, claims pkgjwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	require.NoError(t, err)
	return token
}
