package usecase

//go:generate mockgen -source=credential_verifier.go -destination=../../tests/mock/usecase/mock_credential_verifier.go -package=usecasemock

import (
	"errors"
	"strings"
	"time"

	"household-services/internal/domain/auth"
	"household-services/internal/domain/user"
	"household-services/internal/pkg/errs"
	"household-services/internal/pkg/jwt"

	"github.com/google/uuid"
)

const bearerScheme = "Bearer"

// CredentialVerifier turns a raw credential into a verified identity. It never touches storage.
type CredentialVerifier interface {
	Verify(rawCredential string) (auth.Identity, error)
}

type credentialVerifierImpl struct {
	verifier *jwt.Verifier
}

func NewCredentialVerifier(verifier *jwt.Verifier) CredentialVerifier {
	return &credentialVerifierImpl{
		verifier: verifier,
	}
}

func (v *credentialVerifierImpl) Verify(rawCredential string) (auth.Identity, error) {
	token := ExtractToken(rawCredential)
	if token == "" {
		return auth.Identity{}, errs.ErrMissingCredential
	}

	if v.verifier == nil || !v.verifier.Configured() {
		return auth.Identity{}, errs.ErrServerMisconfigured
	}

	claims, err := v.verifier.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrNoSecret) {
			return auth.Identity{}, errs.ErrServerMisconfigured
		}
		return auth.Identity{}, errs.Wrap(errs.ErrInvalidCredential, err.Error())
	}

	subjectID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return auth.Identity{}, errs.Wrap(errs.ErrInvalidCredential, "subject is not a valid id")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return auth.Identity{}, errs.Wrapf(errs.ErrInvalidCredential, "unknown role %q", claims.Role)
	}

	var issuedAt, expiresAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return auth.NewIdentity(subjectID, role, claims.Email, issuedAt, expiresAt), nil
}

// ExtractToken accepts "Bearer <token>" as well as a bare token. The scheme is matched
// case-sensitively, so "bearer x" is treated as a bare (and therefore invalid) token.
func ExtractToken(rawCredential string) string {
	raw := strings.TrimSpace(rawCredential)
	if raw == bearerScheme {
		return ""
	}
	if rest, ok := strings.CutPrefix(raw, bearerScheme+" "); ok {
		return strings.TrimSpace(rest)
	}
	return raw
}
