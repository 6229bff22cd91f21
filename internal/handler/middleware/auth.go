package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"household-services/internal/domain/auth"
	"household-services/internal/domain/user"
	"household-services/internal/handler/httperr"
	"household-services/internal/pkg/credential"
	"household-services/internal/pkg/errs"
	"household-services/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	verifier usecase.CredentialVerifier
	gate     usecase.RoleGate
	logger   *slog.Logger
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(verifier usecase.CredentialVerifier, gate usecase.RoleGate, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		verifier: verifier,
		gate:     gate,
		logger:   logger,
	}
}

// RequireAuth rejects the request before any handler runs unless it carries a valid credential.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.verifier.Verify(credential.FromRequest(c))
		if err != nil {
			m.logVerifyFailure(c, err)
			httperr.AbortWithDomainError(c, err)
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Next()
	}
}

// RequireRoles must run after RequireAuth.
func (m *AuthMiddleware) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	allowed := auth.NewRoleSet(roles...)
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if err := m.gate.Authorize(c.Request.Context(), identity, allowed); err != nil {
			httperr.AbortWithError(c, http.StatusForbidden, err, allowed.String()+" access required", nil)
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) logVerifyFailure(c *gin.Context, err error) {
	attrs := []any{
		slog.String("request_id", GetRequestID(c)),
		slog.String("path", c.Request.URL.Path),
	}

	switch {
	case errors.Is(err, errs.ErrServerMisconfigured):
		m.logger.Error("Credential verification impossible: JWT secret is not configured",
			append(attrs, slog.String("kind", "server_misconfigured"))...)
	case errors.Is(err, errs.ErrMissingCredential):
		m.logger.Warn("Credential missing", append(attrs, slog.String("kind", "missing_credential"))...)
	default:
		m.logger.Warn("Credential rejected",
			append(attrs, slog.String("kind", "invalid_credential"), slog.String("error", err.Error()))...)
	}
}

func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return auth.Identity{}, false
	}

	identity, ok := v.(auth.Identity)
	return identity, ok
}
