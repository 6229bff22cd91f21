//go:build unit

package api_test

import (
	"io"
	"log/slog"

	"household-services/internal/domain/auth"
	"household-services/internal/handler/middleware"
	"household-services/internal/pkg/errs"
	"household-services/internal/usecase"
	usecasemock "household-services/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// authenticatedAs stands in for credential verification: any non-empty credential
// resolves to the given identity.
func authenticatedAs(ctrl *gomock.Controller, identity *auth.Identity) gin.HandlerFunc {
	verifier := usecasemock.NewMockCredentialVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any()).DoAndReturn(func(raw string) (auth.Identity, error) {
		if usecase.ExtractToken(raw) == "" {
			return auth.Identity{}, errs.Wrap(errs.ErrMissingCredential, "no credential")
		}
		return *identity, nil
	}).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return middleware.NewAuthMiddleware(verifier, usecasemock.NewMockRoleGate(ctrl), logger).RequireAuth()
}
