package httperr

import (
	"errors"
	"net/http"

	"household-services/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// AbortWithDomainError maps the error taxonomy onto HTTP. Credential failures stay generic;
// business rule failures carry the specific reason in detail.
func AbortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrMissingCredential):
		AbortWithError(c, http.StatusUnauthorized, err, "No token provided", nil)
	case errors.Is(err, errs.ErrInvalidCredential):
		AbortWithError(c, http.StatusUnauthorized, err, "Invalid token", nil)
	case errors.Is(err, errs.ErrServerMisconfigured):
		AbortWithError(c, http.StatusInternalServerError, err, "Server configuration error", nil)
	case errors.Is(err, errs.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Forbidden", err.Error())
	case errors.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errors.Is(err, errs.ErrServiceUnavailable):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Service not available for booking", err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		AbortWithError(c, http.StatusConflict, err, "Invalid status transition", err.Error())
	case errors.Is(err, errs.ErrConflict):
		AbortWithError(c, http.StatusConflict, err, "Resource was modified concurrently", err.Error())
	case errors.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", err.Error())
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
