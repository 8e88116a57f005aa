package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"campus-market/internal/marketerrors"
	"campus-market/internal/models"
	"campus-market/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "market.identity"

// SetIdentity attaches the authenticated caller to the request context
func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
}

// IdentityFromContext returns the caller set by the auth middleware
func IdentityFromContext(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusForbidden, "not allowed"
	case errors.Is(err, marketerrors.ErrInvalidMode):
		return http.StatusBadRequest, "operation not valid for selling mode"
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, marketerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, marketerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
