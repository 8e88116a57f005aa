package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"campus-market/internal/marketerrors"
	"campus-market/internal/models"
	"campus-market/services/market/helpers"
	"campus-market/utils"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to the account it belongs to
type TokenVerifier interface {
	VerifyToken(ctx context.Context, raw string) (models.User, error)
}

var errMissingToken = errors.New("missing bearer token")

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired rejects requests without a valid bearer token and attaches the
// caller identity for downstream handlers.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" || raw == header {
			utils.JSONError(c, http.StatusUnauthorized, errMissingToken, "authentication required")
			c.Abort()
			return
		}

		user, err := verifier.VerifyToken(c.Request.Context(), raw)
		if err != nil {
			if !errors.Is(err, marketerrors.ErrInvalidToken) && !errors.Is(err, marketerrors.ErrUserNotFound) {
				err = marketerrors.ErrInvalidToken
			}
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, err, message)
			utils.Warn("AuthRequired: token rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		helpers.SetIdentity(c, models.Identity{UserID: user.ID, AccountID: user.AccountID})
		c.Next()
	}
}
