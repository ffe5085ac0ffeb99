package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ServiceTokenHeader carries the shared secret of internal collaborators.
const ServiceTokenHeader = "X-Service-Token"

// ServiceTokenAuth authenticates internal service-to-service calls against a bcrypt hash
// of the shared token. An empty hash disables the protected routes entirely.
func ServiceTokenAuth(tokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if tokenHash == "" {
			logger.Warn("Service token hash not configured, rejecting internal call")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Internal endpoints are disabled"})
			return
		}

		token := c.GetHeader(ServiceTokenHeader)
		if token == "" {
			logger.Warn("Service token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ServiceTokenHeader + " header required"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
			logger.Warn("Service token rejected", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid service token"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), authMethodKey, "service_token")
		ctx = WithLogger(ctx, logger.With(slog.String("auth_method", "service_token")))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
