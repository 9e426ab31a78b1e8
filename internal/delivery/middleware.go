package delivery

import (
	"net/http"
	"strings"
	"time"

	"catalog_service/internal/i18n"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"remote_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		}).Info("Incoming request")

		c.Next()

		statusCode := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"remote_ip":   c.ClientIP(),
			"latency_ms":  time.Since(startTime).Milliseconds(),
		})
		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case statusCode >= 500:
			entry.Error("Request completed with server error")
		case statusCode >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// Localize picks the response language from ?lang= and then Accept-Language.
func Localize(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(languageKey, tr.Match(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// RequireAdmin lets a request through only when it carries the bearer token
// of the active admin session.
func RequireAdmin(auth usecase.AuthUseCase, tr *i18n.Translator, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			log.Warn("Middleware: Missing or malformed Authorization header")
			abortUnauthorized(c, tr)
			return
		}
		if !auth.IsAuthenticated(c.Request.Context(), token) {
			log.Warn("Middleware: Bearer token does not match an active admin session")
			abortUnauthorized(c, tr)
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, tr *i18n.Translator) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
		Status:  "Fail",
		Message: tr.Translate(languageOf(c, tr), "Unauthorized"),
	})
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
