package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/i18n"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrLookNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidProduct), errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageKey is the client-facing message for err, before translation.
// Validation errors carry the offending field, so their text is kept.
func messageKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, domain.ErrLookNotFound):
		return "Look not found"
	case errors.Is(err, domain.ErrInvalidProduct):
		return err.Error()
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid product ID"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	default:
		return "Internal server error"
	}
}

func respondError(c *gin.Context, tr *i18n.Translator, err error) {
	ErrorResponse(c, mapErrorToStatus(err), tr.Translate(languageOf(c, tr), messageKey(err)))
}

const languageKey = "language"

// languageOf returns the language picked by the Localize middleware, or the
// translator's default when the middleware did not run.
func languageOf(c *gin.Context, tr *i18n.Translator) language.Tag {
	if v, ok := c.Get(languageKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return tr.Default()
}
