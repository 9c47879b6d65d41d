package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoswitch/ecoswitch-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondServiceError maps the service-layer sentinel errors onto HTTP
// statuses; anything unrecognized is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		RespondError(c, http.StatusNotFound, "product_not_found", err)
	case errors.Is(err, services.ErrNoMapping):
		RespondError(c, http.StatusUnprocessableEntity, "no_mapping", err)
	case errors.Is(err, services.ErrNoBenchmark):
		RespondError(c, http.StatusUnprocessableEntity, "no_benchmark", err)
	case errors.Is(err, services.ErrUnmappableProduct):
		RespondError(c, http.StatusUnprocessableEntity, "unmappable_product", err)
	case errors.Is(err, services.ErrInvalidUser):
		RespondError(c, http.StatusBadRequest, "invalid_user", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
