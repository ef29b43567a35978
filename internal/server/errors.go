package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/middleware"
	"github.com/walletsim/walletsim/internal/validation"
)

type errorBody struct {
	Error     string                  `json:"error"`
	Code      string                  `json:"code"`
	Key       string                  `json:"key,omitempty"`
	Fields    []validation.FieldError `json:"fields,omitempty"`
	RequestID string                  `json:"request_id,omitempty"`
}

// ErrorHandler renders handler errors as JSON with a status derived from the error kind.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code := classify(err)
		body := errorBody{
			Error:     err.Error(),
			Code:      code,
			RequestID: middleware.GetRequestID(c),
		}

		var nf *apperror.NotFoundError
		if errors.As(err, &nf) {
			body.Key = nf.Key
		}
		var verr *validation.Error
		if errors.As(err, &verr) {
			body.Fields = verr.Fields
		}
		if status == http.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "unhandled error", slog.Any("error", err), slog.String("path", c.Path()))
			body.Error = "internal server error"
		}

		return c.Status(status).JSON(body)
	}
}

func classify(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, "http_error"
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperror.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "insufficient_funds"
	case errors.Is(err, apperror.ErrCurrencyMismatch):
		return http.StatusUnprocessableEntity, "currency_mismatch"
	case errors.Is(err, apperror.ErrInvalidOperation):
		return http.StatusConflict, "invalid_operation"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
