package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/identityservice/identity-service/internal/core/domain"
)

// errorEnvelope is the canonical envelope for all API errors: the same
// {code, message, result} shape success responses use, with a non-zero
// code from the domain taxonomy.
type errorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to deterministic HTTP statuses and taxonomy codes.
//   - Renders aggregated field violations for validation failures.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, envelope := resolveError(err, log, c)
		_ = c.JSON(status, envelope)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorEnvelope) {
	// Aggregated field violations from the request validator.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorEnvelope{
			Code:    int(domain.CodeInvalidRequest),
			Message: domain.ErrInvalidRequest.Message,
			Result:  ve.Fields,
		}
	}

	// Typed application errors carry their own taxonomy code.
	var de *domain.Error
	if errors.As(err, &de) {
		return statusFor(de.Code), errorEnvelope{Code: int(de.Code), Message: de.Message}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorEnvelope{
			Code:    int(codeForStatus(he.Code)),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorEnvelope{
		Code:    int(domain.CodeUnknown),
		Message: "unexpected runtime error",
	}
}

// statusFor maps a taxonomy code to its HTTP status.
func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeUserNotFound, domain.CodeRoleNotFound, domain.CodePermissionNotFound, domain.CodeResourceNotFound:
		return http.StatusNotFound
	case domain.CodeUserExisted, domain.CodeRoleExisted, domain.CodePermissionExisted, domain.CodeStaleVersion:
		return http.StatusConflict
	case domain.CodeUnauthorized, domain.CodeInvalidCredentials, domain.CodeTokenExpired, domain.CodeTokenInvalid:
		return http.StatusUnauthorized
	case domain.CodeForbidden:
		return http.StatusForbidden
	case domain.CodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// codeForStatus classifies transport-level failures that never reached a
// service into the common taxonomy range.
func codeForStatus(status int) domain.Code {
	switch status {
	case http.StatusNotFound:
		return domain.CodeResourceNotFound
	case http.StatusBadRequest:
		return domain.CodeInvalidRequest
	case http.StatusUnauthorized:
		return domain.CodeUnauthorized
	case http.StatusForbidden:
		return domain.CodeForbidden
	default:
		return domain.CodeInternal
	}
}
