// Package apperr provides coded errors shared by services and controllers.
//
// Services return *StructuredError values; controllers turn them into JSON
// responses with JSON, which picks the HTTP status from the code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden      ErrorCode = "FORBIDDEN"
	ErrCodeConflict       ErrorCode = "CONFLICT"
	ErrCodeInternal       ErrorCode = "INTERNAL"
	ErrCodeUnavailable    ErrorCode = "SERVICE_UNAVAILABLE"

	// ErrCodeNoSoilData means no soil row covers the submitted location, soil type and pH.
	ErrCodeNoSoilData ErrorCode = "NO_SOIL_DATA"
	// ErrCodeNoSuitableCrop means a soil row matched but no crop contains its values.
	ErrCodeNoSuitableCrop ErrorCode = "NO_SUITABLE_CROP"
)

// StructuredError carries a code for programmatic handling, a message safe to
// show to end users, the underlying cause and optional debugging context.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *StructuredError) Unwrap() error { return e.Cause }

// Is matches another StructuredError by code, so sentinel values work with errors.Is.
func (e *StructuredError) Is(target error) bool {
	var t *StructuredError
	if errors.As(target, &t) {
		return t.Code == e.Code && t.Cause == nil && (t.Message == "" || t.Message == e.Message)
	}
	return false
}

func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// CodeOf returns the code of the first StructuredError in err's chain, or
// ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// HTTPStatus maps an error to the HTTP status a controller should answer with.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrCodeNotFound, ErrCodeNoSoilData, ErrCodeNoSuitableCrop:
		return http.StatusNotFound
	case ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes err as {"error": ..., "code": ...}. Internal errors are logged
// and reported with a generic message.
func JSON(c echo.Context, err error) error {
	status := HTTPStatus(err)
	msg := "internal server error"
	var se *StructuredError
	if errors.As(err, &se) && status != http.StatusInternalServerError {
		msg = se.Message
	} else {
		log.WithFields(log.Fields{
			"path":       c.Path(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).WithError(err).Error("request failed")
	}
	return c.JSON(status, echo.Map{"error": msg, "code": CodeOf(err)})
}
