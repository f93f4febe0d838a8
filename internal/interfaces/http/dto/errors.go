package dto

import "net/http"

// Generic error codes used by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,

	// Shared domain sentinels
	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"PREMIUM_REQUIRED":     http.StatusForbidden,

	// Identity
	"EMAIL_TAKEN":         http.StatusConflict,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"ATHLETE_NOT_FOUND":   http.StatusNotFound,
	"LOGOUT_FAILED":       http.StatusInternalServerError,

	// Billing
	"INVALID_PLAN":       http.StatusBadRequest,
	"ALREADY_SUBSCRIBED": http.StatusConflict,
	"NO_BILLING_ACCOUNT": http.StatusUnprocessableEntity,

	// Training
	"INVALID_DATE":      http.StatusBadRequest,
	"INVALID_STATUS":    http.StatusBadRequest,
	"INVALID_SCRIPT_ID": http.StatusBadRequest,
	"CHECKIN_EXISTS":    http.StatusConflict,
	"SESSION_CLOSED":    http.StatusUnprocessableEntity,

	// Content
	"ALREADY_PUBLISHED":        http.StatusUnprocessableEntity,
	"UNSUPPORTED_CONTENT_TYPE": http.StatusBadRequest,
	"UPLOAD_NOT_FOUND":         http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 so new domain errors fail loudly.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
