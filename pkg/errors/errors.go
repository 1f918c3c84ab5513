package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Feature gating
	ErrFeatureDisabled = fmt.Errorf("quote requests are disabled")

	// Tokens and auth
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")
	ErrTokenIsNotAccess     = fmt.Errorf("refresh token cannot be used for access")
	ErrEmptyAuthHeader      = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader    = fmt.Errorf("malformed authorization header")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrForbidden            = fmt.Errorf("forbidden")

	// Submission
	ErrInvalidFormToken = fmt.Errorf("form token is invalid or has expired")
	ErrRateLimited      = fmt.Errorf("too many quote requests, please try again later")

	// Context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// Generic
	ErrNotFound   = fmt.Errorf("record not found")
	ErrConflict   = fmt.Errorf("record already exists")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries an HTTP status alongside a user-facing message. The
// wrapped Err and Context are for server-side logs only and never reach the
// client.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// StatusForError resolves the HTTP status for the well-known sentinel errors.
// Anything unrecognized is treated as an internal failure.
func StatusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrFeatureDisabled):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidFormToken), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmptyAuthHeader), errors.Is(err, ErrInvalidAuthHeader),
		errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenNotYetValid), errors.Is(err, ErrTokenIsNotAccess):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
