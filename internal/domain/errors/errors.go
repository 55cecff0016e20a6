package errors

import (
	"net/http"

	"studio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, also the "error" field of sync responses
	Message() string   // Short machine-friendly message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.errorCode + ": " + e.message
	}

	return e.errorCode + ": " + e.message + ": " + e.details
}

// Is matches errors carrying the same code so WithDetails copies still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode && t.message == e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Request errors
var (
	ErrInvalidJSON = NewBaseError(
		http.StatusBadRequest,
		"invalid_json",
		"request body is not valid JSON",
		"",
	)

	ErrMissingAccountID = NewBaseError(
		http.StatusBadRequest,
		"missing_account_id",
		"accountId is required",
		"",
	)

	ErrInvalidAccountID = NewBaseError(
		http.StatusBadRequest,
		"invalid_account_id",
		"accountId must be a UUID",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"validation_failed",
		"input validation failed",
		"",
	)

	ErrMissingBearerToken = NewBaseError(
		http.StatusUnauthorized,
		"missing_bearer_token",
		"authorization bearer token is required",
		"",
	)

	ErrInvalidSession = NewBaseError(
		http.StatusUnauthorized,
		"invalid_session",
		"session token is invalid or expired",
		"",
	)

	ErrInvalidInternalSecret = NewBaseError(
		http.StatusUnauthorized,
		"unauthorized",
		"internal trigger secret mismatch",
		"",
	)
)

// Account and resource errors
var (
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"account_not_found",
		"account not found",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusBadRequest,
		"account_inactive",
		"account is inactive",
		"",
	)

	ErrAccountForbidden = NewBaseError(
		http.StatusForbidden,
		"forbidden",
		"account belongs to another user",
		"",
	)

	ErrMissingGoogleAccountID = NewBaseError(
		http.StatusBadRequest,
		"missing_google_account_id",
		"could not resolve Google account",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"location_not_found",
		"location not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"review_not_found",
		"review not found",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"invalid_state",
		"invalid or expired state",
		"",
	)
)

// Credential errors
var (
	// ErrReconnectRequired means Google rejected the refresh token; the user must reconnect.
	ErrReconnectRequired = NewBaseError(
		http.StatusUnauthorized,
		"invalid_grant",
		"reconnect_required",
		"",
	)

	ErrTokenRefreshFailed = NewBaseError(
		http.StatusBadGateway,
		"token_refresh_failed",
		"token refresh failed",
		"",
	)

	ErrOAuthMissing = NewBaseError(
		http.StatusInternalServerError,
		"oauth_missing",
		"OAuth client credentials are not configured",
		"",
	)

	ErrNoUserToken = NewBaseError(
		http.StatusNotFound,
		"no_user_token",
		"no usable user token",
		"",
	)

	ErrTokenExchangeFailed = NewBaseError(
		http.StatusBadRequest,
		"token_exchange_failed",
		"authorization code exchange failed",
		"",
	)

	ErrUserInfoFailed = NewBaseError(
		http.StatusBadGateway,
		"userinfo_failed",
		"failed to fetch Google user info",
		"",
	)

	ErrServiceAccountMissing = NewBaseError(
		http.StatusInternalServerError,
		"google_auth_error",
		"sa_missing",
		"",
	)

	ErrServiceAccountInvalid = NewBaseError(
		http.StatusInternalServerError,
		"google_auth_error",
		"sa_invalid",
		"",
	)

	ErrServiceAccountTokenError = NewBaseError(
		http.StatusInternalServerError,
		"google_auth_error",
		"sa_token_error",
		"",
	)

	ErrServiceAccountTokenMissing = NewBaseError(
		http.StatusInternalServerError,
		"google_auth_error",
		"sa_token_missing",
		"",
	)
)

// Upstream errors
var (
	ErrNetwork = NewBaseError(
		http.StatusGatewayTimeout,
		"network_error",
		"upstream request failed",
		"",
	)

	ErrAccountsAPI = NewBaseError(
		http.StatusBadGateway,
		"accounts_api_error",
		"accounts API request failed",
		"",
	)

	ErrLocationsAPI = NewBaseError(
		http.StatusBadGateway,
		"locations_api_error",
		"locations API request failed",
		"",
	)

	ErrReviewsAPI = NewBaseError(
		http.StatusBadGateway,
		"reviews_api_error",
		"reviews API request failed",
		"",
	)

	ErrMediaAPI = NewBaseError(
		http.StatusBadGateway,
		"media_api_error",
		"media API request failed",
		"",
	)

	ErrReplyAPI = NewBaseError(
		http.StatusBadGateway,
		"reply_api_error",
		"review reply API request failed",
		"",
	)
)

// General errors
var (
	ErrSyncFailed = NewBaseError(
		http.StatusInternalServerError,
		"sync_failed",
		"sync failed",
		"",
	)

	ErrSchedulingDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"scheduling_disabled",
		"sync scheduling is not configured",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"internal_error",
		"internal server error",
		"",
	)
)

// AsAppError extracts an AppError from err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "database_error"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
