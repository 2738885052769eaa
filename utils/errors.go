package utils

import "net/http"

// AppError is the failure type returned by the core. Code doubles as the
// HTTP status the boundary responds with.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// Internal deliberately carries a generic message; the underlying cause is
// logged where it happened, never returned to the client.
func Internal(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}
