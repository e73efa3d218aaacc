package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so transport layers can map it to a
// status code without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindRateLimited
)

type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidation(message string, fields ...string) *AppError {
	return &AppError{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: message, Fields: fields}
}

func NewUnauthenticated(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Code: "UNAUTHENTICATED", Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Code: "FORBIDDEN", Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: "NOT_FOUND", Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Code: "CONFLICT", Message: message}
}

func NewRateLimited(message string) *AppError {
	return &AppError{Kind: KindRateLimited, Code: "RATE_LIMITED", Message: message}
}

// As unwraps err into an *AppError, or nil if it is not one.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HTTPStatus maps an error to the HTTP status a handler should return.
// Unclassified errors map to 500.
func HTTPStatus(err error) int {
	appErr := As(err)
	if appErr == nil {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}
