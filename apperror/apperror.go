// Package apperror defines the application error taxonomy and the JSON
// envelope every handler responds with. Handlers never build error
// responses by hand; they return an *AppError (or any error, which is
// coerced to an internal one) and let WriteError shape the wire format.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// ValidationError represents missing or malformed request input.
	ValidationError
	// ConflictError represents a duplicate resource, e.g. an email that is already registered.
	ConflictError
	// AuthError represents failed authentication (bad credentials, bad token).
	AuthError
	// NotFoundError represents a resource that does not exist.
	NotFoundError
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ExternalServiceError represents a failure in a third-party collaborator (media hosting).
	ExternalServiceError
	// ConfigError represents invalid application configuration.
	ConfigError
	// InternalError represents any other unexpected failure.
	InternalError
)

// AppError carries a user-facing message, a classification, and an
// optional wrapped cause that is logged but never serialized.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to the HTTP status this API ships with.
// Validation and conflict failures answer 401: that is the published
// contract of this service, kept as-is for client compatibility.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError, ConflictError, AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates an AppError with an explicit type.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return NewAppError(ConflictError, message, underlying)
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, underlying error) *AppError {
	return NewAppError(AuthError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewExternalServiceError creates an ExternalServiceError.
func NewExternalServiceError(message string, underlying error) *AppError {
	return NewAppError(ExternalServiceError, message, underlying)
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return NewAppError(ConfigError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// Envelope is the uniform response shape: a message and a success flag.
// Handlers embed it in richer payloads when extra data travels with it.
type Envelope struct {
	Message string `json:"message" example:"Account created successfully."`
	Success bool   `json:"success" example:"true"`
}

// ToEnvelope converts an AppError to its wire representation. Server-side
// failures are swallowed to a fixed string so internals never leak.
func (e *AppError) ToEnvelope() Envelope {
	msg := e.Message
	if e.StatusCode() == http.StatusInternalServerError {
		msg = "Internal Server Error"
	}
	return Envelope{Message: msg, Success: false}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// WriteJSON serializes data to the response writer with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"message":"Internal Server Error","success":false}`, http.StatusInternalServerError)
	}
}

// WriteError writes any error as a standardized envelope. Errors that are
// not AppErrors are treated as internal failures.
func WriteError(w http.ResponseWriter, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("Internal Server Error", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToEnvelope())
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflictError reports whether err is a ConflictError.
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
