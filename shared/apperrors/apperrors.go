// Package apperrors defines the error taxonomy shared by the booking core and
// the marketplace API. Every type carries a user-facing message; when the
// server gave none, a fixed French fallback is shown instead.
package apperrors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	// FallbackMessage is shown when a failure carries no server message
	FallbackMessage = "Une erreur est survenue. Veuillez réessayer."
	// NetworkFallbackMessage is shown for transport failures
	NetworkFallbackMessage = "Impossible de contacter le serveur. Vérifiez votre connexion et réessayez."
	// PriceUnavailableMessage is shown when a service has no usable price
	PriceUnavailableMessage = "Prix indisponible pour ce service"
)

// Kind names an error category on the wire
type Kind string

const (
	KindValidation    Kind = "validation"
	KindRequest       Kind = "request"
	KindConflict      Kind = "conflict"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindNetwork       Kind = "network"
)

// FieldError attaches a message to an input field
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// ValidationError is raised for malformed input before any network call
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(param, msg string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Param: param, Msg: msg}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Param+": "+fe.Msg)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// UserMessage returns the first field message
func (e *ValidationError) UserMessage() string {
	if len(e.Errors) == 0 || e.Errors[0].Msg == "" {
		return FallbackMessage
	}
	return e.Errors[0].Msg
}

// RequestError is a structured failure returned by a remote collaborator
type RequestError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.UserMessage())
}

func (e *RequestError) UserMessage() string {
	return orFallback(e.Message)
}

// ConflictError is raised when an entity is not in the state an operation requires
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.UserMessage()
}

func (e *ConflictError) UserMessage() string {
	return orFallback(e.Message)
}

// AuthorizationError is raised when the actor lacks the role or identity required
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return "unauthorized: " + e.UserMessage()
}

func (e *AuthorizationError) UserMessage() string {
	return orFallback(e.Message)
}

// NotFoundError is raised when a reservation, payment or assignment is missing
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.UserMessage()
}

func (e *NotFoundError) UserMessage() string {
	return orFallback(e.Message)
}

// NetworkError is a transport-level failure (timeout, DNS, connection refused)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) UserMessage() string {
	return NetworkFallbackMessage
}

type userMessager interface {
	UserMessage() string
}

// UserMessage extracts the message to display for err
func UserMessage(err error) string {
	var um userMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}
	return FallbackMessage
}

// FieldErrors returns the field-level errors carried by err, if any
func FieldErrors(err error) []FieldError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Errors
	}
	var rerr *RequestError
	if errors.As(err, &rerr) {
		return rerr.Errors
	}
	return nil
}

// KindOf classifies err; unknown errors are request errors
func KindOf(err error) Kind {
	var (
		verr *ValidationError
		cerr *ConflictError
		aerr *AuthorizationError
		nerr *NotFoundError
		terr *NetworkError
	)
	switch {
	case errors.As(err, &verr):
		return KindValidation
	case errors.As(err, &cerr):
		return KindConflict
	case errors.As(err, &aerr):
		return KindAuthorization
	case errors.As(err, &nerr):
		return KindNotFound
	case errors.As(err, &terr):
		return KindNetwork
	default:
		return KindRequest
	}
}

// HTTPStatus maps err onto the status code the APIs answer with
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindNetwork:
		return http.StatusBadGateway
	}

	var rerr *RequestError
	if errors.As(err, &rerr) && rerr.Status >= 400 {
		return rerr.Status
	}
	return http.StatusInternalServerError
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsAuthorization reports whether err is an AuthorizationError
func IsAuthorization(err error) bool {
	return KindOf(err) == KindAuthorization
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsNetwork reports whether err is a NetworkError
func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

func orFallback(msg string) string {
	if msg == "" {
		return FallbackMessage
	}
	return msg
}
