// Package errx provides registry-based application errors. Each domain
// package declares a registry with a prefix and registers its error codes
// once; handlers translate *Error values into HTTP responses.
package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport mapping and logging.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeInternal       Type = "INTERNAL"
)

// Error is the application error carried across layers.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"status"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail attaches a key/value pair for diagnostics and responses.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithMessage replaces the registered default message.
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// Code identifies a registered error kind.
type Code struct {
	code       string
	errType    Type
	httpStatus int
	message    string
}

// Registry groups the error codes of one domain under a common prefix.
type Registry struct {
	prefix string
}

func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register declares an error code. Called at package init time.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		code:       r.prefix + "_" + code,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
}

// New builds a fresh *Error for a registered code.
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.code,
		Type:       c.errType,
		HTTPStatus: c.httpStatus,
		Message:    c.message,
	}
}

// Wrap lifts an infrastructure error into an *Error with the given type.
func Wrap(err error, message string, t Type) *Error {
	status := http.StatusInternalServerError
	switch t {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeAuthentication:
		status = http.StatusUnauthorized
	case TypeAuthorization:
		status = http.StatusForbidden
	}
	return &Error{
		Code:       string(t),
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		Err:        err,
	}
}
