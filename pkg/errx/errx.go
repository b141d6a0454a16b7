package errx

import (
	"fmt"
)

// Type classifies errors into broad categories used for HTTP mapping and logging
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeInternal      Type = "INTERNAL"
)

// Code is a registered error code, namespaced by its registry prefix
type Code string

// definition holds the registered metadata for a code
type definition struct {
	code       Code
	errType    Type
	httpStatus int
	message    string
}

// Registry is a namespace of error codes for one domain (e.g. "ANALYSIS")
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a new error registry with the given prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register adds an error code to the registry and returns the namespaced code
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.definitions[full] = definition{
		code:       full,
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New creates an error for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: 500,
			Message:    "unregistered error code",
		}
	}
	return &Error{
		Code:       def.code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

// NewWithCause creates an error for a registered code wrapping an underlying cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.Cause = cause
	return e
}

// Error is a structured application error with HTTP mapping and detail bag
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a single key/value detail and returns the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple details at once and returns the error
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// ToHTTPResponse renders the error as a JSON-serializable response body
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}
