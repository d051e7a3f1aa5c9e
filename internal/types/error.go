package types

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error kinds reported in the "type" field of error responses
const (
	KindInvalidCredentials = "InvalidCredentials"
	KindMissingFields      = "MissingFields"
	KindValidation         = "ValidationError"
	KindNotAuthenticated   = "NotAuthenticated"
	KindPermissionDenied   = "PermissionDenied"
	KindNotFound           = "NotFound"
	KindAlreadyCheckedOut  = "AlreadyCheckedOut"
	KindResidentNotFound   = "ResidentNotFound"
	KindInternal           = "InternalError"
)

// CustomError is an error that knows its HTTP status and kind
type CustomError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Type    string            `json:"type"`
	Fields  map[string]string `json:"fields,omitempty"`

	// cause is logged by the server but never sent to clients
	cause error
}

func (e *CustomError) Error() string {
	var msg string
	if len(e.Fields) == 0 {
		msg = fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
	} else {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		msg = fmt.Sprintf("%d: %s [type: %s, fields: %s]", e.Code, e.Message, e.Type, strings.Join(names, ","))
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any
func (e *CustomError) Unwrap() error {
	return e.cause
}

// KindOf returns the kind of err, or KindInternal for errors that are not a CustomError
func KindOf(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type
	}
	return KindInternal
}

// InvalidCredentials is returned when a username and password do not match
func InvalidCredentials() *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: "Invalid credentials", Type: KindInvalidCredentials}
}

// MissingFields reports every required field that was absent
func MissingFields(names ...string) *CustomError {
	fields := make(map[string]string, len(names))
	for _, name := range names {
		fields[name] = "This field is required."
	}
	return &CustomError{Code: http.StatusBadRequest, Message: "Required fields are missing", Type: KindMissingFields, Fields: fields}
}

// ValidationError reports invalid values keyed by field name
func ValidationError(message string, fields map[string]string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: message, Type: KindValidation, Fields: fields}
}

// NotAuthenticated is returned when no valid token accompanies a request
func NotAuthenticated() *CustomError {
	return &CustomError{Code: http.StatusUnauthorized, Message: "Authentication credentials were not provided or are invalid", Type: KindNotAuthenticated}
}

// PermissionDenied is returned when the caller's role does not allow an action
func PermissionDenied(message string) *CustomError {
	return &CustomError{Code: http.StatusForbidden, Message: message, Type: KindPermissionDenied}
}

// NotFound is returned when a referenced row does not exist
func NotFound(entity string) *CustomError {
	return &CustomError{Code: http.StatusNotFound, Message: fmt.Sprintf("%s not found", entity), Type: KindNotFound}
}

// AlreadyCheckedOut is returned when a security log already has an exit time
func AlreadyCheckedOut() *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: "Visitor has already checked out.", Type: KindAlreadyCheckedOut}
}

// ResidentNotFound is returned when a visitor names a host that does not exist
func ResidentNotFound() *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Message: "Resident not found.", Type: KindResidentNotFound}
}

// InternalError wraps an unexpected store failure. The client only sees a generic message.
func InternalError(err error) *CustomError {
	return &CustomError{Code: http.StatusInternalServerError, Message: "Internal server error", Type: KindInternal, cause: err}
}
