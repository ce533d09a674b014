package httperror

import (
	"fmt"
	"net/http"

	"github.com/go-shopfront/shopfront/xhttp/header"
	"github.com/ugorji/go/codec"
)

// Error represents a single error from API.
type Error struct {
	// HTTPStatus contains the HTTP status code that should be used for this error
	HTTPStatus int `json:"-"`

	// Code identifies the particular error condition [for programatic consumers]
	Code string `json:"code"`

	// Message is an textual description of the error
	Message string `json:"message"`
}

// New builds a new Error instance, building the message string along the way
func New(status int, code string, msgFormat string, vals ...interface{}) error {
	return Error{
		HTTPStatus: status,
		Code:       code,
		Message:    fmt.Sprintf(msgFormat, vals...),
	}
}

// NewPreconditionFailed builds an Error with the PreconditionFailed code
func NewPreconditionFailed(msgFormat string, vals ...interface{}) error {
	return New(http.StatusPreconditionFailed, PreconditionFailed, msgFormat, vals...)
}

// NewInvalidModuleName builds an Error with the InvalidModuleName code
func NewInvalidModuleName(msgFormat string, vals ...interface{}) error {
	return New(http.StatusBadRequest, InvalidModuleName, msgFormat, vals...)
}

// NewEnvironment builds an Error with the Environment code
func NewEnvironment(msgFormat string, vals ...interface{}) error {
	return New(http.StatusInternalServerError, Environment, msgFormat, vals...)
}

// Error implements the standard error interface
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the error code carried by err, or Unexpected if err is not
// an Error produced by this package. Callers branch on the code rather than
// on message text.
func CodeOf(err error) string {
	if e, ok := err.(Error); ok {
		return e.Code
	}
	return Unexpected
}

// WriteHTTPResponse implements how to serialize this error into a HTTP Response
func (e Error) WriteHTTPResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(header.ContentType, header.ApplicationJSON)
	w.WriteHeader(e.HTTPStatus)
	codec.NewEncoder(w, encoderHandle(shouldPrettyPrint(r))).Encode(e)
}
