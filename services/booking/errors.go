package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking workflow taxonomy.
const (
	CodeValidation         = "validationError"
	CodeSlotUnavailable    = "slotUnavailable"
	CodeServiceUnavailable = "serviceUnavailable"
	CodeUpstream           = "upstreamError"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewSlotUnavailableError(msg string) error {
	return &Error{Code: CodeSlotUnavailable, Message: msg}
}

func NewServiceUnavailableError(msg string) error {
	return &Error{Code: CodeServiceUnavailable, Message: msg}
}

func NewUpstreamError(msg string) error {
	return &Error{Code: CodeUpstream, Message: msg}
}

// AsBookingError extracts a workflow Error from an error chain.
func AsBookingError(err error) (*Error, bool) {
	var be *Error
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
