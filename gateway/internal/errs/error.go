package errs

import (
	"errors"
)

var (
	ErrUnavailable  = errors.New("shareit server is unavailable")
	ErrUnknownState = errors.New("Unknown state")
	ErrBookingDates = errors.New("start must be in the future and before end")
)

// StateErrorResponse is the body returned for an unsupported booking state.
type StateErrorResponse struct {
	Error string `json:"error"`
}
