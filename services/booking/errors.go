package booking

import "fmt"

// BookingError is a caller-visible booking failure with a stable code.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSlotConflict is returned when the requested interval overlaps an
// active commitment; the slot is no longer available.
var ErrSlotConflict = &BookingError{
	Code:    "slotConflict",
	Message: "the requested time is no longer available",
}

// ErrPastAppointment is returned when the requested start is not in the
// future.
var ErrPastAppointment = &BookingError{
	Code:    "pastAppointment",
	Message: "appointments cannot be scheduled in the past",
}

// ErrTerminalStatus is returned on an attempt to transition a commitment
// out of a terminal state.
var ErrTerminalStatus = &BookingError{
	Code:    "terminalStatus",
	Message: "the commitment has reached a final state and cannot change",
}
