package booking

import "fmt"

// BookingError is a user-facing, recoverable rejection.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSlotConflict rejects a candidate that overlaps committed time. The
// caller should re-query availability and offer new choices.
var ErrSlotConflict = &BookingError{
	Code:    "slotConflict",
	Message: "slot no longer available",
}

// ErrPastNotice rejects a candidate starting before the minimum-notice
// cutoff.
var ErrPastNotice = &BookingError{
	Code:    "pastNotice",
	Message: "slot starts before the minimum notice window",
}

// ErrBadRequest covers invalid caller input (unknown schedule knobs,
// non-positive duration, malformed range).
func ErrBadRequest(msg string) error {
	return &BookingError{Code: "badRequest", Message: msg}
}
