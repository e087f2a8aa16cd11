package bookingRepo

import (
	"context"
	"time"

	"slotwise/models"
)

// ConflictCheck is the predicate run inside the commit transaction. It
// receives the confirmed bookings overlapping the candidate's padded
// window and reports whether the candidate must be rejected.
type ConflictCheck func(existing []models.Booking) bool

// BookingRepository defines data-access methods for bookings.
type BookingRepository interface {
	// GetConfirmedInRange returns confirmed bookings for a schedule that
	// intersect [from, to).
	GetConfirmedInRange(ctx context.Context, scheduleID string, from, to time.Time) ([]models.Booking, error)

	// CreateConfirmed inserts the booking inside a transaction after the
	// conflict check passes. padFrom/padTo bound the overlap query and
	// must already include the schedule's buffers. Returns ErrSlotTaken
	// when the check rejects.
	CreateConfirmed(ctx context.Context, booking *models.Booking, padFrom, padTo time.Time, check ConflictCheck) error
}
