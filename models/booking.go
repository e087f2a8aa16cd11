package models

import "time"

// BookingStatus is the terminal state of a booking request.
// A request either becomes Confirmed, or is rejected with a reason.
type BookingStatus string

const (
	BookingConfirmed          BookingStatus = "confirmed"
	BookingRejectedConflict   BookingStatus = "rejected_conflict"
	BookingRejectedPastNotice BookingStatus = "rejected_past_notice"
)

// Booking is a confirmed reservation of one time slot.
type Booking struct {
	ID         string        `bson:"id" json:"id"`                 // UUID
	ScheduleID string        `bson:"scheduleId" json:"scheduleId"` // schedule the slot belongs to
	GuestName  string        `bson:"guestName" json:"guestName"`
	GuestEmail string        `bson:"guestEmail" json:"guestEmail"`
	Start      time.Time     `bson:"start" json:"start"` // absolute instant, half-open [Start, End)
	End        time.Time     `bson:"end" json:"end"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the guest-submitted candidate slot.
type BookingRequest struct {
	ScheduleID string    `json:"scheduleId" binding:"required"`
	GuestName  string    `json:"guestName" binding:"required"`
	GuestEmail string    `json:"guestEmail" binding:"required,email"`
	Start      time.Time `json:"start" binding:"required"`
}

// BookingConfirmation is returned after a booking is committed.
type BookingConfirmation struct {
	BookingID string    `json:"bookingId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Invite    string    `json:"invite,omitempty"` // ICS payload for the guest's calendar
	CreatedAt time.Time `json:"createdAt"`
}
