package availability

import (
	"time"

	"slotwise/models"
)

// Window is one effective availability window on a day, in minutes from
// midnight, half-open [Start, End).
type Window struct {
	Start int
	End   int
}

// SlotParams bundles the knobs for slot generation.
type SlotParams struct {
	Duration     time.Duration // requested meeting length
	Step         time.Duration // granularity at which slot starts advance
	BufferBefore time.Duration // idle padding required before a slot
	BufferAfter  time.Duration // idle padding required after a slot
	NotBefore    time.Time     // minimum-notice cutoff; earliest allowed slot start
}

// DaySlots generates the bookable slots for one calendar day. day must be
// midnight of the target date in the schedule's timezone. Windows are
// processed in the order given and slots come out in ascending start order
// within each window; nothing is re-sorted across windows.
//
// A candidate is padded with the buffers before the busy check, but a slot
// may still start exactly at a window edge: buffers only have to clear
// busy blocks, not the window boundary itself.
func DaySlots(day time.Time, windows []Window, p SlotParams, busy []models.BusyBlock) []models.TimeSlot {
	if p.Duration <= 0 || p.Step <= 0 {
		return nil
	}

	durMin := int(p.Duration / time.Minute)
	stepMin := int(p.Step / time.Minute)
	if durMin <= 0 || stepMin <= 0 {
		return nil
	}

	var slots []models.TimeSlot
	for _, w := range windows {
		// The cursor stays in minute-of-day so window times keep their
		// wall-clock meaning; instants are anchored per candidate.
		for cur := w.Start; cur+durMin <= w.End; cur += stepMin {
			start := clockInstant(day, cur)
			end := clockInstant(day, cur+durMin)
			if start.Before(p.NotBefore) {
				// Later cursors in this window may still clear the cutoff.
				continue
			}
			padStart := start.Add(-p.BufferBefore)
			padEnd := end.Add(p.BufferAfter)
			if overlapsAny(padStart, padEnd, busy) {
				continue
			}
			slots = append(slots, models.TimeSlot{Start: start, End: end})
		}
	}
	return slots
}

// clockInstant resolves a minute-of-day on day's calendar date through the
// day's zone rules, so 09:00 means 09:00 local even when the date gains or
// loses an hour to a DST transition.
func clockInstant(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}

func overlapsAny(start, end time.Time, busy []models.BusyBlock) bool {
	for _, b := range busy {
		// Half-open instants: [start,end) meets [b.Start,b.End) iff
		// start < b.End && b.Start < end.
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
