package calendar

import (
	"fmt"

	"slotwise/models"

	ical "github.com/arran4/golang-ical"
)

// BuildInvite renders a confirmed booking as an ICS invite the guest can
// import into their own calendar.
func BuildInvite(booking models.Booking, schedule models.Schedule) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodRequest)

	ev := cal.AddEvent(fmt.Sprintf("%s@slotwise", booking.ID))
	ev.SetCreatedTime(booking.CreatedAt)
	ev.SetDtStampTime(booking.CreatedAt)
	ev.SetStartAt(booking.Start)
	ev.SetEndAt(booking.End)
	ev.SetSummary(schedule.Name)
	ev.SetDescription(fmt.Sprintf("Booking for %s", booking.GuestName))
	ev.AddAttendee(booking.GuestEmail, ical.ParticipationStatusNeedsAction)

	return cal.Serialize()
}
