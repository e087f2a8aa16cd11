package availability

import (
	"time"

	"slotwise/models"
)

// ResolveRequest carries everything one resolution needs. The engine reads
// nothing else: rules, overrides and busy blocks all arrive from the caller.
type ResolveRequest struct {
	Rules     []models.WeeklyRule
	Overrides []models.AvailabilityOverride
	From      time.Time // first date of the range, in the target timezone
	To        time.Time // last date, inclusive
	Params    SlotParams
	Busy      []models.BusyBlock
}

// Resolve walks [From, To] day by day, reduces rules and overrides to each
// date's effective windows, and concatenates the per-day slot lists in
// chronological order. Identical inputs produce identical, order-stable
// output.
func Resolve(req ResolveRequest) []models.TimeSlot {
	from := dateOnly(req.From)
	to := dateOnly(req.To)

	var out []models.TimeSlot
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		windows := EffectiveWindows(req.Rules, req.Overrides, day)
		out = append(out, DaySlots(day, windows, req.Params, req.Busy)...)
	}
	return out
}

// EffectiveWindows reduces weekly rules plus overrides to the window set
// for a single date. Override resolution is all-or-nothing: an unavailable
// override yields no windows, an override with windows replaces the weekly
// rules entirely (an empty-but-present list means zero windows), and only
// dates with no override fall back to the weekly rules for that weekday.
func EffectiveWindows(rules []models.WeeklyRule, overrides []models.AvailabilityOverride, day time.Time) []Window {
	date := day.Format("2006-01-02")
	for _, ov := range overrides {
		if ov.Date != date {
			continue
		}
		if ov.IsUnavailable {
			return nil
		}
		windows := make([]Window, 0, len(ov.Windows))
		for _, w := range ov.Windows {
			windows = append(windows, Window{Start: MinuteOfDay(w.StartTime), End: MinuteOfDay(w.EndTime)})
		}
		return windows
	}

	weekday := int(day.Weekday())
	var windows []Window
	for _, r := range rules {
		if r.DayOfWeek == weekday {
			windows = append(windows, Window{Start: MinuteOfDay(r.StartTime), End: MinuteOfDay(r.EndTime)})
		}
	}
	return windows
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
