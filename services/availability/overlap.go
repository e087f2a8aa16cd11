package availability

import (
	"fmt"

	"slotwise/models"
)

// WindowsOverlap reports whether two half-open minute-of-day windows
// [startA, endA) and [startB, endB) intersect. Touching endpoints do not
// count as overlap, so back-to-back windows are fine.
func WindowsOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && startB < endA
}

// ValidateWeeklyRules checks a rule set for inverted windows and same-day
// overlaps. It is a validation gate, not a linter: it stops at the first
// violation and names the weekday and the offending windows.
func ValidateWeeklyRules(rules []models.WeeklyRule) error {
	byDay := make(map[int][]models.WeeklyRule)
	for _, r := range rules {
		if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
			return fmt.Errorf("weekly rule %s-%s: day of week %d out of range", r.StartTime, r.EndTime, r.DayOfWeek)
		}
		byDay[r.DayOfWeek] = append(byDay[r.DayOfWeek], r)
	}

	for day := 0; day <= 6; day++ {
		dayRules := byDay[day]
		for _, r := range dayRules {
			if MinuteOfDay(r.StartTime) >= MinuteOfDay(r.EndTime) {
				return fmt.Errorf("weekly rule on %s: window %s-%s must start before it ends",
					WeekdayName(day), r.StartTime, r.EndTime)
			}
		}
		for i := 0; i < len(dayRules); i++ {
			for j := i + 1; j < len(dayRules); j++ {
				a, b := dayRules[i], dayRules[j]
				if WindowsOverlap(
					MinuteOfDay(a.StartTime), MinuteOfDay(a.EndTime),
					MinuteOfDay(b.StartTime), MinuteOfDay(b.EndTime),
				) {
					return fmt.Errorf("weekly rules on %s overlap: window %s-%s conflicts with %s-%s",
						WeekdayName(day), a.StartTime, a.EndTime, b.StartTime, b.EndTime)
				}
			}
		}
	}
	return nil
}
