package availability

import (
	"strconv"
	"strings"
)

// Clock is an hour/minute pair parsed from an "HH:MM" string.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock splits "HH:MM" (or "HH:MM:SS") on ':'. Missing or non-numeric
// parts degrade to 0 instead of failing, so a malformed value anchors to
// midnight rather than aborting resolution. Rule payloads are validated
// strictly at the API boundary; this leniency only covers values already
// stored before that validation existed.
func ParseClock(s string) Clock {
	parts := strings.Split(s, ":")
	var c Clock
	if len(parts) > 0 {
		c.Hour, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		c.Minute, _ = strconv.Atoi(parts[1])
	}
	return c
}

// MinuteOfDay converts an "HH:MM" string to minutes from midnight, with
// the same lenient parsing as ParseClock.
func MinuteOfDay(s string) int {
	c := ParseClock(s)
	return c.Hour*60 + c.Minute
}

var weekdayIndexes = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayIndex maps a case-insensitive weekday name to its index
// (Sunday = 0). Unrecognized names report ok = false; callers drop
// such entries rather than erroring.
func WeekdayIndex(name string) (int, bool) {
	idx, ok := weekdayIndexes[strings.ToLower(name)]
	return idx, ok
}

// WeekdayName returns the lowercase name for a 0..6 weekday index.
func WeekdayName(idx int) string {
	if idx < 0 || idx > 6 {
		return "unknown"
	}
	return weekdayNames[idx]
}
