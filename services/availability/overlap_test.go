package availability

import (
	"strings"
	"testing"

	"slotwise/models"
)

func TestWindowsOverlap(t *testing.T) {
	cases := []struct {
		name                           string
		startA, endA, startB, endB     int
		want                           bool
	}{
		{"disjoint", 0, 30, 60, 90, false},
		{"touching endpoints are free", 0, 30, 30, 60, false},
		{"one minute into the other", 0, 31, 30, 60, true},
		{"contained", 0, 120, 30, 60, true},
		{"identical", 540, 600, 540, 600, true},
	}
	for _, c := range cases {
		if got := WindowsOverlap(c.startA, c.endA, c.startB, c.endB); got != c.want {
			t.Fatalf("%s: WindowsOverlap(%d,%d,%d,%d) = %v, want %v",
				c.name, c.startA, c.endA, c.startB, c.endB, got, c.want)
		}
		// Symmetric in the two windows.
		if got := WindowsOverlap(c.startB, c.endB, c.startA, c.endA); got != c.want {
			t.Fatalf("%s: overlap not symmetric", c.name)
		}
	}
}

func TestValidateWeeklyRules_SameDayOverlap(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: 1, StartTime: "09:30", EndTime: "10:30"},
	}
	err := ValidateWeeklyRules(rules)
	if err == nil {
		t.Fatalf("expected overlap error")
	}
	msg := err.Error()
	for _, want := range []string{"monday", "09:00", "10:00", "09:30", "10:30"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q should mention %q", msg, want)
		}
	}
}

func TestValidateWeeklyRules_DifferentDays(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: 2, StartTime: "09:30", EndTime: "10:30"},
	}
	if err := ValidateWeeklyRules(rules); err != nil {
		t.Fatalf("rules on different days must not conflict: %v", err)
	}
}

func TestValidateWeeklyRules_InvertedWindow(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 5, StartTime: "17:00", EndTime: "09:00"},
	}
	err := ValidateWeeklyRules(rules)
	if err == nil {
		t.Fatalf("expected inverted-window error")
	}
	if !strings.Contains(err.Error(), "friday") {
		t.Fatalf("error %q should name the weekday", err.Error())
	}
}

func TestValidateWeeklyRules_BackToBackWindows(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "12:00", EndTime: "17:00"},
	}
	if err := ValidateWeeklyRules(rules); err != nil {
		t.Fatalf("touching windows must validate: %v", err)
	}
}

func TestValidateWeeklyRules_DayOutOfRange(t *testing.T) {
	rules := []models.WeeklyRule{
		{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"},
	}
	if err := ValidateWeeklyRules(rules); err == nil {
		t.Fatalf("expected out-of-range day error")
	}
}
