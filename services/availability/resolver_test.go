package availability

import (
	"testing"
	"time"

	"slotwise/models"
)

func mondayRules() []models.WeeklyRule {
	return []models.WeeklyRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
	}
}

func TestResolve_WeeklyRuleOnly(t *testing.T) {
	monday := testDay() // 2026-02-02
	slots := Resolve(ResolveRequest{
		Rules:  mondayRules(),
		From:   monday,
		To:     monday,
		Params: SlotParams{Duration: time.Hour, Step: time.Hour},
	})
	if len(slots) != 8 {
		t.Fatalf("expected 8 hourly slots in 09:00-17:00, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(monday, 9, 0)) {
		t.Fatalf("first slot %v, want 09:00", slots[0].Start)
	}
}

func TestResolve_UnavailableOverrideWins(t *testing.T) {
	monday := testDay()
	slots := Resolve(ResolveRequest{
		Rules: mondayRules(),
		Overrides: []models.AvailabilityOverride{
			{Date: "2026-02-02", IsUnavailable: true},
		},
		From:   monday,
		To:     monday,
		Params: SlotParams{Duration: 30 * time.Minute, Step: 30 * time.Minute},
	})
	if len(slots) != 0 {
		t.Fatalf("unavailable override must yield zero slots, got %v", slots)
	}
}

func TestResolve_OverrideReplacesRules(t *testing.T) {
	monday := testDay()
	slots := Resolve(ResolveRequest{
		Rules: mondayRules(),
		Overrides: []models.AvailabilityOverride{
			{Date: "2026-02-02", Windows: []models.OverrideWindow{{StartTime: "10:00", EndTime: "11:00"}}},
		},
		From:   monday,
		To:     monday,
		Params: SlotParams{Duration: 30 * time.Minute, Step: 30 * time.Minute},
	})

	// Exactly the override's 10:00-11:00, never the weekly 09:00-17:00.
	if len(slots) != 2 {
		t.Fatalf("expected exactly 2 slots, got %d: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(at(monday, 10, 0)) || !slots[1].Start.Equal(at(monday, 10, 30)) {
		t.Fatalf("unexpected slots %v", slots)
	}
}

func TestResolve_EmptyOverrideWindows(t *testing.T) {
	monday := testDay()
	slots := Resolve(ResolveRequest{
		Rules: mondayRules(),
		Overrides: []models.AvailabilityOverride{
			{Date: "2026-02-02", Windows: []models.OverrideWindow{}},
		},
		From:   monday,
		To:     monday,
		Params: SlotParams{Duration: 30 * time.Minute, Step: 30 * time.Minute},
	})
	if len(slots) != 0 {
		t.Fatalf("empty override window list means zero effective windows, got %v", slots)
	}
}

func TestResolve_RangeIsChronological(t *testing.T) {
	monday := testDay()
	rules := []models.WeeklyRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "10:00"},
	}
	slots := Resolve(ResolveRequest{
		Rules:  rules,
		From:   monday,
		To:     monday.AddDate(0, 0, 6),
		Params: SlotParams{Duration: time.Hour, Step: time.Hour},
	})
	if len(slots) != 2 {
		t.Fatalf("expected one slot on Monday and one on Wednesday, got %d", len(slots))
	}
	if !slots[1].Start.After(slots[0].Start) {
		t.Fatalf("slots out of chronological order: %v", slots)
	}
	if slots[1].Start.Weekday() != time.Wednesday {
		t.Fatalf("second slot on %s, want Wednesday", slots[1].Start.Weekday())
	}
}

func TestResolve_Idempotent(t *testing.T) {
	monday := testDay()
	req := ResolveRequest{
		Rules: mondayRules(),
		Busy: []models.BusyBlock{
			{Start: at(monday, 11, 0), End: at(monday, 12, 0)},
		},
		From:   monday,
		To:     monday.AddDate(0, 0, 7),
		Params: SlotParams{Duration: 30 * time.Minute, Step: 30 * time.Minute},
	}
	first := Resolve(req)
	second := Resolve(req)
	if len(first) != len(second) {
		t.Fatalf("resolver not stable: %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Fatalf("slot %d differs between runs", i)
		}
	}
}

func TestResolve_PastRangeIsEmptyNotError(t *testing.T) {
	monday := testDay()
	slots := Resolve(ResolveRequest{
		Rules: mondayRules(),
		From:  monday,
		To:    monday,
		Params: SlotParams{
			Duration:  30 * time.Minute,
			Step:      30 * time.Minute,
			NotBefore: monday.AddDate(0, 0, 30),
		},
	})
	if len(slots) != 0 {
		t.Fatalf("a range behind the notice cutoff yields an empty list, got %v", slots)
	}
}

func TestEffectiveWindows_FallsBackToWeekday(t *testing.T) {
	tuesday := testDay().AddDate(0, 0, 1)
	rules := []models.WeeklyRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: 2, StartTime: "13:00", EndTime: "15:00"},
	}
	windows := EffectiveWindows(rules, nil, tuesday)
	if len(windows) != 1 || windows[0].Start != 13*60 || windows[0].End != 15*60 {
		t.Fatalf("unexpected windows %v", windows)
	}
}

func TestResolve_DSTTransitionDayHonorsRuleClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// 2026-03-08 is the spring-forward Sunday; the 09:00 rule must still
	// produce a 09:00 local slot, not 10:00.
	day := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	slots := Resolve(ResolveRequest{
		Rules: []models.WeeklyRule{{DayOfWeek: 0, StartTime: "09:00", EndTime: "10:00"}},
		From:  day,
		To:    day,
		Params: SlotParams{
			Duration: 60 * time.Minute,
			Step:     60 * time.Minute,
		},
	})
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if got := slots[0].Start.In(loc).Format("15:04"); got != "09:00" {
		t.Fatalf("slot starts at %s local, want 09:00", got)
	}
}
