package availability

import (
	"testing"
	"time"

	"slotwise/models"
)

// Monday 2026-02-02 in UTC is the anchor day for most generator tests.
func testDay() time.Time {
	return time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestDaySlots_Basic(t *testing.T) {
	day := testDay()
	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 11 * 60}}, SlotParams{
		Duration: 30 * time.Minute,
		Step:     30 * time.Minute,
	}, nil)

	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(day, 9, 0)) || !slots[0].End.Equal(at(day, 9, 30)) {
		t.Fatalf("unexpected first slot %v-%v", slots[0].Start, slots[0].End)
	}
	if !slots[3].Start.Equal(at(day, 10, 30)) {
		t.Fatalf("unexpected last slot start %v", slots[3].Start)
	}
}

func TestDaySlots_StepIndependentOfDuration(t *testing.T) {
	// A 30-minute meeting offered every 15 minutes.
	day := testDay()
	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 10 * 60}}, SlotParams{
		Duration: 30 * time.Minute,
		Step:     15 * time.Minute,
	}, nil)

	want := []time.Time{at(day, 9, 0), at(day, 9, 15), at(day, 9, 30)}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, w := range want {
		if !slots[i].Start.Equal(w) {
			t.Fatalf("slot %d starts at %v, want %v", i, slots[i].Start, w)
		}
	}
}

// Cursor matrix around a busy block 10:00-10:30 with a 15-minute buffer
// before each slot: only candidates whose padded interval is disjoint from
// the block survive.
func TestDaySlots_BufferAroundBusyBlock(t *testing.T) {
	day := testDay()
	busy := []models.BusyBlock{{Start: at(day, 10, 0), End: at(day, 10, 30)}}

	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 11 * 60}}, SlotParams{
		Duration:     30 * time.Minute,
		Step:         15 * time.Minute,
		BufferBefore: 15 * time.Minute,
	}, busy)

	// Padded candidate for cursor c is [c-15m, c+30m). Against busy
	// [10:00, 10:30) that excludes every cursor in (09:30, 10:45), so of
	// the cursors 09:00..10:30 only the first three survive.
	want := []time.Time{at(day, 9, 0), at(day, 9, 15), at(day, 9, 30)}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i, w := range want {
		if !slots[i].Start.Equal(w) {
			t.Fatalf("slot %d starts at %v, want %v", i, slots[i].Start, w)
		}
	}
}

func TestDaySlots_BufferAfter(t *testing.T) {
	day := testDay()
	busy := []models.BusyBlock{{Start: at(day, 10, 0), End: at(day, 10, 30)}}

	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 10 * 60}}, SlotParams{
		Duration:    30 * time.Minute,
		Step:        30 * time.Minute,
		BufferAfter: 15 * time.Minute,
	}, busy)

	// 09:30-10:00 pads to [09:30, 10:15) and hits the block; 09:00 is fine.
	if len(slots) != 1 || !slots[0].Start.Equal(at(day, 9, 0)) {
		t.Fatalf("expected only the 09:00 slot, got %v", slots)
	}
}

func TestDaySlots_MinimumNotice(t *testing.T) {
	day := testDay()
	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 12 * 60}}, SlotParams{
		Duration:  30 * time.Minute,
		Step:      30 * time.Minute,
		NotBefore: at(day, 10, 0),
	}, nil)

	if len(slots) == 0 {
		t.Fatalf("expected slots after the notice cutoff")
	}
	// A slot starting exactly at the cutoff is allowed.
	if !slots[0].Start.Equal(at(day, 10, 0)) {
		t.Fatalf("first slot %v, want 10:00", slots[0].Start)
	}
	for _, s := range slots {
		if s.Start.Before(at(day, 10, 0)) {
			t.Fatalf("slot %v starts before the notice cutoff", s.Start)
		}
	}
}

func TestDaySlots_WindowShorterThanDuration(t *testing.T) {
	day := testDay()
	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 9*60 + 20}}, SlotParams{
		Duration: 30 * time.Minute,
		Step:     30 * time.Minute,
	}, nil)
	if len(slots) != 0 {
		t.Fatalf("short window must yield no slots, got %v", slots)
	}
}

func TestDaySlots_SlotMayStartAtWindowEdge(t *testing.T) {
	// Buffers pad against busy blocks, not against the window boundary.
	day := testDay()
	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 10 * 60}}, SlotParams{
		Duration:     30 * time.Minute,
		Step:         30 * time.Minute,
		BufferBefore: 60 * time.Minute,
	}, nil)
	if len(slots) != 2 || !slots[0].Start.Equal(at(day, 9, 0)) {
		t.Fatalf("expected slots at the window edge, got %v", slots)
	}
}

func TestDaySlots_WindowsKeptInOrder(t *testing.T) {
	day := testDay()
	slots := DaySlots(day, []Window{
		{Start: 14 * 60, End: 15 * 60},
		{Start: 9 * 60, End: 10 * 60},
	}, SlotParams{Duration: 60 * time.Minute, Step: 60 * time.Minute}, nil)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	// The generator does not re-sort across windows.
	if !slots[0].Start.Equal(at(day, 14, 0)) || !slots[1].Start.Equal(at(day, 9, 0)) {
		t.Fatalf("window order not preserved: %v", slots)
	}
}

func TestDaySlots_NonPositiveParams(t *testing.T) {
	day := testDay()
	if got := DaySlots(day, []Window{{Start: 0, End: 60}}, SlotParams{Duration: 0, Step: 30 * time.Minute}, nil); got != nil {
		t.Fatalf("zero duration must yield nil, got %v", got)
	}
	if got := DaySlots(day, []Window{{Start: 0, End: 60}}, SlotParams{Duration: 30 * time.Minute, Step: 0}, nil); got != nil {
		t.Fatalf("zero step must yield nil, got %v", got)
	}
}

// A weekly rule names a local wall-clock window, so the generated slots
// must keep that local time on days where the zone gains or loses an hour.
func TestDaySlots_DSTSpringForwardKeepsLocalClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Clocks jump 02:00 EST -> 03:00 EDT on 2026-03-08.
	day := time.Date(2026, 3, 8, 0, 0, 0, 0, loc)
	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 10 * 60}}, SlotParams{
		Duration: 30 * time.Minute,
		Step:     30 * time.Minute,
	}, nil)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if got := slots[0].Start.In(loc).Format("15:04"); got != "09:00" {
		t.Fatalf("first slot starts at %s local, want 09:00", got)
	}
	if got := slots[1].End.In(loc).Format("15:04"); got != "10:00" {
		t.Fatalf("last slot ends at %s local, want 10:00", got)
	}
}

func TestDaySlots_DSTFallBackKeepsLocalClock(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Clocks fall back 02:00 EDT -> 01:00 EST on 2026-11-01.
	day := time.Date(2026, 11, 1, 0, 0, 0, 0, loc)
	slots := DaySlots(day, []Window{{Start: 9 * 60, End: 10 * 60}}, SlotParams{
		Duration: 30 * time.Minute,
		Step:     30 * time.Minute,
	}, nil)

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if got := slots[0].Start.In(loc).Format("15:04"); got != "09:00" {
		t.Fatalf("first slot starts at %s local, want 09:00", got)
	}
}
