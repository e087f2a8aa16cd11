package models

// WeeklyRule is a recurring availability window on one weekday.
// Times are "HH:MM" strings in the schedule's timezone.
type WeeklyRule struct {
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string `bson:"startTime" json:"startTime"` // e.g. "09:00"
	EndTime   string `bson:"endTime" json:"endTime"`     // e.g. "17:00", must be after StartTime
}

// OverrideWindow is one availability window inside a date override.
type OverrideWindow struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// AvailabilityOverride replaces the weekly rules for a single date.
// Either the whole day is marked unavailable, or Windows is the exact
// window set for that date. At most one override per date per schedule.
type AvailabilityOverride struct {
	Date          string           `bson:"date" json:"date"` // "2006-01-02"
	IsUnavailable bool             `bson:"isUnavailable" json:"isUnavailable"`
	Windows       []OverrideWindow `bson:"windows,omitempty" json:"windows,omitempty"`
}

// CalendarFeed is an external ICS feed contributing busy time to a schedule.
type CalendarFeed struct {
	ID   string `bson:"id" json:"id"`
	URL  string `bson:"url" json:"url"`
	Name string `bson:"name,omitempty" json:"name,omitempty"`
}

// Schedule is a host's bookable availability definition.
type Schedule struct {
	ID                 string                 `bson:"id" json:"id"`
	HostID             string                 `bson:"hostId" json:"hostId"`
	Name               string                 `bson:"name" json:"name"`
	Timezone           string                 `bson:"timezone" json:"timezone"` // IANA name, e.g. "Europe/Berlin"
	WeeklyRules        []WeeklyRule           `bson:"weeklyRules,omitempty" json:"weeklyRules,omitempty"`
	Overrides          []AvailabilityOverride `bson:"overrides,omitempty" json:"overrides,omitempty"`
	Feeds              []CalendarFeed         `bson:"feeds,omitempty" json:"feeds,omitempty"`
	DurationMinutes    int                    `bson:"durationMinutes" json:"durationMinutes"`
	SlotStepMinutes    int                    `bson:"slotStepMinutes" json:"slotStepMinutes"`
	BufferBeforeMin    int                    `bson:"bufferBeforeMin,omitempty" json:"bufferBeforeMin,omitempty"`
	BufferAfterMin     int                    `bson:"bufferAfterMin,omitempty" json:"bufferAfterMin,omitempty"`
	MinimumNoticeHours int                    `bson:"minimumNoticeHours,omitempty" json:"minimumNoticeHours,omitempty"`
}

// OverrideFor returns the override for a "2006-01-02" date, if any.
func (s *Schedule) OverrideFor(date string) (AvailabilityOverride, bool) {
	for _, ov := range s.Overrides {
		if ov.Date == date {
			return ov, true
		}
	}
	return AvailabilityOverride{}, false
}
