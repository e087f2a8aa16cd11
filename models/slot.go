package models

import "time"

// BusyBlock is time already committed: a confirmed booking or an event
// pulled from a connected calendar feed. Constructed fresh per resolution
// request, never persisted by the engine.
type BusyBlock struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// TimeSlot is one bookable window, recomputed on demand and never stored.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
