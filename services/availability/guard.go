package availability

import (
	"time"

	"slotwise/models"
)

// CheckConflict reports whether a candidate [start, end), padded with the
// buffers, intersects any busy block. It applies the exact predicate slot
// generation uses, re-run at commit time: the slot list a guest saw can go
// stale between generation and submission, so this check, inside the
// caller's transaction, is the authoritative gate.
func CheckConflict(start, end time.Time, bufferBefore, bufferAfter time.Duration, busy []models.BusyBlock) bool {
	return overlapsAny(start.Add(-bufferBefore), end.Add(bufferAfter), busy)
}
