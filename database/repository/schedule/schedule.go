package scheduleRepo

import "slotwise/models"

// ScheduleRepository defines data-access methods for schedules, their
// weekly rules, date overrides and connected calendar feeds.
type ScheduleRepository interface {
	Create(schedule *models.Schedule) error
	GetByID(scheduleID string) (*models.Schedule, error)
	ListWithFeeds() ([]models.Schedule, error)

	PutWeeklyRules(scheduleID string, rules []models.WeeklyRule) error
	// PutOverride upserts keyed on the override date, so a schedule can
	// never hold two overrides for the same date.
	PutOverride(scheduleID string, override models.AvailabilityOverride) error
	DeleteOverride(scheduleID string, date string) error

	AddFeed(scheduleID string, feed models.CalendarFeed) error
}
