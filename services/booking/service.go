package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "slotwise/database/repository/booking"
	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/models"
	"slotwise/services/availability"
	"slotwise/services/calendar"
	"slotwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService exposes slot listing and booking confirmation. Dates are
// "2006-01-02" strings interpreted in the schedule's timezone. durationMin
// overrides the schedule's meeting length for the listing; zero keeps the
// schedule default.
type BookingService interface {
	GetAvailableSlots(ctx context.Context, scheduleID, fromDate, toDate string, durationMin int) ([]models.TimeSlot, error)
	ConfirmBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
}

// ExternalBusySource supplies busy blocks contributed by connected
// calendars. Implemented by calendar.BusySource.
type ExternalBusySource interface {
	GetCached(ctx context.Context, scheduleID string) ([]models.BusyBlock, error)
}

// DefaultBookingService wires the availability engine to the schedule and
// booking stores plus the external busy-block source.
type DefaultBookingService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	BusySource   ExternalBusySource

	// MaxRangeDays bounds one resolution request; the engine's cost is
	// linear in days x windows x steps x busy blocks, so the range is
	// capped here, not inside the engine.
	MaxRangeDays int

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetAvailableSlots resolves the bookable slots for a schedule between two
// dates (inclusive), in the schedule's timezone.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, scheduleID, fromDate, toDate string, durationMin int) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()

	if durationMin < 0 {
		return nil, ErrBadRequest("duration must be positive")
	}

	schedule, err := s.ScheduleRepo.GetByID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("schedule lookup failed: %w", err)
	}

	loc, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		return nil, ErrBadRequest(fmt.Sprintf("schedule has invalid timezone %q", schedule.Timezone))
	}
	if schedule.DurationMinutes <= 0 || schedule.SlotStepMinutes <= 0 {
		return nil, ErrBadRequest("schedule duration and slot step must be positive")
	}
	if durationMin == 0 {
		durationMin = schedule.DurationMinutes
	}

	from, err := time.ParseInLocation("2006-01-02", fromDate, loc)
	if err != nil {
		return nil, ErrBadRequest(fmt.Sprintf("invalid from date %q", fromDate))
	}
	to, err := time.ParseInLocation("2006-01-02", toDate, loc)
	if err != nil {
		return nil, ErrBadRequest(fmt.Sprintf("invalid to date %q", toDate))
	}
	if to.Before(from) {
		return nil, ErrBadRequest("range end precedes range start")
	}
	if s.MaxRangeDays > 0 && to.Sub(from) > time.Duration(s.MaxRangeDays)*24*time.Hour {
		return nil, ErrBadRequest(fmt.Sprintf("date range exceeds %d days", s.MaxRangeDays))
	}

	// The busy query is widened by the buffers: a booking just outside
	// the range can still collide with a buffer-padded edge candidate.
	bufBefore := time.Duration(schedule.BufferBeforeMin) * time.Minute
	bufAfter := time.Duration(schedule.BufferAfterMin) * time.Minute
	busy, err := s.collectBusy(ctx, schedule, from.Add(-bufBefore), to.AddDate(0, 0, 1).Add(bufAfter))
	if err != nil {
		return nil, err
	}

	slots := availability.Resolve(availability.ResolveRequest{
		Rules:     schedule.WeeklyRules,
		Overrides: schedule.Overrides,
		From:      from,
		To:        to,
		Params:    s.slotParams(schedule, durationMin),
		Busy:      busy,
	})

	logger.Debug("availability resolved",
		zap.String("scheduleID", scheduleID),
		zap.Int("busyBlocks", len(busy)),
		zap.Int("slots", len(slots)))
	return slots, nil
}

// ConfirmBooking validates a candidate slot and commits it. The conflict
// predicate runs inside the booking repository's transaction, immediately
// before the insert, so racing guests cannot both pass.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	schedule, err := s.ScheduleRepo.GetByID(req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("schedule lookup failed: %w", err)
	}
	if schedule.DurationMinutes <= 0 {
		return nil, ErrBadRequest("schedule duration must be positive")
	}

	now := s.now()
	notBefore := now.Add(time.Duration(schedule.MinimumNoticeHours) * time.Hour)
	if req.Start.Before(notBefore) {
		logger.Info("booking rejected: past notice",
			zap.String("scheduleID", req.ScheduleID),
			zap.Time("start", req.Start))
		return nil, ErrPastNotice
	}

	end := req.Start.Add(time.Duration(schedule.DurationMinutes) * time.Minute)
	bufBefore := time.Duration(schedule.BufferBeforeMin) * time.Minute
	bufAfter := time.Duration(schedule.BufferAfterMin) * time.Minute
	padFrom := req.Start.Add(-bufBefore)
	padTo := end.Add(bufAfter)

	external, err := s.BusySource.GetCached(ctx, schedule.ID)
	if err != nil {
		// Degrade to bookings-only busy data rather than blocking the
		// booking path on the cache.
		logger.Warn("busy cache unavailable", zap.String("scheduleID", schedule.ID), zap.Error(err))
		external = nil
	}

	record := &models.Booking{
		ID:         uuid.New().String(),
		ScheduleID: schedule.ID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		Start:      req.Start,
		End:        end,
		Status:     models.BookingConfirmed,
		CreatedAt:  now,
	}

	err = s.BookingRepo.CreateConfirmed(ctx, record, padFrom, padTo, func(existing []models.Booking) bool {
		busy := make([]models.BusyBlock, 0, len(existing)+len(external))
		for _, b := range existing {
			busy = append(busy, models.BusyBlock{Start: b.Start, End: b.End})
		}
		busy = append(busy, external...)
		return availability.CheckConflict(req.Start, end, bufBefore, bufAfter, busy)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			logger.Info("booking rejected: conflict",
				zap.String("scheduleID", schedule.ID),
				zap.Time("start", req.Start))
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("scheduleID", schedule.ID),
		zap.Time("start", record.Start))

	return &models.BookingConfirmation{
		BookingID: record.ID,
		Start:     record.Start,
		End:       record.End,
		Status:    string(record.Status),
		Invite:    calendar.BuildInvite(*record, *schedule),
		CreatedAt: record.CreatedAt,
	}, nil
}

// collectBusy merges confirmed bookings with externally-sourced busy time.
func (s *DefaultBookingService) collectBusy(ctx context.Context, schedule *models.Schedule, from, to time.Time) ([]models.BusyBlock, error) {
	bookings, err := s.BookingRepo.GetConfirmedInRange(ctx, schedule.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	busy := make([]models.BusyBlock, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, models.BusyBlock{Start: b.Start, End: b.End})
	}

	external, err := s.BusySource.GetCached(ctx, schedule.ID)
	if err != nil {
		utils.GetLogger().Warn("busy cache unavailable", zap.String("scheduleID", schedule.ID), zap.Error(err))
	} else {
		busy = append(busy, external...)
	}
	return busy, nil
}

// slotParams maps schedule knobs to engine parameters.
func (s *DefaultBookingService) slotParams(schedule *models.Schedule, durationMin int) availability.SlotParams {
	return availability.SlotParams{
		Duration:     time.Duration(durationMin) * time.Minute,
		Step:         time.Duration(schedule.SlotStepMinutes) * time.Minute,
		BufferBefore: time.Duration(schedule.BufferBeforeMin) * time.Minute,
		BufferAfter:  time.Duration(schedule.BufferAfterMin) * time.Minute,
		NotBefore:    s.now().Add(time.Duration(schedule.MinimumNoticeHours) * time.Hour),
	}
}
