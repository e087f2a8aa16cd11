package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"slotwise/config"
	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/services/calendar"
	"slotwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeCalendarSync = "calendar:sync"

// InitCalendarSyncWorker runs the background calendar sync: a periodic
// task re-fetches every connected ICS feed and refreshes the busy-block
// cache, so availability requests never wait on third-party calendars.
func InitCalendarSyncWorker(schedules scheduleRepo.ScheduleRepository, busy *calendar.BusySource) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCalendarSync, handleCalendarSync(schedules, busy))

	go func() {
		log.Println("[CalendarSync] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[CalendarSync] worker failed to start: %v", err)
		}
	}()

	go runSyncScheduler(redisOpts)
}

// runSyncScheduler enqueues the periodic sync task.
func runSyncScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	every := config.AppConfig.CalendarSyncMinutes
	if every <= 0 {
		every = 10
	}
	spec := fmt.Sprintf("@every %dm", every)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeCalendarSync, nil)); err != nil {
		log.Fatalf("[CalendarSync] failed to register sync schedule: %v", err)
	}
	if err := scheduler.Run(); err != nil {
		log.Fatalf("[CalendarSync] scheduler failed: %v", err)
	}
}

func handleCalendarSync(schedules scheduleRepo.ScheduleRepository, busy *calendar.BusySource) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()
		started := time.Now()

		withFeeds, err := schedules.ListWithFeeds()
		if err != nil {
			logger.Error("calendar sync: failed to list schedules", zap.Error(err))
			return err
		}

		for _, schedule := range withFeeds {
			if err := busy.RefreshSchedule(ctx, schedule); err != nil {
				// One broken schedule must not stall the rest.
				logger.Warn("calendar sync: refresh failed",
					zap.String("scheduleID", schedule.ID), zap.Error(err))
			}
		}

		logger.Info("calendar sync complete",
			zap.Int("schedules", len(withFeeds)),
			zap.Duration("took", time.Since(started)))
		return nil
	}
}
