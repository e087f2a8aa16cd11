package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BusySource serves externally-sourced busy blocks for a schedule. Feed
// contents are cached in Redis so availability requests never block on a
// third-party fetch; the sync worker refreshes the cache in the background.
type BusySource struct {
	Client *redis.Client
	Feeds  *FeedClient
}

// NewBusySource constructs a BusySource over the busy-block cache client.
func NewBusySource(feeds *FeedClient) *BusySource {
	return &BusySource{
		Client: utils.GetBusyCacheClient(),
		Feeds:  feeds,
	}
}

func busyKey(scheduleID string) string {
	return "busy:" + scheduleID
}

// RefreshSchedule re-fetches every feed connected to the schedule and
// replaces the cached busy set. A failing feed is logged and skipped so
// one dead URL does not wipe busy data from the others.
func (bs *BusySource) RefreshSchedule(ctx context.Context, schedule models.Schedule) error {
	logger := utils.GetLogger()

	horizon := time.Duration(config.AppConfig.MaxResolveRangeDays) * 24 * time.Hour
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now().Add(horizon)

	var busy []models.BusyBlock
	for _, feed := range schedule.Feeds {
		blocks, err := bs.Feeds.FetchBusyBlocks(ctx, feed.URL, from, to)
		if err != nil {
			logger.Warn("calendar feed refresh failed",
				zap.String("scheduleID", schedule.ID),
				zap.String("feedID", feed.ID),
				zap.Error(err))
			continue
		}
		busy = append(busy, blocks...)
	}

	data, err := json.Marshal(busy)
	if err != nil {
		return fmt.Errorf("failed to marshal busy blocks: %w", err)
	}

	ttl := time.Duration(config.AppConfig.BusyCacheTTLMinutes) * time.Minute
	if err := bs.Client.Set(ctx, busyKey(schedule.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache busy blocks: %w", err)
	}
	return nil
}

// GetCached returns the cached busy blocks for a schedule. A cache miss is
// an empty set, not an error: resolution degrades to bookings-only busy
// data until the next sync.
func (bs *BusySource) GetCached(ctx context.Context, scheduleID string) ([]models.BusyBlock, error) {
	data, err := bs.Client.Get(ctx, busyKey(scheduleID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("busy cache read failed: %w", err)
	}

	var busy []models.BusyBlock
	if err := json.Unmarshal([]byte(data), &busy); err != nil {
		return nil, fmt.Errorf("busy cache payload corrupt: %w", err)
	}
	return busy, nil
}
