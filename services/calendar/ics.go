package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/utils"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

// FeedClient fetches external ICS feeds and normalizes their events into
// busy blocks. It knows nothing about calendar providers beyond the feed
// URL; OAuth-backed sources are out of scope.
type FeedClient struct {
	HTTPClient *http.Client
}

// NewFeedClient constructs a FeedClient with the configured fetch timeout.
func NewFeedClient() *FeedClient {
	timeout := time.Duration(config.AppConfig.CalendarFetchTimeoutS) * time.Second
	return &FeedClient{HTTPClient: &http.Client{Timeout: timeout}}
}

// FetchBusyBlocks downloads one ICS feed and returns the busy blocks that
// intersect [from, to). Events that fail to parse are logged and skipped;
// a feed-level fetch or parse failure is returned to the caller.
func (fc *FeedClient) FetchBusyBlocks(ctx context.Context, feedURL string, from, to time.Time) ([]models.BusyBlock, error) {
	logger := utils.GetLogger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}
	resp, err := fc.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed fetch returned status %d", resp.StatusCode)
	}

	cal, err := ical.ParseCalendar(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed parse failed: %w", err)
	}

	var busy []models.BusyBlock
	for _, ev := range cal.Events() {
		start, err := ev.GetStartAt()
		if err != nil {
			logger.Warn("skipping ICS event without usable start", zap.Error(err))
			continue
		}
		end, err := ev.GetEndAt()
		if err != nil {
			logger.Warn("skipping ICS event without usable end", zap.Error(err))
			continue
		}
		if !end.After(start) {
			continue
		}
		// Keep only events intersecting the requested range.
		if start.Before(to) && end.After(from) {
			busy = append(busy, models.BusyBlock{Start: start, End: end})
		}
	}
	return busy, nil
}
