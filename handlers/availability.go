package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"slotwise/config"
	"slotwise/services/booking"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the guest-facing slot listing.
type AvailabilityHandler struct {
	Service booking.BookingService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc booking.BookingService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailableSlotsHandler lists bookable slots for a schedule between two
// dates (inclusive, "2006-01-02", interpreted in the schedule's timezone).
// Responses are cached in Redis under a short TTL; the minimum-notice cutoff
// moves with the clock, so the TTL is kept to seconds.
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	scheduleID := c.Param("scheduleID")
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing range", "from and to query parameters are required")
		return
	}

	// Optional duration override in minutes; the schedule default applies
	// when absent.
	durationMin := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", "duration must be a positive number of minutes")
			return
		}
		durationMin = parsed
	}

	cacheKey := fmt.Sprintf("slots:%s:%s:%s:%d", scheduleID, from, to, durationMin)
	cache := utils.GetCacheClient()
	if cached, err := cache.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), scheduleID, from, to, durationMin)
	if err != nil {
		var be *booking.BookingError
		if errors.As(err, &be) {
			utils.JSONError(c, http.StatusBadRequest, be.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve availability", err.Error())
		return
	}

	// An empty slot list is a normal answer, not an error.
	payload := gin.H{
		"scheduleID": scheduleID,
		"from":       from,
		"to":         to,
		"slots":      slots,
	}
	if raw, err := json.Marshal(payload); err == nil {
		ttl := time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second
		if setErr := cache.Set(c.Request.Context(), cacheKey, raw, ttl).Err(); setErr != nil {
			zap.L().Warn("Failed to cache slot listing", zap.String("key", cacheKey), zap.Error(setErr))
		}
	}
	c.JSON(http.StatusOK, payload)
}
