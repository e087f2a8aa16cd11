package handlers

import (
	"net/http"
	"net/url"
	"time"

	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/models"
	"slotwise/services/availability"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler serves schedule management endpoints for hosts.
type ScheduleHandler struct {
	Repo scheduleRepo.ScheduleRepository
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(repo scheduleRepo.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{Repo: repo}
}

// CreateScheduleRequest is the payload for creating a schedule.
type CreateScheduleRequest struct {
	Name               string `json:"name" binding:"required"`
	Timezone           string `json:"timezone" binding:"required"`
	DurationMinutes    int    `json:"durationMinutes" binding:"required"`
	SlotStepMinutes    int    `json:"slotStepMinutes"`
	BufferBeforeMin    int    `json:"bufferBeforeMin"`
	BufferAfterMin     int    `json:"bufferAfterMin"`
	MinimumNoticeHours int    `json:"minimumNoticeHours"`
}

// CreateScheduleHandler creates a schedule owned by the authenticated host.
func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid timezone", req.Timezone)
		return
	}
	if req.DurationMinutes <= 0 || req.SlotStepMinutes < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", "durationMinutes must be positive")
		return
	}

	schedule := models.Schedule{
		ID:                 uuid.New().String(),
		HostID:             c.GetString("hostID"),
		Name:               req.Name,
		Timezone:           req.Timezone,
		DurationMinutes:    req.DurationMinutes,
		SlotStepMinutes:    req.SlotStepMinutes,
		BufferBeforeMin:    req.BufferBeforeMin,
		BufferAfterMin:     req.BufferAfterMin,
		MinimumNoticeHours: req.MinimumNoticeHours,
	}
	if schedule.SlotStepMinutes == 0 {
		// Default step: one slot per meeting length.
		schedule.SlotStepMinutes = req.DurationMinutes
	}

	if err := h.Repo.Create(&schedule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create schedule", err.Error())
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// GetScheduleHandler returns a schedule owned by the authenticated host.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	schedule, ok := h.ownedSchedule(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// PutWeeklyRulesHandler replaces the weekly rule set for a schedule. The
// rules are validated strictly here so the resolution engine only ever
// sees well-formed "HH:MM" values.
func (h *ScheduleHandler) PutWeeklyRulesHandler(c *gin.Context) {
	schedule, ok := h.ownedSchedule(c)
	if !ok {
		return
	}

	var rules []models.WeeklyRule
	if err := c.ShouldBindJSON(&rules); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	for _, r := range rules {
		if !isValidClock(r.StartTime) || !isValidClock(r.EndTime) {
			utils.JSONError(c, http.StatusBadRequest, "invalid time",
				"times must be well-formed HH:MM values")
			return
		}
	}
	if err := availability.ValidateWeeklyRules(rules); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid weekly rules", err.Error())
		return
	}

	if err := h.Repo.PutWeeklyRules(schedule.ID, rules); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store weekly rules", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"scheduleID": schedule.ID, "weeklyRules": rules})
}

// PutOverrideHandler upserts the date override for one date. An override
// either marks the date unavailable or replaces its windows entirely.
func (h *ScheduleHandler) PutOverrideHandler(c *gin.Context) {
	schedule, ok := h.ownedSchedule(c)
	if !ok {
		return
	}

	var override models.AvailabilityOverride
	if err := c.ShouldBindJSON(&override); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", override.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", override.Date)
		return
	}
	for _, w := range override.Windows {
		if !isValidClock(w.StartTime) || !isValidClock(w.EndTime) {
			utils.JSONError(c, http.StatusBadRequest, "invalid time",
				"times must be well-formed HH:MM values")
			return
		}
		if availability.MinuteOfDay(w.StartTime) >= availability.MinuteOfDay(w.EndTime) {
			utils.JSONError(c, http.StatusBadRequest, "invalid window",
				w.StartTime+"-"+w.EndTime+" must start before it ends")
			return
		}
	}

	if err := h.Repo.PutOverride(schedule.ID, override); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store override", err.Error())
		return
	}
	c.JSON(http.StatusOK, override)
}

// DeleteOverrideHandler removes the override for one date.
func (h *ScheduleHandler) DeleteOverrideHandler(c *gin.Context) {
	schedule, ok := h.ownedSchedule(c)
	if !ok {
		return
	}
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", date)
		return
	}
	if _, ok := schedule.OverrideFor(date); !ok {
		utils.JSONError(c, http.StatusNotFound, "no override for date", date)
		return
	}
	if err := h.Repo.DeleteOverride(schedule.ID, date); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete override", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFeedRequest is the payload for connecting an ICS feed.
type AddFeedRequest struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
}

// AddFeedHandler connects an external ICS busy-time feed to a schedule.
func (h *ScheduleHandler) AddFeedHandler(c *gin.Context) {
	schedule, ok := h.ownedSchedule(c)
	if !ok {
		return
	}

	var req AddFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		utils.JSONError(c, http.StatusBadRequest, "invalid feed url", req.URL)
		return
	}

	feed := models.CalendarFeed{ID: uuid.New().String(), URL: req.URL, Name: req.Name}
	if err := h.Repo.AddFeed(schedule.ID, feed); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add feed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, feed)
}

// ownedSchedule loads the path schedule and enforces host ownership.
func (h *ScheduleHandler) ownedSchedule(c *gin.Context) (*models.Schedule, bool) {
	schedule, err := h.Repo.GetByID(c.Param("scheduleID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "schedule not found", err.Error())
		return nil, false
	}
	if schedule.HostID != c.GetString("hostID") {
		utils.JSONError(c, http.StatusForbidden, "not your schedule", "")
		return nil, false
	}
	return schedule, true
}

// isValidClock accepts only well-formed 24h "HH:MM" strings. The engine's
// parser is deliberately lenient; this boundary is where malformed input
// gets rejected instead.
func isValidClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
