package handlers

import (
	"errors"
	"net/http"

	"slotwise/models"
	"slotwise/services/booking"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the guest-facing booking endpoint.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ConfirmBookingHandler commits a candidate slot. A conflict or a
// too-early start is a recoverable rejection: the guest should re-query
// availability and pick again.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	conf, err := h.Service.ConfirmBooking(c.Request.Context(), req)
	if err != nil {
		var be *booking.BookingError
		if errors.As(err, &be) {
			switch be.Code {
			case "slotConflict":
				utils.JSONError(c, http.StatusConflict, be.Message, "re-query availability and pick another slot")
			case "pastNotice":
				utils.JSONError(c, http.StatusUnprocessableEntity, be.Message, "")
			default:
				utils.JSONError(c, http.StatusBadRequest, be.Message, "")
			}
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		return
	}

	c.JSON(http.StatusCreated, conf)
}
