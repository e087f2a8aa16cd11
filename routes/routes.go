package routes

import (
	"net/http"
	"time"

	"slotwise/config"
	"slotwise/handlers"
	"slotwise/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router needs.
type HandlerBundle struct {
	Schedule     *handlers.ScheduleHandler
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
}

// RegisterRoutes wires up all endpoints.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Local development only: real deployments get host tokens from the
	// identity provider.
	if !config.IsProduction() {
		r.POST("/api/dev/token", handlers.DevTokenHandler)
	}

	// Host-facing schedule management.
	schedules := r.Group("/api/schedules")
	schedules.Use(middleware.JWTAuthHostMiddleware())
	{
		schedules.POST("", hb.Schedule.CreateScheduleHandler)
		schedules.GET("/:scheduleID", hb.Schedule.GetScheduleHandler)
		schedules.PUT("/:scheduleID/rules", hb.Schedule.PutWeeklyRulesHandler)
		schedules.PUT("/:scheduleID/overrides", hb.Schedule.PutOverrideHandler)
		schedules.DELETE("/:scheduleID/overrides/:date", hb.Schedule.DeleteOverrideHandler)
		schedules.POST("/:scheduleID/feeds", hb.Schedule.AddFeedHandler)
	}

	// Guest-facing availability and booking.
	r.GET("/api/availability/:scheduleID", hb.Availability.GetAvailableSlotsHandler)
	r.POST("/api/bookings", hb.Booking.ConfirmBookingHandler)
}
