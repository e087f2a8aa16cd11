package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotwise/config"
	"slotwise/cron"
	"slotwise/database"
	bookingRepoPkg "slotwise/database/repository/booking"
	scheduleRepoPkg "slotwise/database/repository/schedule"
	"slotwise/handlers"
	"slotwise/middleware"
	"slotwise/routes"
	"slotwise/services/booking"
	"slotwise/services/calendar"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitBusyCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// Services.
	feedClient := calendar.NewFeedClient()
	busySource := calendar.NewBusySource(feedClient)

	bookingService := &booking.DefaultBookingService{
		ScheduleRepo: scheduleRepo,
		BookingRepo:  bookingRepo,
		BusySource:   busySource,
		MaxRangeDays: config.AppConfig.MaxResolveRangeDays,
	}

	// Background calendar sync.
	cron.InitCalendarSyncWorker(scheduleRepo, busySource)

	// Handlers and routes.
	handlerBundle := &routes.HandlerBundle{
		Schedule:     handlers.NewScheduleHandler(scheduleRepo),
		Availability: handlers.NewAvailabilityHandler(bookingService),
		Booking:      handlers.NewBookingHandler(bookingService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
