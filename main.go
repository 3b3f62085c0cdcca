// File: rootsdental/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rootsdental/calendar"
	"rootsdental/config"
	"rootsdental/handlers"
	"rootsdental/models"
	"rootsdental/routes"
	"rootsdental/services/booking"
	"rootsdental/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	calendarClient, err := calendar.NewGoogleClient(
		context.Background(),
		config.AppConfig.GoogleCredsPath,
		config.AppConfig.BusinessTimezone,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Google Calendar client: %v", err)
	}

	hours := models.BusinessHours{
		StartHour:       config.AppConfig.BusinessHoursStart,
		EndHour:         config.AppConfig.BusinessHoursEnd,
		Timezone:        config.AppConfig.BusinessTimezone,
		SlotDurationMin: config.AppConfig.SlotDurationMin,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// services.
	availabilityService := &booking.DefaultAvailabilityService{
		Calendar:   calendarClient,
		CalendarID: config.AppConfig.CalendarID,
	}
	bookingService := &booking.DefaultBookingService{
		Availability: availabilityService,
		Calendar:     calendarClient,
		CalendarID:   config.AppConfig.CalendarID,
	}

	cacheClient := utils.GetCacheClient()
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, hours, cacheClient)
	bookingHandler := handlers.NewBookingHandler(bookingService, hours, cacheClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailabilityHandler: availabilityHandler.GetAvailability,
		BookAppointmentHandler: bookingHandler.BookAppointment,
		HealthHandler:          handlers.Health,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(calendarClient, config.AppConfig.CalendarID, cacheClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting booking server on %s...", srv.Addr)
	logger.Sugar().Infof("Calendar ID: %s", config.AppConfig.CalendarID)
	logger.Sugar().Infof("Business hours: %d:00 - %d:00 (%s), %d-minute slots",
		hours.StartHour, hours.EndHour, hours.Timezone, hours.SlotDurationMin)

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
