package main

import (
	"log"

	"github.com/deluxhotel/booking/config"
	"github.com/deluxhotel/booking/internal/handler"
	"github.com/deluxhotel/booking/internal/middleware"
	"github.com/deluxhotel/booking/internal/notifier"
	"github.com/deluxhotel/booking/internal/repository"
	"github.com/deluxhotel/booking/internal/service"
	"github.com/deluxhotel/booking/pkg/database"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	availabilitySvc := service.NewAvailabilityService(roomRepo, bookingRepo)
	searchSvc := service.NewSearchService(roomRepo, availabilitySvc)
	mailerClient := notifier.New(cfg.MailerURL)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, availabilitySvc, mailerClient)
	adminSvc := service.NewAdminService(bookingRepo, roomRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "booking-server"})
	})

	handler.NewSearchHandler(searchSvc, availabilitySvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewAdminHandler(adminSvc).RegisterRoutes(e)

	log.Printf("Booking server starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
