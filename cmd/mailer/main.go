package main

import (
	"log"
	"net/http"

	"github.com/deluxhotel/booking/config"
	"github.com/deluxhotel/booking/internal/mailer"
	"github.com/deluxhotel/booking/internal/middleware"
	"github.com/deluxhotel/booking/pkg/resend"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()
	if cfg.ResendAPIKey == "" {
		log.Fatal("RESEND_API_KEY is required")
	}

	sender := mailer.NewResendSender(resend.New(cfg.ResendAPIKey), cfg.EmailFrom, cfg.EmailFromName)

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

	// The endpoint is called straight from the browser, so preflights from
	// any origin must succeed.
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "mailer"})
	})

	mailer.NewHandler(sender).RegisterRoutes(e)

	log.Printf("Mailer starting on :%s", cfg.MailerPort)
	e.Logger.Fatal(e.Start(":" + cfg.MailerPort))
}
