package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"calendar-agent/config"
	_ "calendar-agent/docs" // Swagger docs
	"calendar-agent/internal/httpserver"
	taskHTTP "calendar-agent/internal/task/delivery/http"
	"calendar-agent/internal/task/usecase"
	"calendar-agent/pkg/datemath"
	"calendar-agent/pkg/gcalendar"
	"calendar-agent/pkg/log"
)

// @title       Calendar Agent API
// @description Receives tasks over HTTP and creates matching Google Calendar events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 0. Local .env is optional
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendar: %s, timezone: %s", cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone: %v", err)
		return err
	}

	// 4. Google Calendar client, built once and shared by every request
	calOpts := gcalendar.Options{
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		RequestTimeout: cfg.GoogleCalendar.RequestTimeout,
	}
	var calendarClient *gcalendar.Client
	if inline, path := cfg.GoogleCalendar.CredentialsSource(); inline != nil {
		calendarClient, err = gcalendar.NewClientFromCredentialsJSON(ctx, inline, calOpts)
	} else {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, path, calOpts)
	}
	if err != nil {
		logger.Errorf(ctx, "Google Calendar initialization failed: %v", err)
		return fmt.Errorf("google calendar: %w", err)
	}
	logger.Info(ctx, "✅ Google Calendar initialized")

	// 5. Task domain
	taskUC := usecase.New(logger, calendarClient, dateMathParser, calendarClient.CalendarID())
	taskHandler := taskHTTP.New(logger, taskUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TaskHandler:     taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(context.Background(), "Server stopped gracefully")
	return nil
}
