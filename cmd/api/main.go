package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"georeminder/config"
	_ "georeminder/docs" // Swagger docs
	"georeminder/internal/database"
	"georeminder/internal/geofence"
	"georeminder/internal/httpserver"
	placeHTTP "georeminder/internal/place/delivery/http"
	placeSQLite "georeminder/internal/place/repository/sqlite"
	placeUsecase "georeminder/internal/place/usecase"
	"georeminder/internal/task"
	gfDelivery "georeminder/internal/task/delivery/geofence"
	taskHTTP "georeminder/internal/task/delivery/http"
	taskRepo "georeminder/internal/task/repository"
	taskSQLite "georeminder/internal/task/repository/sqlite"
	taskUsecase "georeminder/internal/task/usecase"
	"georeminder/internal/worker"
	"georeminder/pkg/gcalendar"
	"georeminder/pkg/log"
	"georeminder/pkg/telegram"
)

// @title       GeoReminder API
// @description Location-aware reminder service: geofenced tasks, activation scheduling, and calendar week projection.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting GeoReminder...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Scheduling timezone
	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		loc = time.UTC
	}

	// 4. Storage
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}

	tasksRepo := taskSQLite.New(db, logger)
	placesRepo := placeSQLite.New(db, logger)

	// 5. Geofence region registry, rebuilt from the store
	detector := geofence.NewDetector()
	active := false
	storedTasks, err := tasksRepo.ListTasks(ctx, taskRepo.ListTasksOptions{Completed: &active})
	if err != nil {
		logger.Errorf(ctx, "Failed to load tasks for region sync: %v", err)
		return
	}
	detector.Sync(storedTasks)
	logger.Infof(ctx, "Monitoring %d geofence regions", detector.Len())

	// 6. Telegram notifier (optional)
	var notifier task.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		tgNotifier, tgErr := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if tgErr != nil {
			logger.Warnf(ctx, "Telegram not available (optional): %v", tgErr)
		} else {
			notifier = tgNotifier
			logger.Info(ctx, "Telegram notifier initialized")
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID is missing")
	}

	// 7. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. Use cases
	taskUC := taskUsecase.New(logger, tasksRepo, notifier, detector, loc)
	placeUC := placeUsecase.New(logger, placesRepo)

	// 9. Delivery handlers
	taskHandler := taskHTTP.New(logger, taskUC)
	placeHandler := placeHTTP.New(logger, placeUC)
	geofenceHandler := gfDelivery.New(logger, taskUC, detector, cfg.HTTPServer.WebhookSecret)

	// 10. Daily digest worker
	digestWorker := worker.New(
		logger,
		taskUC,
		notifier,
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		loc,
		cfg.Scheduler.DigestCron,
	)
	if err := digestWorker.Start(); err != nil {
		logger.Errorf(ctx, "Failed to start digest worker: %v", err)
		return
	}
	defer digestWorker.Stop()

	// 11. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:               logger,
		Port:                 cfg.HTTPServer.Port,
		Mode:                 cfg.HTTPServer.Mode,
		Environment:          cfg.Environment.Name,
		APIKey:               cfg.HTTPServer.APIKey,
		WebhookRatePerSecond: cfg.HTTPServer.WebhookRatePerSecond,
		WebhookBurst:         cfg.HTTPServer.WebhookBurst,
		TaskHandler:          taskHandler,
		PlaceHandler:         placeHandler,
		GeofenceHandler:      geofenceHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 12. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
