package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"session-stats-service/internal/config"

	eventsHttp "session-stats-service/internal/events/adapters/http/fiber"
	eventsJSONFile "session-stats-service/internal/events/adapters/jsonfile"
	eventsPg "session-stats-service/internal/events/adapters/postgres"
	eventsSqlite "session-stats-service/internal/events/adapters/sqlite"
	eventsPorts "session-stats-service/internal/events/core/ports"
	eventsUsecase "session-stats-service/internal/events/core/usecase"

	statsHttp "session-stats-service/internal/stats/adapters/http/fiber"
	statsUsecase "session-stats-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "session-stats-service/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Event log backend
	var eventLog eventsPorts.EventLogPort

	switch cfg.Backend {
	case config.BackendJSONFile:
		eventLog = eventsJSONFile.NewStore(cfg.EventLogFile)

	case config.BackendSQLite:
		store, err := eventsSqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open sqlite store: %v", err)
		}
		defer store.Close()
		eventLog = store

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}

		pgLog := eventsPg.NewEventLog(eventsPg.NewSQLDB(db))
		if err := pgLog.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}
		eventLog = pgLog
	}

	// Usecases
	recordUC := eventsUsecase.NewRecordSessionUseCase(eventLog)
	windowStatsUC := statsUsecase.NewGetWindowStatsUseCase(eventLog)
	distributionUC := statsUsecase.NewGetDistributionUseCase(eventLog)
	activityUC := statsUsecase.NewGetActivityUseCase(eventLog)
	lookupUC := statsUsecase.NewLookupUserUseCase(eventLog)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// session endpoints
	sessionHandler := eventsHttp.NewSessionHandler(recordUC, windowStatsUC)
	app.Post("/sessions/start", sessionHandler.StartSession)
	app.Post("/sessions/end", sessionHandler.EndSession)

	// stats endpoints
	statsHandler := statsHttp.NewStatsHandler(windowStatsUC, distributionUC, activityUC, lookupUC)
	app.Get("/stats", statsHandler.GetStats)
	app.Get("/stats/distribution", statsHandler.GetDistribution)
	app.Get("/stats/activity", statsHandler.GetActivity)
	app.Get("/users/lookup", statsHandler.LookupUser)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s (backend: %s)", cfg.ListenAddr, cfg.Backend)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
