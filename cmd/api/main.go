package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-portal/config"
	_ "go-jobboard-portal/docs" // Important for Swagger
	v1 "go-jobboard-portal/internal/delivery/http/v1"
	"go-jobboard-portal/internal/domain"
	"go-jobboard-portal/internal/repository/memory"
	"go-jobboard-portal/internal/repository/postgres"
	"go-jobboard-portal/internal/repository/sqlite"
	"go-jobboard-portal/internal/usecase"
	"go-jobboard-portal/pkg/database"
	"go-jobboard-portal/pkg/logger"
	"go-jobboard-portal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
)

// @title           Job Board Record Store API
// @version         1.0
// @description     json-server compatible record store backing the job board portal.
// @host            localhost:3001
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Env, "jobboard-store")
	logger.Log.Info("Starting record store", "port", cfg.StorePort, "driver", cfg.StoreDriver)

	ctx := context.Background()

	// 3. Setup Repository
	repo, probes, closeFn, err := openRepository(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to open record repository", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeFn()

	// 4. Setup UseCases
	recordUC := usecase.NewRecordUsecase(repo, cfg.StoreCollections)
	healthUC := usecase.NewHealthUsecase(probes)

	if cfg.StoreSeedFile != "" {
		if err := seed(ctx, recordUC, cfg.StoreSeedFile); err != nil {
			logger.Log.Error("Failed to seed record store", "file", cfg.StoreSeedFile, "error", err)
			os.Exit(1)
		}
	}

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		RecordUC:       recordUC,
		HealthUC:       healthUC,
		Metrics:        metrics.NewHTTP("store"),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.StorePort,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func openRepository(ctx context.Context, cfg *config.Config) (domain.RecordRepository, map[string]usecase.Probe, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Log.Warn("Using in-memory record store; data is lost on restart")
		return memory.NewRecordRepository(), nil, func() {}, nil

	case "postgres":
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		probes := map[string]usecase.Probe{"database": pool.Ping}
		return postgres.NewRecordRepository(pool), probes, pool.Close, nil

	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		probes := map[string]usecase.Probe{"database": db.PingContext}
		return sqlite.NewRecordRepository(db), probes, func() { _ = db.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// seed loads a json-server style db.json: {"users": [...], "jobs": [...]}.
func seed(ctx context.Context, recordUC domain.RecordUsecase, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var data map[string][]domain.Record
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(f).Decode(&data); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return recordUC.Seed(ctx, data)
}
