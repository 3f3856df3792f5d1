package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-portal/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection opens the pool backing the record store and pings it
// before returning.
func NewPostgresConnection(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	if connString == "" {
		return nil, errors.New("database: DATABASE_URL not configured")
	}

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("database: invalid DATABASE_URL: %w", err)
	}

	// Works behind PgBouncer transaction pooling (no server-side prepared statements).
	// Record bodies are sent as text and cast to jsonb in SQL, which the simple protocol handles.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	config.ConnConfig.RuntimeParams["application_name"] = "jobboard-store"

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: connection failed: %w", err)
	}

	logger.Log.Info("Database connection established", "host", config.ConnConfig.Host, "database", config.ConnConfig.Database)
	return pool, nil
}
