// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/database/config"
	"github.com/festy23/ticketing/internal/database/pool"
	"github.com/festy23/ticketing/pkg/retry"
)

// connectTimeout bounds the whole retry loop of a startup connection.
const connectTimeout = 2 * time.Minute

// ErrNilDB is returned by helpers given no connection.
var ErrNilDB = errors.New("database connection is nil")

// Options configures Open.
type Options struct {
	Config config.Config
	Retry  retry.Config
	Pool   pool.Config
}

// OptionsFromEnv loads connection, retry and pool settings from the environment.
func OptionsFromEnv() Options {
	return Options{
		Config: config.LoadConfigFromEnv(),
		Retry:  config.LoadRetryConfigFromEnv(),
		Pool:   pool.LoadConfigFromEnv(),
	}
}

// New connects using settings from the environment.
func New(ctx context.Context, logger *zap.SugaredLogger) (*gorm.DB, error) {
	return Open(ctx, OptionsFromEnv(), logger)
}

// Open connects to PostgreSQL, retrying while the server is unreachable,
// and configures the connection pool. Errors never contain the password.
func Open(ctx context.Context, opts Options, logger *zap.SugaredLogger) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	retryCfg := opts.Retry
	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Warnw("database connection failed, retrying",
			"attempt", attempt,
			"max_attempts", retryCfg.MaxAttempts,
			"delay", delay,
			"error", config.SanitizeError(err, opts.Config),
		)
	}

	dsn := config.BuildDSN(opts.Config)
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		return nil, config.SanitizeError(err, opts.Config)
	}

	if err := pool.SetupConnectionPool(db, opts.Pool); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	logger.Infow("database connected",
		"host", opts.Config.Host,
		"port", opts.Config.Port,
		"database", opts.Config.DBName,
		"max_open_conns", opts.Pool.MaxOpenConns,
	)
	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrNilDB
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close gracefully closes database connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats returns database connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	stats := sqlDB.Stats()
	return &stats, nil
}
