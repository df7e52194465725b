// Package app assembles the trip store from configuration: it opens the
// PostgreSQL pool, builds the logger and repository manager, optionally
// migrates the schema, and exposes the resulting TripRepository.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/planmytrip/tripstore/internal/config"
	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/logging"
	"github.com/planmytrip/tripstore/internal/repositories/repomanager"
	"github.com/planmytrip/tripstore/internal/trips"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	trips       *trips.TripRepository
}

// openDB and newRepositoryManager are seams for tests.
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

// NewApp opens the database described by c and builds a TripRepository on
// top of it. Logs are written to logOut. The caller owns the App and must
// Close it.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, logOut)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	isolation, err := dbx.ParseIsolation(c.TxIsolation)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	app := &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: newRepositoryManager(),
	}

	if c.MigrateOnStart {
		if err := app.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	app.trips = trips.NewTripRepository(db, app.repomanager, logger, isolation)
	logger.Debug(ctx, "trip store ready", "tx_isolation", c.TxIsolation, "max_open_conns", c.MaxOpenConns)
	return app, nil
}

// Migrate applies pending schema migrations.
func (app *App) Migrate(ctx context.Context) error {
	app.logger.Info(ctx, "running migrations")
	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err.Error())
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

func (app *App) Trips() *trips.TripRepository { return app.trips }

func (app *App) Logger() logging.Logger { return app.logger }

// Close releases the database pool.
func (app *App) Close() error {
	return app.db.Close()
}
