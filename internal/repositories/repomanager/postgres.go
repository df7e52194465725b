// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/migrations"
	"github.com/planmytrip/tripstore/internal/repositories/itineraries"
	"github.com/planmytrip/tripstore/internal/repositories/itineraryplaces"
	"github.com/planmytrip/tripstore/internal/repositories/places"
	"github.com/planmytrip/tripstore/internal/repositories/useritineraries"
	"github.com/planmytrip/tripstore/internal/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Itineraries returns an itineraries.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Itineraries(db dbx.DBTX) itineraries.Repository {
	return itineraries.NewPostgresRepository(db)
}

// UserItineraries returns a useritineraries.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) UserItineraries(db dbx.DBTX) useritineraries.Repository {
	return useritineraries.NewPostgresRepository(db)
}

// Places returns a places.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Places(db dbx.DBTX) places.Repository {
	return places.NewPostgresRepository(db)
}

// ItineraryPlaces returns an itineraryplaces.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) ItineraryPlaces(db dbx.DBTX) itineraryplaces.Repository {
	return itineraryplaces.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
