// Package places provides the PostgreSQL-backed repository for points of
// interest, keyed by their Google Places id. Place rows are shared by every
// itinerary that references them.
package places

import (
	"context"
	"fmt"

	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/models"
)

// PostgresRepository implements place storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Resolve returns the place stored under place.GooglePlaceID, inserting place
// when there is none. An existing row is left as it is: place is overwritten
// with the stored id and attributes.
func (r *PostgresRepository) Resolve(ctx context.Context, place *models.Place) (*models.Place, error) {
	// The no-op DO UPDATE makes RETURNING yield the existing row.
	query := `
		INSERT INTO places (google_place_id, name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (google_place_id)
		DO UPDATE SET google_place_id = EXCLUDED.google_place_id
		RETURNING id, name, address, latitude, longitude
	`
	err := r.db.QueryRowContext(ctx, query,
		place.GooglePlaceID, place.Name, place.Address, place.Latitude, place.Longitude).
		Scan(&place.ID, &place.Name, &place.Address, &place.Latitude, &place.Longitude)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.ClassifyError(err))
	}
	return place, nil
}

// Update rewrites the descriptive fields of place place.ID and returns the
// number of rows updated.
func (r *PostgresRepository) Update(ctx context.Context, place *models.Place) (int64, error) {
	query := `
		UPDATE places SET name = $2, address = $3, latitude = $4, longitude = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, place.ID, place.Name, place.Address, place.Latitude, place.Longitude)
	if err != nil {
		return 0, fmt.Errorf("failed to update place: %w", dbx.ClassifyError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
