// Package itineraries provides the PostgreSQL-backed repository for itinerary
// headers, including the optimistic version check guarding place-list edits.
package itineraries

import (
	"context"
	"fmt"
	"time"

	"github.com/planmytrip/tripstore/internal/common"
	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/models"
)

// PostgresRepository implements itinerary storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the itinerary and fills in its id and initial version.
func (r *PostgresRepository) Create(ctx context.Context, itinerary *models.Itinerary) (*models.Itinerary, error) {
	query :=
		`INSERT INTO itineraries (name, last_updated_date)
		 VALUES ($1, $2)
		 RETURNING id, version
		 `

	err := r.db.QueryRowContext(ctx, query, itinerary.Name, itinerary.LastUpdatedDate).
		Scan(&itinerary.ID, &itinerary.Version)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return itinerary, nil
}

// Touch bumps the version of itinerary id and stamps updatedAt, provided the
// stored version still equals version. Otherwise nothing is written and
// common.ErrVersionConflict is returned; a serialization failure or deadlock
// reported by the server maps to the same error.
func (r *PostgresRepository) Touch(ctx context.Context, id int64, version int64, updatedAt time.Time) error {
	query :=
		`UPDATE itineraries SET version = version + 1, last_updated_date = $3
		 WHERE id = $1 AND version = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, version, updatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.ClassifyError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("%w: unexpected rows affected: %d", common.ErrorInternal, n)
	}
}
