// Package itineraryplaces provides the PostgreSQL-backed repository for the
// ordered place entries of an itinerary.
package itineraryplaces

import (
	"context"
	"fmt"

	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/models"
)

// PostgresRepository implements itinerary entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends entry to the end of its itinerary and fills in its id and
// position. A place already present in the itinerary yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.ItineraryPlace) (*models.ItineraryPlace, error) {
	query := `
		INSERT INTO itinerary_places (itinerary_id, place_id, position)
		VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM itinerary_places WHERE itinerary_id = $1))
		RETURNING id, position
	`
	err := r.db.QueryRowContext(ctx, query, entry.ItineraryID, entry.PlaceID).Scan(&entry.ID, &entry.Position)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.ClassifyError(err))
	}
	return entry, nil
}

// ListByItinerary returns the itinerary's entries in position order, each with
// its Place loaded.
func (r *PostgresRepository) ListByItinerary(ctx context.Context, itineraryID int64) ([]*models.ItineraryPlace, error) {
	query := ` SELECT ip.id, ip.itinerary_id, ip.place_id, ip.position,
			p.google_place_id, p.name, p.address, p.latitude, p.longitude
		FROM itinerary_places ip
		JOIN places p ON p.id = ip.place_id
		WHERE ip.itinerary_id = $1
		ORDER BY ip.position, ip.id
		`
	rows, err := r.db.QueryContext(ctx, query, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to select itinerary places: %w", err)
	}
	defer rows.Close()

	result := []*models.ItineraryPlace{}
	for rows.Next() {
		item := &models.ItineraryPlace{Place: &models.Place{}}
		if err := rows.Scan(
			&item.ID, &item.ItineraryID, &item.PlaceID, &item.Position,
			&item.Place.GooglePlaceID, &item.Place.Name, &item.Place.Address,
			&item.Place.Latitude, &item.Place.Longitude,
		); err != nil {
			return nil, err
		}
		item.Place.ID = item.PlaceID
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes entry id and returns the number of rows removed.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM itinerary_places WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete itinerary place: %w", dbx.ClassifyError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// UpdatePlace repoints entry id at placeID. The entry keeps its itinerary and
// position. It returns the number of rows updated.
func (r *PostgresRepository) UpdatePlace(ctx context.Context, id, placeID int64) (int64, error) {
	query := `UPDATE itinerary_places SET place_id = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, placeID)
	if err != nil {
		return 0, fmt.Errorf("failed to update itinerary place: %w", dbx.ClassifyError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
