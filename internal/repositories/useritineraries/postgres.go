// Package useritineraries provides the PostgreSQL-backed repository for the
// links between users and their itineraries.
package useritineraries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/planmytrip/tripstore/internal/common"
	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/models"
)

// PostgresRepository implements link storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectLinks = `SELECT ui.id, ui.user_id, ui.itinerary_id, i.name, i.last_updated_date, i.version
		FROM user_itineraries ui
		JOIN itineraries i ON i.id = ui.itinerary_id
		`

// Create inserts a link between link.UserID and link.ItineraryID and fills in its id.
// A missing user or itinerary surfaces as common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, link *models.UserItinerary) (*models.UserItinerary, error) {
	query :=
		`INSERT INTO user_itineraries (user_id, itinerary_id)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, link.UserID, link.ItineraryID).Scan(&link.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.ClassifyError(err))
	}
	return link, nil
}

// ListByUser returns the user's links, each carrying its itinerary header,
// in creation order.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.UserItinerary, error) {
	query := selectLinks + `WHERE ui.user_id = $1 ORDER BY ui.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select user itineraries: %w", err)
	}
	defer rows.Close()

	result := []*models.UserItinerary{}
	for rows.Next() {
		item, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns the link id owned by userID, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id int64) (*models.UserItinerary, error) {
	query := selectLinks + `WHERE ui.user_id = $1 AND ui.id = $2`

	item, err := scanLink(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (*models.UserItinerary, error) {
	item := &models.UserItinerary{Itinerary: &models.Itinerary{}}
	if err := s.Scan(
		&item.ID, &item.UserID, &item.ItineraryID,
		&item.Itinerary.Name, &item.Itinerary.LastUpdatedDate, &item.Itinerary.Version,
	); err != nil {
		return nil, err
	}
	item.Itinerary.ID = item.ItineraryID
	return item, nil
}
