// Package trips implements TripRepository, the data-access layer used by the
// PlanMyTrip application to fetch and create users and itineraries and to
// edit an itinerary's list of places.
//
// Every mutating operation loads what it needs and saves its changes inside a
// single dbx.WithTx unit of work. Edits to an itinerary's place list bump the
// itinerary version, so concurrent writers get common.ErrVersionConflict
// instead of silently overwriting each other.
package trips

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planmytrip/tripstore/internal/common"
	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/logging"
	"github.com/planmytrip/tripstore/internal/models"
	"github.com/planmytrip/tripstore/internal/repositories/repomanager"
)

// TripRepository wraps a PostgreSQL database and the per-table repositories.
type TripRepository struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	isolation   sql.IsolationLevel
	now         func() time.Time
}

// NewTripRepository constructs a TripRepository. Units of work run at the
// given isolation level.
func NewTripRepository(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger, isolation sql.IsolationLevel) *TripRepository {
	return &TripRepository{
		db:          db,
		repomanager: m,
		log:         log,
		isolation:   isolation,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *TripRepository) writeTx() *sql.TxOptions {
	return &sql.TxOptions{Isolation: s.isolation}
}

func (s *TripRepository) readTx() *sql.TxOptions {
	return &sql.TxOptions{Isolation: s.isolation, ReadOnly: true}
}

// opLogger returns a logger tagged with the operation name and a fresh op_id.
func (s *TripRepository) opLogger(op string) logging.Logger {
	return s.log.With("op", op, "op_id", uuid.NewString())
}

// loadItineraryGraph loads user userID and, if the user owns it, link linkID
// with its itinerary, places and user attached. A missing user is
// common.ErrorNotFound; a missing link is reported as (nil, nil).
func (s *TripRepository) loadItineraryGraph(ctx context.Context, tx dbx.DBTX, userID, linkID int64) (*models.UserItinerary, error) {
	user, err := s.repomanager.Users(tx).GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading user %d: %w", userID, err)
	}

	link, err := s.repomanager.UserItineraries(tx).GetByID(ctx, userID, linkID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading itinerary %d: %w", linkID, err)
	}

	entries, err := s.repomanager.ItineraryPlaces(tx).ListByItinerary(ctx, link.ItineraryID)
	if err != nil {
		return nil, fmt.Errorf("error loading places of itinerary %d: %w", link.ItineraryID, err)
	}

	link.User = user
	link.Itinerary.Places = entries
	return link, nil
}

// loadOwnedItinerary is loadItineraryGraph for mutations: a missing link is
// common.ErrorNotFound too.
func (s *TripRepository) loadOwnedItinerary(ctx context.Context, tx dbx.DBTX, userID, linkID int64) (*models.UserItinerary, error) {
	link, err := s.loadItineraryGraph(ctx, tx, userID, linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("itinerary %d of user %d: %w", linkID, userID, common.ErrorNotFound)
	}
	return link, nil
}

// touch bumps the version of it, which must be the version read in this
// unit of work, and stamps the current time.
func (s *TripRepository) touch(ctx context.Context, tx dbx.DBTX, it *models.Itinerary) error {
	updatedAt := s.now()
	if err := s.repomanager.Itineraries(tx).Touch(ctx, it.ID, it.Version, updatedAt); err != nil {
		return fmt.Errorf("error updating itinerary %d: %w", it.ID, err)
	}
	it.Version++
	it.LastUpdatedDate = updatedAt
	return nil
}
