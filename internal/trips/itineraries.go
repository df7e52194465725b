package trips

import (
	"context"
	"fmt"

	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/models"
)

// AddItinerary creates itinerary and links it to user userID in one unit of
// work, returning the id of the new link. That id is what the other
// itinerary operations take as itineraryID. A missing user is
// common.ErrorNotFound. A zero LastUpdatedDate is set to the current time.
func (s *TripRepository) AddItinerary(ctx context.Context, userID int64, itinerary *models.Itinerary) (int64, error) {
	log := s.opLogger("AddItinerary").With("user_id", userID)

	if err := models.Validate(itinerary); err != nil {
		logFailure(ctx, log, "rejected itinerary", err)
		return 0, err
	}

	var linkID int64
	err := dbx.WithTx(ctx, s.db, s.writeTx(), func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).GetByID(ctx, userID); err != nil {
			return fmt.Errorf("error loading user %d: %w", userID, err)
		}

		if itinerary.LastUpdatedDate.IsZero() {
			itinerary.LastUpdatedDate = s.now()
		}
		if _, err := s.repomanager.Itineraries(tx).Create(ctx, itinerary); err != nil {
			return fmt.Errorf("error creating itinerary: %w", err)
		}

		link, err := s.repomanager.UserItineraries(tx).Create(ctx, &models.UserItinerary{
			UserID:      userID,
			ItineraryID: itinerary.ID,
		})
		if err != nil {
			return fmt.Errorf("error linking itinerary %d: %w", itinerary.ID, err)
		}
		linkID = link.ID
		return nil
	})
	if err != nil {
		logFailure(ctx, log, "failed to add itinerary", err)
		return 0, err
	}

	log.Info(ctx, "itinerary added", "itinerary_id", itinerary.ID, "link_id", linkID)
	return linkID, nil
}

// GetUserItineraries returns the itinerary links of user userID, each with its
// itinerary header but without places. A missing user is common.ErrorNotFound.
func (s *TripRepository) GetUserItineraries(ctx context.Context, userID int64) ([]*models.UserItinerary, error) {
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("error loading user %d: %w", userID, err)
	}

	links, err := s.repomanager.UserItineraries(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading itineraries of user %d: %w", userID, err)
	}
	return links, nil
}

// GetUserItineraryByID returns link itineraryID of user userID with its user,
// itinerary, places and their Place records loaded in one read-only
// transaction. It returns nil and no error when the user owns no such link.
// A missing user is common.ErrorNotFound.
func (s *TripRepository) GetUserItineraryByID(ctx context.Context, userID, itineraryID int64) (*models.UserItinerary, error) {
	var link *models.UserItinerary
	err := dbx.WithTx(ctx, s.db, s.readTx(), func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		link, err = s.loadItineraryGraph(ctx, tx, userID, itineraryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}
