package trips

import (
	"context"
	"fmt"

	"github.com/planmytrip/tripstore/internal/common"
	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/models"
)

// AddItineraryEntry appends place to the end of itinerary itineraryID of user
// userID and returns the id of the new entry. A place already known by its
// GooglePlaceID is reused as stored, and place is filled from that record. A
// place already in the itinerary is common.ErrorAlreadyExists.
func (s *TripRepository) AddItineraryEntry(ctx context.Context, userID, itineraryID int64, place *models.Place) (int64, error) {
	log := s.opLogger("AddItineraryEntry").With("user_id", userID, "link_id", itineraryID)

	if err := models.Validate(place); err != nil {
		logFailure(ctx, log, "rejected place", err)
		return 0, err
	}

	var entryID int64
	err := dbx.WithTx(ctx, s.db, s.writeTx(), func(ctx context.Context, tx dbx.DBTX) error {
		link, err := s.loadOwnedItinerary(ctx, tx, userID, itineraryID)
		if err != nil {
			return err
		}
		if link.Itinerary.PlaceByGoogleID(place.GooglePlaceID) != nil {
			return fmt.Errorf("place %s: %w", place.GooglePlaceID, common.ErrorAlreadyExists)
		}

		if _, err := s.repomanager.Places(tx).Resolve(ctx, place); err != nil {
			return fmt.Errorf("error saving place %s: %w", place.GooglePlaceID, err)
		}

		entry, err := s.repomanager.ItineraryPlaces(tx).Create(ctx, &models.ItineraryPlace{
			ItineraryID: link.ItineraryID,
			PlaceID:     place.ID,
			Place:       place,
		})
		if err != nil {
			return fmt.Errorf("error adding place %s: %w", place.GooglePlaceID, err)
		}
		entryID = entry.ID

		return s.touch(ctx, tx, link.Itinerary)
	})
	if err != nil {
		logFailure(ctx, log, "failed to add place", err)
		return 0, err
	}

	log.Info(ctx, "place added", "google_place_id", place.GooglePlaceID, "entry_id", entryID)
	return entryID, nil
}

// RemoveItineraryEntryByGoogleID removes the place with external id googleID
// from itinerary itineraryID of user userID and reports whether a row was
// deleted. A missing user, itinerary or place entry is common.ErrorNotFound.
func (s *TripRepository) RemoveItineraryEntryByGoogleID(ctx context.Context, userID, itineraryID int64, googleID string) (bool, error) {
	log := s.opLogger("RemoveItineraryEntryByGoogleID").
		With("user_id", userID, "link_id", itineraryID, "google_place_id", googleID)

	var removed int64
	err := dbx.WithTx(ctx, s.db, s.writeTx(), func(ctx context.Context, tx dbx.DBTX) error {
		link, err := s.loadOwnedItinerary(ctx, tx, userID, itineraryID)
		if err != nil {
			return err
		}

		entry := link.Itinerary.PlaceByGoogleID(googleID)
		if entry == nil {
			return fmt.Errorf("place %s in itinerary %d: %w", googleID, itineraryID, common.ErrorNotFound)
		}

		removed, err = s.repomanager.ItineraryPlaces(tx).Delete(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("error removing place %s: %w", googleID, err)
		}

		return s.touch(ctx, tx, link.Itinerary)
	})
	if err != nil {
		logFailure(ctx, log, "failed to remove place", err)
		return false, err
	}

	log.Info(ctx, "place removed", "rows", removed)
	return removed > 0, nil
}

// ReplaceItineraryEntryWithGoogleID points the entry holding place googleID in
// itinerary itineraryID of user userID at replacement. The entry keeps its
// itinerary and position. A replacement with a different GooglePlaceID is
// resolved like in AddItineraryEntry, so places shared with other itineraries
// are never rewritten. A replacement with the same GooglePlaceID refreshes the
// stored details of that place instead.
//
// It reports whether a row was updated. Not-found cases are as for
// RemoveItineraryEntryByGoogleID; a replacement already present elsewhere in
// the itinerary is common.ErrorAlreadyExists.
func (s *TripRepository) ReplaceItineraryEntryWithGoogleID(ctx context.Context, userID, itineraryID int64, googleID string, replacement *models.Place) (bool, error) {
	log := s.opLogger("ReplaceItineraryEntryWithGoogleID").
		With("user_id", userID, "link_id", itineraryID, "google_place_id", googleID)

	if err := models.Validate(replacement); err != nil {
		logFailure(ctx, log, "rejected place", err)
		return false, err
	}

	var updated int64
	err := dbx.WithTx(ctx, s.db, s.writeTx(), func(ctx context.Context, tx dbx.DBTX) error {
		link, err := s.loadOwnedItinerary(ctx, tx, userID, itineraryID)
		if err != nil {
			return err
		}

		entry := link.Itinerary.PlaceByGoogleID(googleID)
		if entry == nil {
			return fmt.Errorf("place %s in itinerary %d: %w", googleID, itineraryID, common.ErrorNotFound)
		}
		if other := link.Itinerary.PlaceByGoogleID(replacement.GooglePlaceID); other != nil && other != entry {
			return fmt.Errorf("place %s: %w", replacement.GooglePlaceID, common.ErrorAlreadyExists)
		}

		if replacement.GooglePlaceID == googleID {
			replacement.ID = entry.PlaceID
			updated, err = s.repomanager.Places(tx).Update(ctx, replacement)
			if err != nil {
				return fmt.Errorf("error updating place %s: %w", googleID, err)
			}
		} else {
			if _, err := s.repomanager.Places(tx).Resolve(ctx, replacement); err != nil {
				return fmt.Errorf("error saving place %s: %w", replacement.GooglePlaceID, err)
			}
			updated, err = s.repomanager.ItineraryPlaces(tx).UpdatePlace(ctx, entry.ID, replacement.ID)
			if err != nil {
				return fmt.Errorf("error replacing place %s: %w", googleID, err)
			}
		}
		entry.PlaceID = replacement.ID
		entry.Place = replacement

		return s.touch(ctx, tx, link.Itinerary)
	})
	if err != nil {
		logFailure(ctx, log, "failed to replace place", err)
		return false, err
	}

	log.Info(ctx, "place replaced", "new_google_place_id", replacement.GooglePlaceID, "rows", updated)
	return updated > 0, nil
}
