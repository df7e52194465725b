package models

import "time"

// Itinerary is a named trip plan.
type Itinerary struct {
	ID              int64
	Name            string `validate:"required,max=200"`
	LastUpdatedDate time.Time
	// Version is bumped on every change to the place list; a writer holding a
	// stale version gets common.ErrVersionConflict.
	Version int64

	Places []*ItineraryPlace `validate:"-"`
}

// ItineraryPlace links an Itinerary to a Place. Position is 1-based and new
// entries are appended after the current last one.
type ItineraryPlace struct {
	ID          int64
	ItineraryID int64
	PlaceID     int64
	Position    int

	Place *Place `validate:"-"`
}

// PlaceByGoogleID returns the entry whose place carries googleID, or nil.
func (it *Itinerary) PlaceByGoogleID(googleID string) *ItineraryPlace {
	for _, p := range it.Places {
		if p.Place != nil && p.Place.GooglePlaceID == googleID {
			return p
		}
	}
	return nil
}
