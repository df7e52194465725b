package itineraryplaces

import (
	"context"

	"github.com/planmytrip/tripstore/internal/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.ItineraryPlace) (*models.ItineraryPlace, error)
	ListByItinerary(ctx context.Context, itineraryID int64) ([]*models.ItineraryPlace, error)
	Delete(ctx context.Context, id int64) (int64, error)
	UpdatePlace(ctx context.Context, id, placeID int64) (int64, error)
}
