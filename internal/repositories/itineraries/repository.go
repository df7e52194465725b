package itineraries

import (
	"context"
	"time"

	"github.com/planmytrip/tripstore/internal/models"
)

type Repository interface {
	Create(ctx context.Context, itinerary *models.Itinerary) (*models.Itinerary, error)
	Touch(ctx context.Context, id int64, version int64, updatedAt time.Time) error
}
