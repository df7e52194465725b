package useritineraries

import (
	"context"

	"github.com/planmytrip/tripstore/internal/models"
)

type Repository interface {
	Create(ctx context.Context, link *models.UserItinerary) (*models.UserItinerary, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.UserItinerary, error)
	GetByID(ctx context.Context, userID, id int64) (*models.UserItinerary, error)
}
