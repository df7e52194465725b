package places

import (
	"context"

	"github.com/planmytrip/tripstore/internal/models"
)

type Repository interface {
	Resolve(ctx context.Context, place *models.Place) (*models.Place, error)
	Update(ctx context.Context, place *models.Place) (int64, error)
}
