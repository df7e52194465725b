package users

import (
	"context"

	"github.com/planmytrip/tripstore/internal/models"
)

type Repository interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	FindByUsername(ctx context.Context, userName string) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user *models.User) (bool, error)
}
