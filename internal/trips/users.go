package trips

import (
	"context"
	"fmt"

	"github.com/planmytrip/tripstore/internal/models"
)

// GetAllUsers returns every stored user.
func (s *TripRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repomanager.Users(s.db).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading users: %w", err)
	}
	return users, nil
}

// GetUserByUsername returns the users whose username equals userName. No
// match yields an empty slice.
func (s *TripRepository) GetUserByUsername(ctx context.Context, userName string) ([]*models.User, error) {
	users, err := s.repomanager.Users(s.db).FindByUsername(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	return users, nil
}

// AddUser saves a new user and reports whether a row was written. A taken
// username is reported as false with a nil error. On success user.ID and
// user.CreatedAt are set.
func (s *TripRepository) AddUser(ctx context.Context, user *models.User) (bool, error) {
	log := s.opLogger("AddUser")

	if err := models.Validate(user); err != nil {
		logFailure(ctx, log, "rejected user", err)
		return false, err
	}

	added, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		logFailure(ctx, log, "failed to add user", err)
		return false, fmt.Errorf("error creating user: %w", err)
	}

	if added {
		log.Info(ctx, "user added", "user_id", user.ID)
	} else {
		log.Warn(ctx, "username already taken", "username", user.UserName)
	}
	return added, nil
}
