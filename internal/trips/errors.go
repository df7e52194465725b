package trips

import (
	"context"
	"errors"

	"github.com/planmytrip/tripstore/internal/common"
	"github.com/planmytrip/tripstore/internal/logging"
)

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound)
}

// logFailure logs err at warn for conditions the caller can act on and at
// error for everything else.
func logFailure(ctx context.Context, log logging.Logger, msg string, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrVersionConflict),
		errors.Is(err, common.ErrorValidation):
		log.Warn(ctx, msg, "error", err.Error())
	default:
		log.Error(ctx, msg, "error", err.Error())
	}
}
