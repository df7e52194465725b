package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/planmytrip/tripstore/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the validate tags of a User, Itinerary or Place. Failures
// wrap common.ErrorValidation.
func Validate(entity any) error {
	if err := validate.Struct(entity); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}
