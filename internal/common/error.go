// Package common defines sentinel errors shared by the repositories and the
// trip repository. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrVersionConflict = errors.New("version conflict")

	// Input errors.
	ErrorValidation = errors.New("validation error")

	ErrorInternal = errors.New("internal error")
)
