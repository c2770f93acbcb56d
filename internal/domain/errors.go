package domain

import "errors"

var (
	// ErrMissingQuery signals an absent or blank search query.
	ErrMissingQuery = errors.New("search query is required")
	// ErrInvalidParameters signals out-of-range page or limit parameters.
	ErrInvalidParameters = errors.New("invalid page or limit parameters")
	// ErrInvalidFilters signals a malformed combined filters parameter.
	ErrInvalidFilters = errors.New("invalid filters format")
	// ErrInvalidLimit signals an out-of-range suggestion limit.
	ErrInvalidLimit = errors.New("limit out of range")
	// ErrValidation signals structurally valid but semantically invalid filter values.
	ErrValidation = errors.New("validation failed")
)
