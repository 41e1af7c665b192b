package usecase

import (
	"errors"
	"fmt"
)

// Sentinels returned by services; the HTTP layer maps them to status codes.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

var errLineupUnavailable = fmt.Errorf("%w: lineup not available for this match", ErrNotFound)
