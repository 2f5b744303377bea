package stats

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every recoverable error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrTimeBeforeLastUpdate is returned when a time-weighted statistic is
	// updated or evaluated at a time earlier than its last update.
	ErrTimeBeforeLastUpdate = fmt.Errorf("%w: time precedes last update", ErrInvalidArgument)

	// ErrInsufficientObservations is returned when a confidence interval is
	// requested with fewer than two observations.
	ErrInsufficientObservations = fmt.Errorf("%w: need at least 2 observations", ErrInvalidArgument)
)
