package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTitleRequired     = errors.New("task title is required")
	ErrInvalidCoordinate = errors.New("latitude/longitude out of range")
	ErrInvalidRadius     = errors.New("radius must be positive")
	ErrInvalidRepeatType = errors.New("unknown repeat type")
	ErrInvalidInterval   = errors.New("repeat interval must be at least 1")
	ErrInvalidWeekdays   = errors.New("weekly repeat requires weekdays between 1 (Monday) and 7 (Sunday)")
	ErrInvalidTimeWindow = errors.New("time window bounds must both be set and within [0,1440)")
	ErrInvalidMaxCount   = errors.New("max activations must be at least 1")

	// ErrLimitNeedsStartDate guards the cadence-anchor precondition: a
	// repeating task with an activation ceiling has no way to count
	// occurrences without a start date.
	ErrLimitNeedsStartDate = errors.New("repeating task with an activation limit requires a start date")
)
