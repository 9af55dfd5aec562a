package http

import (
	"errors"

	"georeminder/internal/task"
	"georeminder/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidCoordinate),
		errors.Is(err, task.ErrInvalidRadius),
		errors.Is(err, task.ErrInvalidRepeatType),
		errors.Is(err, task.ErrInvalidInterval),
		errors.Is(err, task.ErrInvalidWeekdays),
		errors.Is(err, task.ErrInvalidTimeWindow),
		errors.Is(err, task.ErrInvalidMaxCount),
		errors.Is(err, task.ErrLimitNeedsStartDate):
		return response.NewHTTPError(400, err.Error())
	default:
		return response.NewHTTPError(500, "internal server error")
	}
}
