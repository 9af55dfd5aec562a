package usecase

import (
	"georeminder/internal/model"
	"georeminder/internal/task"
)

// schedulingFields are the user-editable fields shared by create and update
// input, validated identically for both.
type schedulingFields struct {
	Title            string
	Latitude         float64
	Longitude        float64
	Radius           float64
	HasActiveAfter   bool
	RepeatType       model.RepeatType
	RepeatInterval   int
	RepeatDaysOfWeek []int
	TimeWindowStart  *int
	TimeWindowEnd    *int
	MaxActivations   *int
}

// validateScheduling enforces the data-model invariants at the write
// boundary. The evaluator and projector stay defensive regardless: rows
// predating a validation rule may still violate it.
func validateScheduling(f schedulingFields) error {
	if f.Title == "" {
		return task.ErrTitleRequired
	}
	if f.Latitude < -90 || f.Latitude > 90 || f.Longitude < -180 || f.Longitude > 180 {
		return task.ErrInvalidCoordinate
	}
	if f.Radius <= 0 {
		return task.ErrInvalidRadius
	}

	rt := f.RepeatType
	if rt == "" {
		rt = model.RepeatNone
	}
	if !rt.Valid() {
		return task.ErrInvalidRepeatType
	}

	if rt == model.RepeatEveryNDays && f.RepeatInterval < 1 {
		return task.ErrInvalidInterval
	}

	if rt == model.RepeatWeekly {
		if len(f.RepeatDaysOfWeek) == 0 {
			return task.ErrInvalidWeekdays
		}
		for _, d := range f.RepeatDaysOfWeek {
			if d < 1 || d > 7 {
				return task.ErrInvalidWeekdays
			}
		}
	}

	if (f.TimeWindowStart == nil) != (f.TimeWindowEnd == nil) {
		return task.ErrInvalidTimeWindow
	}
	if f.TimeWindowStart != nil {
		if *f.TimeWindowStart < 0 || *f.TimeWindowStart >= 1440 ||
			*f.TimeWindowEnd < 0 || *f.TimeWindowEnd >= 1440 {
			return task.ErrInvalidTimeWindow
		}
	}

	if f.MaxActivations != nil {
		if *f.MaxActivations < 1 {
			return task.ErrInvalidMaxCount
		}
		if rt != model.RepeatNone && !f.HasActiveAfter {
			return task.ErrLimitNeedsStartDate
		}
	}

	return nil
}

func normalizeRepeatType(rt model.RepeatType) model.RepeatType {
	if rt == "" {
		return model.RepeatNone
	}
	return rt
}
