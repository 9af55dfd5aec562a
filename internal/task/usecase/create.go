package usecase

import (
	"context"

	"github.com/google/uuid"

	"georeminder/internal/model"
	"georeminder/internal/task"
)

// Create validates and stores a new task, then registers its geofence
// region.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.TaskOutput, error) {
	err := validateScheduling(schedulingFields{
		Title:            input.Title,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		Radius:           input.Radius,
		HasActiveAfter:   input.ActiveAfter != nil,
		RepeatType:       input.RepeatType,
		RepeatInterval:   input.RepeatInterval,
		RepeatDaysOfWeek: input.RepeatDaysOfWeek,
		TimeWindowStart:  input.TimeWindowStart,
		TimeWindowEnd:    input.TimeWindowEnd,
		MaxActivations:   input.MaxActivations,
	})
	if err != nil {
		return task.TaskOutput{}, err
	}

	interval := input.RepeatInterval
	if interval < 1 {
		interval = 1
	}

	t := model.Task{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Address:          input.Address,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		Radius:           input.Radius,
		ActiveAfter:      input.ActiveAfter,
		RepeatType:       normalizeRepeatType(input.RepeatType),
		RepeatInterval:   interval,
		RepeatDaysOfWeek: input.RepeatDaysOfWeek,
		TimeWindowStart:  input.TimeWindowStart,
		TimeWindowEnd:    input.TimeWindowEnd,
		MaxActivations:   input.MaxActivations,
	}

	created, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	if uc.regions != nil {
		uc.regions.Upsert(created)
	}

	uc.l.Infof(ctx, "task created: %s (%s)", created.ID, created.Title)
	return task.TaskOutput{Task: created}, nil
}
