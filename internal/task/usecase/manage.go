package usecase

import (
	"context"

	"georeminder/internal/task"
	repo "georeminder/internal/task/repository"
)

// List returns tasks filtered by completion status. Completed tasks come
// newest-first (the task history view).
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	opt := repo.ListTasksOptions{}

	switch input.Status {
	case task.StatusActive:
		completed := false
		opt.Completed = &completed
	case task.StatusCompleted:
		completed := true
		opt.Completed = &completed
		opt.NewestFirst = true
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}

// Detail returns a single task by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.TaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.TaskOutput{}, err
	}
	if t.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}
	return task.TaskOutput{Task: t}, nil
}

// Update replaces the user-editable fields of an existing task. The
// activation ledger (counter, last-activated, completion) is preserved.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.TaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.TaskOutput{}, err
	}
	if existing.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	err = validateScheduling(schedulingFields{
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

	existing.Title = input.Title
	existing.Address = input.Address
	existing.Latitude = input.Latitude
	existing.Longitude = input.Longitude
	existing.Radius = input.Radius
	existing.ActiveAfter = input.ActiveAfter
	existing.RepeatType = normalizeRepeatType(input.RepeatType)
	existing.RepeatInterval = interval
	existing.RepeatDaysOfWeek = input.RepeatDaysOfWeek
	existing.TimeWindowStart = input.TimeWindowStart
	existing.TimeWindowEnd = input.TimeWindowEnd
	existing.MaxActivations = input.MaxActivations

	updated, err := uc.repo.UpdateTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}

	if uc.regions != nil {
		if updated.IsCompleted {
			uc.regions.Remove(updated.ID)
		} else {
			uc.regions.Upsert(updated)
		}
	}

	return task.TaskOutput{Task: updated}, nil
}

// Delete removes a task and its geofence region.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	if uc.regions != nil {
		uc.regions.Remove(id)
	}

	uc.l.Infof(ctx, "task deleted: %s", id)
	return nil
}
