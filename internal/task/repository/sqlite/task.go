package sqlite

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"georeminder/internal/model"
	repo "georeminder/internal/task/repository"
)

// CreateTask inserts a new task row.
func (r *implRepository) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask fetches a task by id. Not-found returns the zero value without
// an error; a deleted task's geofence event must be droppable silently.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks matching the filter.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if opt.Completed != nil {
		q = q.Where("is_completed = ?", *opt.Completed)
	}
	if opt.NewestFirst {
		q = q.Order("created_at DESC")
	} else {
		q = q.Order("created_at ASC")
	}

	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask saves a full task row (user edits).
func (r *implRepository) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	if err := r.db.WithContext(ctx).Save(&t).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task row.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{}).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ApplyActivation writes the ledger mutation conditionally: the update only
// matches while current_activations still holds the value the trigger
// decision saw, so two concurrent activations cannot both count.
func (r *implRepository) ApplyActivation(ctx context.Context, opt repo.ApplyActivationOptions) (model.Task, error) {
	t := opt.Task

	res := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND current_activations = ?", t.ID, opt.PrevActivations).
		Updates(map[string]any{
			"current_activations": t.CurrentActivations,
			"last_activated_date": t.LastActivatedDate,
			"is_completed":        t.IsCompleted,
			"updated_at":          time.Now(),
		})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ApplyActivation"), res.Error)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Task{}, repo.ErrStaleTask
	}
	return t, nil
}
