package repository

import (
	"context"

	"georeminder/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)

	// GetOneTask returns the zero-value Task (ID == "") when not found;
	// not-found is not an error.
	GetOneTask(ctx context.Context, id string) (model.Task, error)

	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// ApplyActivation persists the post-activation ledger mutation as a
	// conditional write keyed on the activation counter the decision was
	// computed from. Returns ErrStaleTask when a concurrent activation won.
	ApplyActivation(ctx context.Context, opt ApplyActivationOptions) (model.Task, error)
}
