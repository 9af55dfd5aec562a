package task

import (
	"context"

	"georeminder/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (TaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (TaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (TaskOutput, error)
	Delete(ctx context.Context, id string) error

	// HandleGeofenceEnter runs the activation decision for one
	// enter-transition event and persists the result when the task fires.
	HandleGeofenceEnter(ctx context.Context, input GeofenceEnterInput) (ActivationOutput, error)

	// ProjectWeek expands all active tasks into per-day occurrences for the
	// seven days starting at input.WeekStart.
	ProjectWeek(ctx context.Context, input ProjectWeekInput) (ProjectWeekOutput, error)
}

// Notifier delivers a reminder to the user. Fire-and-forget: delivery
// failures are logged by the caller, never surfaced to the activation flow.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// RegionSync keeps the geofence region registry in step with stored tasks.
// Implemented by the geofence detector.
type RegionSync interface {
	Upsert(t model.Task)
	Remove(taskID string)
}
