package task

import (
	"time"

	"georeminder/internal/model"
	"georeminder/internal/schedule"
)

// CreateTaskInput is the input for creating a task.
type CreateTaskInput struct {
	Title            string
	Address          string
	Latitude         float64
	Longitude        float64
	Radius           float64
	ActiveAfter      *time.Time
	RepeatType       model.RepeatType
	RepeatInterval   int
	RepeatDaysOfWeek []int
	TimeWindowStart  *int
	TimeWindowEnd    *int
	MaxActivations   *int
}

// UpdateTaskInput is the input for editing a task. Every scheduling field is
// replaced wholesale; the activation ledger fields are not user-editable.
type UpdateTaskInput struct {
	ID               string
	Title            string
	Address          string
	Latitude         float64
	Longitude        float64
	Radius           float64
	ActiveAfter      *time.Time
	RepeatType       model.RepeatType
	RepeatInterval   int
	RepeatDaysOfWeek []int
	TimeWindowStart  *int
	TimeWindowEnd    *int
	MaxActivations   *int
}

// Status filter values for ListTasksInput.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// ListTasksInput is the input for listing tasks.
type ListTasksInput struct {
	Status string // "", StatusActive or StatusCompleted
}

// GeofenceEnterInput describes one enter-transition event from the location
// platform.
type GeofenceEnterInput struct {
	TaskID string
	At     time.Time // zero means "now"
}

// ProjectWeekInput is the input for the calendar projection.
type ProjectWeekInput struct {
	WeekStart schedule.Date // zero value means the current week's Monday
}

// --- Outputs ---

type TaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

// ActivationOutput reports what a geofence-enter event did. Fired is false
// for every rejection path: unknown id, completed task, failed gate, or a
// concurrent duplicate that lost the write race.
type ActivationOutput struct {
	Fired bool
	Task  model.Task
}

// DayOccurrences holds one day's projected occurrences, already ordered.
type DayOccurrences struct {
	Day         schedule.Date
	Occurrences []schedule.Occurrence
}

// ProjectWeekOutput is a full week of projected occurrences in day order.
type ProjectWeekOutput struct {
	WeekStart schedule.Date
	Days      []DayOccurrences
}
