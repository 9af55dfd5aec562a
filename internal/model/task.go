package model

import (
	"math"
	"time"
)

// RepeatType defines how a task repeats.
//
// RepeatNone       - task does not repeat (one-time task)
// RepeatDaily      - task repeats every day
// RepeatEveryNDays - task repeats every N days (see RepeatInterval)
// RepeatWeekly     - task repeats on specific weekdays (see RepeatDaysOfWeek)
type RepeatType string

const (
	RepeatNone       RepeatType = "NONE"
	RepeatDaily      RepeatType = "DAILY"
	RepeatEveryNDays RepeatType = "EVERY_N_DAYS"
	RepeatWeekly     RepeatType = "WEEKLY"
)

// Valid reports whether rt is one of the known repeat types.
func (rt RepeatType) Valid() bool {
	switch rt {
	case RepeatNone, RepeatDaily, RepeatEveryNDays, RepeatWeekly:
		return true
	}
	return false
}

// Task is a location-anchored reminder. It fires when the user enters the
// circular region (Latitude/Longitude/Radius), subject to its scheduling
// constraints. Only the activation flow mutates CurrentActivations,
// LastActivatedDate and IsCompleted; everything else is user-edited.
//
// Weekdays in RepeatDaysOfWeek use Monday=1 .. Sunday=7.
type Task struct {
	ID        string `gorm:"primaryKey;size:36"`
	Title     string `gorm:"size:255"`
	Address   string `gorm:"size:512"`
	Latitude  float64
	Longitude float64
	Radius    float64 // meters

	IsCompleted bool `gorm:"default:false;index"`

	// ActiveAfter: the task must not fire before this instant. It also
	// anchors EVERY_N_DAYS counting when no activation has happened yet.
	ActiveAfter *time.Time

	RepeatType       RepeatType `gorm:"size:16;default:NONE"`
	RepeatInterval   int        `gorm:"default:1"` // whole days, EVERY_N_DAYS only
	RepeatDaysOfWeek []int      `gorm:"serializer:json"`

	// Minute-of-day window [0,1440). When both are set the task only fires
	// inside the window; start > end means the window wraps past midnight.
	TimeWindowStart *int
	TimeWindowEnd   *int

	MaxActivations     *int // nil = unlimited
	CurrentActivations int  `gorm:"default:0"`
	LastActivatedDate  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRepeating reports whether the task has any repeat cadence.
func (t Task) IsRepeating() bool {
	return t.RepeatType != RepeatNone && t.RepeatType != ""
}

// HasTimeWindow reports whether both window bounds are set.
func (t Task) HasTimeWindow() bool {
	return t.TimeWindowStart != nil && t.TimeWindowEnd != nil
}

// HasReachedMaxActivations reports whether the activation ceiling is hit.
func (t Task) HasReachedMaxActivations() bool {
	return t.MaxActivations != nil && t.CurrentActivations >= *t.MaxActivations
}

// RemainingActivations returns how many activations are left before the
// ceiling, or MaxInt for unlimited tasks.
func (t Task) RemainingActivations() int {
	if t.MaxActivations == nil {
		return math.MaxInt
	}
	remaining := *t.MaxActivations - t.CurrentActivations
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsActiveOnWeekday reports whether a WEEKLY task may fire on the given
// weekday (Monday=1 .. Sunday=7). An empty day set is treated as always
// active; task creation validation prevents that state for user input.
func (t Task) IsActiveOnWeekday(weekday int) bool {
	if len(t.RepeatDaysOfWeek) == 0 {
		return true
	}
	for _, d := range t.RepeatDaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}
