package schedule

import (
	"time"

	"georeminder/internal/model"
)

// Evaluator answers whether a geofence-enter event should fire a task right
// now. Decisions are pure functions of the task and the instant: no I/O, no
// errors, rejection is a normal outcome.
type Evaluator struct {
	loc *time.Location
}

// NewEvaluator creates an Evaluator that derives calendar fields (day,
// weekday, minute-of-day) in the given location.
func NewEvaluator(loc *time.Location) *Evaluator {
	if loc == nil {
		loc = time.Local
	}
	return &Evaluator{loc: loc}
}

// ShouldTrigger decides whether a geofence-enter event at `now` fires the
// task. The caller must pre-filter completed tasks; a completed task is never
// evaluated. Gates run in order and short-circuit on the first failure:
//
//  1. start date   - not before ActiveAfter
//  2. ceiling      - activation budget not exhausted
//  3. time window  - minute-of-day inside the window (wrap supported)
//  4. one per day  - repeating tasks fire at most once per calendar day
//  5. cadence      - repeat-type specific day math
func (e *Evaluator) ShouldTrigger(t model.Task, now time.Time) bool {
	now = now.In(e.loc)

	if t.ActiveAfter != nil && now.Before(*t.ActiveAfter) {
		return false
	}

	if t.HasReachedMaxActivations() {
		return false
	}

	if t.HasTimeWindow() && !inTimeWindow(*t.TimeWindowStart, *t.TimeWindowEnd, now) {
		return false
	}

	if t.IsRepeating() && t.LastActivatedDate != nil {
		if DateOf(t.LastActivatedDate.In(e.loc)) == DateOf(now) {
			return false
		}
	}

	switch t.RepeatType {
	case model.RepeatDaily:
		return true

	case model.RepeatEveryNDays:
		return e.everyNDaysDue(t, now)

	case model.RepeatWeekly:
		return t.IsActiveOnWeekday(isoWeekday(now.Weekday()))

	default: // NONE: single-shot, all gates above passed
		return true
	}
}

// everyNDaysDue checks the EVERY_N_DAYS cadence. Once the task has fired the
// cadence re-anchors on the last activation; before the first firing it
// counts days from ActiveAfter. A task with neither anchor fires on first
// encounter.
func (e *Evaluator) everyNDaysDue(t model.Task, now time.Time) bool {
	interval := t.RepeatInterval
	if interval < 1 {
		interval = 1
	}

	if t.LastActivatedDate != nil {
		elapsed := now.Sub(*t.LastActivatedDate)
		return int(elapsed/(24*time.Hour)) >= interval
	}

	if t.ActiveAfter != nil {
		days := DaysBetween(DateOf(t.ActiveAfter.In(e.loc)), DateOf(now))
		return days >= 0 && days%interval == 0
	}

	return true
}

// inTimeWindow reports whether now's minute-of-day falls inside [start,end].
// A window with start > end spans midnight.
func inTimeWindow(start, end int, now time.Time) bool {
	minutes := now.Hour()*60 + now.Minute()
	if start <= end {
		return minutes >= start && minutes <= end
	}
	return minutes >= start || minutes <= end
}

// ApplyActivation returns the task updated for one successful firing at
// `now`: the counter increments, the last-activated instant is recorded, and
// the task completes permanently when it is single-shot or its ceiling is
// reached. The caller persists the result; ApplyActivation itself never
// touches storage.
func (e *Evaluator) ApplyActivation(t model.Task, now time.Time) model.Task {
	now = now.In(e.loc)

	t.CurrentActivations++
	t.LastActivatedDate = &now

	if !t.IsRepeating() {
		t.IsCompleted = true
	} else if t.MaxActivations != nil && t.CurrentActivations >= *t.MaxActivations {
		t.IsCompleted = true
	}

	return t
}
