package schedule

import (
	"fmt"
	"sort"
	"time"

	"georeminder/internal/model"
)

// Occurrence is a projected (not yet real) instance of a task on a specific
// calendar day, used for calendar rendering.
type Occurrence struct {
	Task        model.Task
	IsRepeating bool
	DisplayTime *string // "HH:mm", nil means all day
}

// Projector expands tasks into per-day occurrence lists for a bounded date
// range. It predicts by date only: it cannot know the real geofence-enter
// moment, so the time window is surfaced as display text instead of being a
// pass/fail gate. Its cadence math must agree with Evaluator.ShouldTrigger.
type Projector struct {
	loc *time.Location
}

// NewProjector creates a Projector deriving local dates in the given location.
func NewProjector(loc *time.Location) *Projector {
	if loc == nil {
		loc = time.Local
	}
	return &Projector{loc: loc}
}

// ProjectWeek returns, for each candidate day, the occurrences of the given
// tasks on that day, ordered by display time with all-day entries last.
// Completed tasks are skipped; tasks with an activation ceiling stop
// appearing once their remaining budget is used up within the window.
func (p *Projector) ProjectWeek(tasks []model.Task, days []Date, today Date) map[Date][]Occurrence {
	result := make(map[Date][]Occurrence, len(days))
	for _, day := range days {
		result[day] = []Occurrence{}
	}

	ordered := make([]Date, len(days))
	copy(ordered, days)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}

		remaining := t.RemainingActivations()

		anchor := today
		if t.ActiveAfter != nil {
			anchor = DateOf(t.ActiveAfter.In(p.loc))
		}

		for _, day := range ordered {
			if !p.ShowOnDay(t, day, today) {
				continue
			}

			if t.MaxActivations != nil && t.IsRepeating() {
				occurrences := p.CountOccurrencesBetween(t, anchor, day, today)
				if occurrences > remaining {
					break
				}
			}

			result[day] = append(result[day], Occurrence{
				Task:        t,
				IsRepeating: t.IsRepeating(),
				DisplayTime: p.displayTime(t, day),
			})
		}
	}

	for day := range result {
		sortOccurrences(result[day])
	}

	return result
}

// ShowOnDay decides whether the task plausibly occurs on the given day.
func (p *Projector) ShowOnDay(t model.Task, day, today Date) bool {
	if t.HasReachedMaxActivations() {
		return false
	}

	if t.ActiveAfter != nil {
		activeDate := DateOf(t.ActiveAfter.In(p.loc))

		// One-time tasks appear on their start date only.
		if !t.IsRepeating() {
			return day == activeDate
		}

		if day.Before(activeDate) {
			return false
		}
	}

	if !t.IsRepeating() {
		// No start date: a one-time task is only ever "today".
		return day == today
	}

	switch t.RepeatType {
	case model.RepeatDaily:
		if t.ActiveAfter == nil {
			if t.MaxActivations != nil {
				// No anchor to count activations from; creation-time
				// validation forbids this state, reject rather than guess.
				return false
			}
			return !day.Before(today)
		}
		return true

	case model.RepeatEveryNDays:
		var anchor Date
		switch {
		case t.ActiveAfter != nil:
			anchor = DateOf(t.ActiveAfter.In(p.loc))
		case t.LastActivatedDate != nil:
			anchor = DateOf(t.LastActivatedDate.In(p.loc))
		case t.MaxActivations == nil:
			anchor = today
		default:
			return false
		}
		days := DaysBetween(anchor, day)
		return days >= 0 && days%intervalOf(t) == 0

	case model.RepeatWeekly:
		if !t.IsActiveOnWeekday(day.Weekday()) {
			return false
		}
		if t.ActiveAfter == nil && t.MaxActivations != nil && day.Before(today) {
			return false
		}
		return true
	}

	return false
}

// IsScheduledOnDay is the cadence check alone, without start-date or ceiling
// gates. It backs the occurrence counting for budget truncation.
func (p *Projector) IsScheduledOnDay(t model.Task, day, today Date) bool {
	switch t.RepeatType {
	case model.RepeatDaily:
		return true

	case model.RepeatEveryNDays:
		anchor := today
		switch {
		case t.ActiveAfter != nil:
			anchor = DateOf(t.ActiveAfter.In(p.loc))
		case t.LastActivatedDate != nil:
			anchor = DateOf(t.LastActivatedDate.In(p.loc))
		}
		days := DaysBetween(anchor, day)
		return days >= 0 && days%intervalOf(t) == 0

	case model.RepeatWeekly:
		return t.IsActiveOnWeekday(day.Weekday())
	}

	return false
}

// CountOccurrencesBetween counts qualifying cadence days in [start, end].
func (p *Projector) CountOccurrencesBetween(t model.Task, start, end, today Date) int {
	if start.After(end) {
		return 0
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDays(1) {
		if p.IsScheduledOnDay(t, day, today) {
			count++
		}
	}
	return count
}

// displayTime derives the time shown next to an occurrence: the window start
// when a window is set, the ActiveAfter clock time when it falls exactly on
// this day, otherwise nil (all day).
func (p *Projector) displayTime(t model.Task, day Date) *string {
	if t.TimeWindowStart != nil {
		s := FormatMinutes(*t.TimeWindowStart)
		return &s
	}

	if t.ActiveAfter != nil {
		local := t.ActiveAfter.In(p.loc)
		if DateOf(local) == day {
			s := local.Format("15:04")
			return &s
		}
	}

	return nil
}

// FormatMinutes renders a minute-of-day value as HH:mm.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func intervalOf(t model.Task) int {
	if t.RepeatInterval < 1 {
		return 1
	}
	return t.RepeatInterval
}

// sortOccurrences orders a day's entries by display time ascending with
// all-day (nil) entries last.
func sortOccurrences(list []Occurrence) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].DisplayTime, list[j].DisplayTime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
}
