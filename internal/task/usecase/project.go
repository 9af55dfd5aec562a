package usecase

import (
	"context"

	"georeminder/internal/schedule"
	"georeminder/internal/task"
	repo "georeminder/internal/task/repository"
)

// ProjectWeek expands all non-completed tasks into per-day occurrence lists
// for the seven days starting at input.WeekStart (defaulting to the current
// week's Monday).
func (uc *implUseCase) ProjectWeek(ctx context.Context, input task.ProjectWeekInput) (task.ProjectWeekOutput, error) {
	now := uc.now().In(uc.loc)
	today := schedule.DateOf(now)

	weekStart := input.WeekStart
	if weekStart == (schedule.Date{}) {
		weekStart = mondayOf(today)
	}

	days := make([]schedule.Date, 7)
	for i := range days {
		days[i] = weekStart.AddDays(i)
	}

	completed := false
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Completed: &completed})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProjectWeek ListTasks: %v", err)
		return task.ProjectWeekOutput{}, err
	}

	byDay := uc.projector.ProjectWeek(tasks, days, today)

	out := task.ProjectWeekOutput{WeekStart: weekStart}
	for _, day := range days {
		out.Days = append(out.Days, task.DayOccurrences{
			Day:         day,
			Occurrences: byDay[day],
		})
	}

	return out, nil
}

// mondayOf returns the Monday of the week containing d.
func mondayOf(d schedule.Date) schedule.Date {
	return d.AddDays(-(d.Weekday() - 1))
}
