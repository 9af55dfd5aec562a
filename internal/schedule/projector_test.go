package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"georeminder/internal/model"
	"georeminder/internal/schedule"
)

// week returns the 7 days starting at the given date.
func week(start schedule.Date) []schedule.Date {
	days := make([]schedule.Date, 7)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

var weekStart = schedule.Date{Year: 2024, Month: time.May, Day: 6} // Monday

func TestProjectWeek_SingleShotRoundTrip(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	// ActiveAfter lands on Wednesday 14:30.
	activeAfter := time.Date(2024, 5, 8, 14, 30, 0, 0, time.UTC)
	task := model.Task{
		ID:          "t1",
		RepeatType:  model.RepeatNone,
		ActiveAfter: &activeAfter,
	}

	days := week(weekStart)
	result := p.ProjectWeek([]model.Task{task}, days, weekStart)

	total := 0
	for _, day := range days {
		total += len(result[day])
	}
	require.Equal(t, 1, total, "exactly one occurrence in the week")

	wednesday := schedule.Date{Year: 2024, Month: time.May, Day: 8}
	require.Len(t, result[wednesday], 1)

	occ := result[wednesday][0]
	assert.False(t, occ.IsRepeating)
	require.NotNil(t, occ.DisplayTime)
	assert.Equal(t, "14:30", *occ.DisplayTime)
}

func TestProjectWeek_SingleShotWithoutStartDateShowsToday(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	task := model.Task{ID: "t1", RepeatType: model.RepeatNone}
	today := weekStart.AddDays(2)

	result := p.ProjectWeek([]model.Task{task}, week(weekStart), today)

	for day, occs := range result {
		if day == today {
			require.Len(t, occs, 1)
			assert.Nil(t, occs[0].DisplayTime, "no window and no start date means all day")
		} else {
			assert.Emptyf(t, occs, "unexpected occurrence on %s", day)
		}
	}
}

func TestProjectWeek_DailyUnlimitedFromToday(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	task := model.Task{ID: "t1", RepeatType: model.RepeatDaily}
	today := weekStart.AddDays(3) // Thursday

	result := p.ProjectWeek([]model.Task{task}, week(weekStart), today)

	for i, day := range week(weekStart) {
		if i < 3 {
			assert.Emptyf(t, result[day], "past day %s must be empty", day)
		} else {
			assert.Lenf(t, result[day], 1, "day %s", day)
		}
	}
}

func TestProjectWeek_WeeklyDays(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	task := model.Task{
		ID:               "t1",
		RepeatType:       model.RepeatWeekly,
		RepeatDaysOfWeek: []int{1, 3, 5}, // Mon, Wed, Fri
	}

	result := p.ProjectWeek([]model.Task{task}, week(weekStart), weekStart)

	for i, day := range week(weekStart) {
		wantShown := i == 0 || i == 2 || i == 4
		assert.Equalf(t, wantShown, len(result[day]) == 1, "day %s (weekday %d)", day, day.Weekday())
	}
}

func TestProjectWeek_EveryNDaysCadence(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	activeAfter := weekStart.Time(time.UTC)
	task := model.Task{
		ID:             "t1",
		RepeatType:     model.RepeatEveryNDays,
		RepeatInterval: 2,
		ActiveAfter:    &activeAfter,
	}

	result := p.ProjectWeek([]model.Task{task}, week(weekStart), weekStart)

	for i, day := range week(weekStart) {
		wantShown := i%2 == 0 // days 0, 2, 4, 6
		assert.Equalf(t, wantShown, len(result[day]) == 1, "day offset %d", i)
	}
}

func TestProjectWeek_BudgetTruncation(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	activeAfter := weekStart.Time(time.UTC)
	task := model.Task{
		ID:                 "t1",
		RepeatType:         model.RepeatDaily,
		ActiveAfter:        &activeAfter,
		MaxActivations:     intPtr(3),
		CurrentActivations: 1,
	}

	result := p.ProjectWeek([]model.Task{task}, week(weekStart), weekStart)

	// Two activations remain, so only the first two qualifying days appear.
	shown := 0
	for _, day := range week(weekStart) {
		shown += len(result[day])
	}
	assert.Equal(t, 2, shown)
	assert.Len(t, result[weekStart], 1)
	assert.Len(t, result[weekStart.AddDays(1)], 1)
	assert.Empty(t, result[weekStart.AddDays(2)])
}

func TestProjectWeek_EveryNDaysWithCeilingButNoAnchor(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	// Invalid configuration: no anchor date to count from. Reject
	// defensively instead of inventing one.
	task := model.Task{
		ID:             "t1",
		RepeatType:     model.RepeatEveryNDays,
		RepeatInterval: 2,
		MaxActivations: intPtr(5),
	}

	result := p.ProjectWeek([]model.Task{task}, week(weekStart), weekStart)
	for _, day := range week(weekStart) {
		assert.Empty(t, result[day])
	}
}

func TestProjectWeek_CompletedTasksSkipped(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	task := model.Task{ID: "t1", RepeatType: model.RepeatDaily, IsCompleted: true}
	result := p.ProjectWeek([]model.Task{task}, week(weekStart), weekStart)

	for _, day := range week(weekStart) {
		assert.Empty(t, result[day])
	}
}

func TestProjectWeek_DayOrdering(t *testing.T) {
	p := schedule.NewProjector(time.UTC)

	windowStart := 9 * 60
	withWindow := model.Task{
		ID:              "window",
		RepeatType:      model.RepeatDaily,
		TimeWindowStart: &windowStart,
		TimeWindowEnd:   intPtr(10 * 60),
	}

	earlyStart := time.Date(2024, 5, 6, 8, 30, 0, 0, time.UTC)
	withStartTime := model.Task{
		ID:          "start",
		RepeatType:  model.RepeatNone,
		ActiveAfter: &earlyStart,
	}

	allDay := model.Task{ID: "allday", RepeatType: model.RepeatNone}

	result := p.ProjectWeek(
		[]model.Task{allDay, withWindow, withStartTime},
		week(weekStart),
		weekStart,
	)

	occs := result[weekStart]
	require.Len(t, occs, 3)
	assert.Equal(t, "start", occs[0].Task.ID, "08:30 sorts first")
	assert.Equal(t, "window", occs[1].Task.ID, "09:00 second")
	assert.Equal(t, "allday", occs[2].Task.ID, "all-day sorts last")
}

func TestProjectorAgreesWithEvaluatorOnCadence(t *testing.T) {
	loc := time.UTC
	e := schedule.NewEvaluator(loc)
	p := schedule.NewProjector(loc)

	activeAfter := weekStart.Time(loc)
	tasks := []model.Task{
		{ID: "daily", RepeatType: model.RepeatDaily, ActiveAfter: &activeAfter},
		{ID: "e3", RepeatType: model.RepeatEveryNDays, RepeatInterval: 3, ActiveAfter: &activeAfter},
		{ID: "weekly", RepeatType: model.RepeatWeekly, RepeatDaysOfWeek: []int{2, 6}, ActiveAfter: &activeAfter},
	}

	// A projected occurrence on a day implies the evaluator would accept a
	// perfectly-timed event on that day, and vice versa.
	for _, task := range tasks {
		result := p.ProjectWeek([]model.Task{task}, week(weekStart), weekStart)
		for i, day := range week(weekStart) {
			noon := day.Time(loc).Add(12 * time.Hour)
			trigger := e.ShouldTrigger(task, noon)
			projected := len(result[day]) == 1
			assert.Equalf(t, trigger, projected,
				"task %s day offset %d: trigger=%v projected=%v", task.ID, i, trigger, projected)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:05", schedule.FormatMinutes(545))
	assert.Equal(t, "00:00", schedule.FormatMinutes(0))
	assert.Equal(t, "23:59", schedule.FormatMinutes(1439))
}
