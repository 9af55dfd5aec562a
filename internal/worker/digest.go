package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"georeminder/internal/schedule"
	"georeminder/internal/task"
	"georeminder/pkg/gcalendar"
)

const digestTimeout = time.Minute

// runDigest projects the current week and handles today's slice of it.
func (w *Worker) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	today := schedule.DateOf(time.Now().In(w.loc))

	out, err := w.uc.ProjectWeek(ctx, task.ProjectWeekInput{})
	if err != nil {
		w.l.Errorf(ctx, "worker.runDigest ProjectWeek: %v", err)
		return
	}

	var occurrences []schedule.Occurrence
	for _, day := range out.Days {
		if day.Day == today {
			occurrences = day.Occurrences
			break
		}
	}

	if len(occurrences) == 0 {
		w.l.Debugf(ctx, "digest: nothing scheduled for %s", today)
		return
	}

	w.sendDigest(ctx, today, occurrences)
	w.exportToCalendar(ctx, today, occurrences)
}

func (w *Worker) sendDigest(ctx context.Context, today schedule.Date, occurrences []schedule.Occurrence) {
	if w.notifier == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Reminders for %s:\n", today)
	for _, occ := range occurrences {
		if occ.DisplayTime != nil {
			fmt.Fprintf(&b, "- %s %s\n", *occ.DisplayTime, occ.Task.Title)
		} else {
			fmt.Fprintf(&b, "- %s\n", occ.Task.Title)
		}
	}

	if err := w.notifier.Notify(ctx, "GeoReminder", b.String()); err != nil {
		w.l.Warnf(ctx, "digest notification failed: %v", err)
	}
}

func (w *Worker) exportToCalendar(ctx context.Context, today schedule.Date, occurrences []schedule.Occurrence) {
	if w.calendar == nil {
		return
	}

	for _, occ := range occurrences {
		req := gcalendar.CreateEventRequest{
			CalendarID:  w.calendarID,
			Summary:     occ.Task.Title,
			Description: fmt.Sprintf("Task reminder: %s", occ.Task.Title),
			Location:    occ.Task.Address,
			Timezone:    w.loc.String(),
		}

		if start, ok := occurrenceStart(today, occ, w.loc); ok {
			req.StartTime = start
			req.EndTime = start.Add(30 * time.Minute)
		} else {
			req.AllDay = true
			req.StartTime = today.Time(w.loc)
			req.EndTime = today.AddDays(1).Time(w.loc)
		}

		if _, err := w.calendar.CreateEvent(ctx, req); err != nil {
			w.l.Warnf(ctx, "calendar export failed for task %s: %v", occ.Task.ID, err)
		}
	}
}

// occurrenceStart resolves an occurrence's display time to an instant on
// the given day.
func occurrenceStart(day schedule.Date, occ schedule.Occurrence, loc *time.Location) (time.Time, bool) {
	if occ.DisplayTime == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("15:04", *occ.DisplayTime)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year, day.Month, day.Day, t.Hour(), t.Minute(), 0, 0, loc), true
}
