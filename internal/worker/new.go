package worker

import (
	"time"

	"github.com/robfig/cron/v3"

	"georeminder/internal/task"
	"georeminder/pkg/gcalendar"
	pkgLog "georeminder/pkg/log"
)

// Worker runs the daily digest job: each morning it projects the current
// day's reminder occurrences, sends them as one notification, and
// optionally mirrors them to Google Calendar.
type Worker struct {
	l          pkgLog.Logger
	uc         task.UseCase
	notifier   task.Notifier      // optional
	calendar   *gcalendar.Client  // optional
	calendarID string
	loc        *time.Location
	cron       *cron.Cron
	spec       string
}

// New creates a digest Worker. Notifier and calendar may be nil; with both
// unset the job is a no-op and Start skips scheduling it.
func New(
	l pkgLog.Logger,
	uc task.UseCase,
	notifier task.Notifier,
	calendar *gcalendar.Client,
	calendarID string,
	loc *time.Location,
	spec string,
) *Worker {
	if loc == nil {
		loc = time.Local
	}
	return &Worker{
		l:          l,
		uc:         uc,
		notifier:   notifier,
		calendar:   calendar,
		calendarID: calendarID,
		loc:        loc,
		cron:       cron.New(cron.WithLocation(loc)),
		spec:       spec,
	}
}

// Start schedules the digest job and starts the cron loop.
func (w *Worker) Start() error {
	if w.spec == "" || (w.notifier == nil && w.calendar == nil) {
		return nil
	}
	if _, err := w.cron.AddFunc(w.spec, w.runDigest); err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (w *Worker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}
