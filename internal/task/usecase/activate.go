package usecase

import (
	"context"
	"errors"
	"fmt"

	"georeminder/internal/schedule"
	"georeminder/internal/task"
	repo "georeminder/internal/task/repository"
)

// HandleGeofenceEnter runs the trigger decision for one enter-transition
// event. Unknown task ids are dropped silently: the task may have been
// deleted after its geofence was registered. Concurrent deliveries for the
// same task are serialized by a per-id mutex, and the ledger write is
// conditional on the activation counter, so a duplicate can never
// double-count.
func (uc *implUseCase) HandleGeofenceEnter(ctx context.Context, input task.GeofenceEnterInput) (task.ActivationOutput, error) {
	unlock := uc.locks.Lock(input.TaskID)
	defer unlock()

	at := input.At
	if at.IsZero() {
		at = uc.now()
	}
	at = at.In(uc.loc)
	day := schedule.DateOf(at)

	// Cheap same-day dedupe before touching the store.
	if last, ok := uc.recent.Get(input.TaskID); ok && last == day {
		return task.ActivationOutput{}, nil
	}

	t, err := uc.repo.GetOneTask(ctx, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleGeofenceEnter GetOneTask: %v", err)
		return task.ActivationOutput{}, err
	}
	if t.ID == "" {
		uc.l.Debugf(ctx, "geofence event for unknown task %s dropped", input.TaskID)
		return task.ActivationOutput{}, nil
	}
	if t.IsCompleted {
		return task.ActivationOutput{}, nil
	}

	if !uc.evaluator.ShouldTrigger(t, at) {
		return task.ActivationOutput{}, nil
	}

	prev := t.CurrentActivations
	updated := uc.evaluator.ApplyActivation(t, at)

	persisted, err := uc.repo.ApplyActivation(ctx, repo.ApplyActivationOptions{
		Task:            updated,
		PrevActivations: prev,
	})
	if errors.Is(err, repo.ErrStaleTask) {
		// Another delivery won the write; from the scheduling standpoint
		// this event never happened.
		uc.l.Warnf(ctx, "task %s: concurrent activation lost the write, dropping event", t.ID)
		return task.ActivationOutput{}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleGeofenceEnter ApplyActivation: %v", err)
		return task.ActivationOutput{}, err
	}

	uc.recent.Add(t.ID, day)

	if persisted.IsCompleted && uc.regions != nil {
		uc.regions.Remove(persisted.ID)
	}

	uc.sendNotification(ctx, persisted.Title)

	uc.l.Infof(ctx, "task %s fired (activation %d)", persisted.ID, persisted.CurrentActivations)
	return task.ActivationOutput{Fired: true, Task: persisted}, nil
}

// sendNotification delivers the reminder. Failures are logged and swallowed;
// the activation has already been recorded.
func (uc *implUseCase) sendNotification(ctx context.Context, title string) {
	if uc.notifier == nil {
		return
	}
	body := fmt.Sprintf("Task reminder: %s", title)
	if err := uc.notifier.Notify(ctx, "GeoReminder", body); err != nil {
		uc.l.Warnf(ctx, "notification delivery failed: %v", err)
	}
}
