package worker

import (
	"context"
	"strings"
	"testing"
	"time"

	"georeminder/internal/model"
	"georeminder/internal/schedule"
	"georeminder/internal/task"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	task.UseCase

	output task.ProjectWeekOutput
}

func (m *mockUseCase) ProjectWeek(ctx context.Context, input task.ProjectWeekInput) (task.ProjectWeekOutput, error) {
	return m.output, nil
}

type mockNotifier struct {
	titles []string
	bodies []string
}

func (m *mockNotifier) Notify(ctx context.Context, title, body string) error {
	m.titles = append(m.titles, title)
	m.bodies = append(m.bodies, body)
	return nil
}

func strPtr(s string) *string { return &s }

func TestRunDigest(t *testing.T) {
	today := schedule.DateOf(time.Now().UTC())

	uc := &mockUseCase{output: task.ProjectWeekOutput{
		Days: []task.DayOccurrences{
			{
				Day: today,
				Occurrences: []schedule.Occurrence{
					{Task: model.Task{ID: "a", Title: "gym"}, DisplayTime: strPtr("09:00")},
					{Task: model.Task{ID: "b", Title: "groceries"}},
				},
			},
			{Day: today.AddDays(1)},
		},
	}}
	notifier := &mockNotifier{}

	w := New(&mockLogger{}, uc, notifier, nil, "", time.UTC, "0 7 * * *")
	w.runDigest()

	if len(notifier.bodies) != 1 {
		t.Fatalf("expected one digest notification, got %d", len(notifier.bodies))
	}
	body := notifier.bodies[0]
	if !strings.Contains(body, "09:00 gym") {
		t.Errorf("digest missing timed entry: %q", body)
	}
	if !strings.Contains(body, "groceries") {
		t.Errorf("digest missing all-day entry: %q", body)
	}
}

func TestRunDigest_EmptyDay(t *testing.T) {
	today := schedule.DateOf(time.Now().UTC())

	uc := &mockUseCase{output: task.ProjectWeekOutput{
		Days: []task.DayOccurrences{{Day: today}},
	}}
	notifier := &mockNotifier{}

	w := New(&mockLogger{}, uc, notifier, nil, "", time.UTC, "0 7 * * *")
	w.runDigest()

	if len(notifier.bodies) != 0 {
		t.Errorf("empty day must not notify, got %v", notifier.bodies)
	}
}

func TestOccurrenceStart(t *testing.T) {
	day := schedule.Date{Year: 2024, Month: time.May, Day: 8}

	start, ok := occurrenceStart(day, schedule.Occurrence{DisplayTime: strPtr("14:30")}, time.UTC)
	if !ok {
		t.Fatal("expected a resolved start time")
	}
	want := time.Date(2024, 5, 8, 14, 30, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}

	if _, ok := occurrenceStart(day, schedule.Occurrence{}, time.UTC); ok {
		t.Error("all-day occurrence must not resolve a start time")
	}
}
