package usecase_test

import (
	"context"
	"sync"

	"georeminder/internal/model"
	repo "georeminder/internal/task/repository"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

// mockRepo implements repository.Repository in memory. ApplyActivation
// honors the conditional-write contract so concurrency tests are meaningful.
type mockRepo struct {
	mu    sync.Mutex
	tasks map[string]model.Task

	getCalls   int
	applyCalls int

	failGet   error
	failApply error
}

func newMockRepo(tasks ...model.Task) *mockRepo {
	m := &mockRepo{tasks: make(map[string]model.Task)}
	for _, t := range tasks {
		m.tasks[t.ID] = t
	}
	return m
}

func (m *mockRepo) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.failGet != nil {
		return model.Task{}, m.failGet
	}
	return m.tasks[id], nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Completed != nil && t.IsCompleted != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks[t.ID] = t
	return t, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) ApplyActivation(ctx context.Context, opt repo.ApplyActivationOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyCalls++
	if m.failApply != nil {
		return model.Task{}, m.failApply
	}
	stored, ok := m.tasks[opt.Task.ID]
	if !ok || stored.CurrentActivations != opt.PrevActivations {
		return model.Task{}, repo.ErrStaleTask
	}
	m.tasks[opt.Task.ID] = opt.Task
	return opt.Task, nil
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *mockNotifier) Notify(ctx context.Context, title, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, title+": "+body)
	return m.err
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type mockRegions struct {
	mu      sync.Mutex
	upserts []string
	removes []string
}

func (m *mockRegions) Upsert(t model.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts = append(m.upserts, t.ID)
}

func (m *mockRegions) Remove(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removes = append(m.removes, taskID)
}

func intPtr(v int) *int { return &v }
