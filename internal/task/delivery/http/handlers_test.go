package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"georeminder/internal/middleware"
	"georeminder/internal/model"
	"georeminder/internal/schedule"
	"georeminder/internal/task"
	taskHTTP "georeminder/internal/task/delivery/http"
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

type mockUseCase struct {
	task.UseCase

	createOutput task.TaskOutput
	createErr    error
	detailOutput task.TaskOutput
	detailErr    error

	projectInput  task.ProjectWeekInput
	projectOutput task.ProjectWeekOutput
	projectErr    error
}

func (m *mockUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.TaskOutput, error) {
	return m.createOutput, m.createErr
}

func (m *mockUseCase) Detail(ctx context.Context, id string) (task.TaskOutput, error) {
	return m.detailOutput, m.detailErr
}

func (m *mockUseCase) ProjectWeek(ctx context.Context, input task.ProjectWeekInput) (task.ProjectWeekOutput, error) {
	m.projectInput = input
	return m.projectOutput, m.projectErr
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := taskHTTP.New(&mockLogger{}, uc)
	r := gin.New()
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.Middleware{})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	uc := &mockUseCase{createOutput: task.TaskOutput{
		Task: model.Task{ID: "t1", Title: "buy milk", RepeatType: model.RepeatNone, Radius: 100},
	}}
	r := newRouter(uc)

	w := doRequest(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"title":     "buy milk",
		"latitude":  50.06,
		"longitude": 19.94,
		"radius":    100,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Task struct {
				ID string `json:"id"`
			} `json:"task"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.Task.ID != "t1" {
		t.Errorf("task id = %q, want t1", resp.Data.Task.ID)
	}
}

func TestCreate_DomainValidationError(t *testing.T) {
	uc := &mockUseCase{createErr: task.ErrLimitNeedsStartDate}
	r := newRouter(uc)

	w := doRequest(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"title":           "water plants",
		"latitude":        50.06,
		"longitude":       19.94,
		"radius":          100,
		"repeat_type":     "EVERY_N_DAYS",
		"repeat_interval": 3,
		"max_activations": 5,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreate_MissingTitle(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := doRequest(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
		"latitude":  50.06,
		"longitude": 19.94,
		"radius":    100,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDetail_NotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: task.ErrTaskNotFound}
	r := newRouter(uc)

	w := doRequest(t, r, http.MethodGet, "/api/v1/tasks/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCalendarWeek(t *testing.T) {
	weekStart := schedule.Date{Year: 2024, Month: time.May, Day: 6}
	uc := &mockUseCase{projectOutput: task.ProjectWeekOutput{
		WeekStart: weekStart,
		Days: []task.DayOccurrences{
			{Day: weekStart, Occurrences: []schedule.Occurrence{
				{Task: model.Task{ID: "t1", Title: "gym"}, IsRepeating: true},
			}},
		},
	}}
	r := newRouter(uc)

	w := doRequest(t, r, http.MethodGet, "/api/v1/calendar/week?start=2024-05-06", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if uc.projectInput.WeekStart != weekStart {
		t.Errorf("week start passed = %v, want %v", uc.projectInput.WeekStart, weekStart)
	}

	var resp struct {
		Data struct {
			WeekStart string `json:"week_start"`
			Days      []struct {
				Date        string `json:"date"`
				Occurrences []struct {
					IsRepeating bool `json:"is_repeating"`
				} `json:"occurrences"`
			} `json:"days"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Data.WeekStart != "2024-05-06" {
		t.Errorf("week_start = %q, want 2024-05-06", resp.Data.WeekStart)
	}
	if len(resp.Data.Days) != 1 || len(resp.Data.Days[0].Occurrences) != 1 {
		t.Fatalf("unexpected days payload: %+v", resp.Data.Days)
	}
	if !resp.Data.Days[0].Occurrences[0].IsRepeating {
		t.Error("occurrence should be marked repeating")
	}
}

func TestCalendarWeek_BadStart(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := doRequest(t, r, http.MethodGet, "/api/v1/calendar/week?start=05/06/2024", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
