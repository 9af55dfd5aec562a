package http

import (
	"time"

	"georeminder/internal/model"
	"georeminder/internal/task"
)

// --- Request DTOs ---

type taskBodyReq struct {
	Title            string     `json:"title"              binding:"required,min=1,max=255"`
	Address          string     `json:"address"            binding:"max=512"`
	Latitude         float64    `json:"latitude"           binding:"min=-90,max=90"`
	Longitude        float64    `json:"longitude"          binding:"min=-180,max=180"`
	Radius           float64    `json:"radius"             binding:"required,gt=0"`
	ActiveAfter      *time.Time `json:"active_after"`
	RepeatType       string     `json:"repeat_type"        binding:"omitempty,oneof=NONE DAILY EVERY_N_DAYS WEEKLY"`
	RepeatInterval   int        `json:"repeat_interval"    binding:"omitempty,min=1"`
	RepeatDaysOfWeek []int      `json:"repeat_days_of_week"`
	TimeWindowStart  *int       `json:"time_window_start"`
	TimeWindowEnd    *int       `json:"time_window_end"`
	MaxActivations   *int       `json:"max_activations"`
}

func (r taskBodyReq) validate() error { return nil }

func (r taskBodyReq) toCreateInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:            r.Title,
		Address:          r.Address,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Radius:           r.Radius,
		ActiveAfter:      r.ActiveAfter,
		RepeatType:       model.RepeatType(r.RepeatType),
		RepeatInterval:   r.RepeatInterval,
		RepeatDaysOfWeek: r.RepeatDaysOfWeek,
		TimeWindowStart:  r.TimeWindowStart,
		TimeWindowEnd:    r.TimeWindowEnd,
		MaxActivations:   r.MaxActivations,
	}
}

func (r taskBodyReq) toUpdateInput(id string) task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:               id,
		Title:            r.Title,
		Address:          r.Address,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		Radius:           r.Radius,
		ActiveAfter:      r.ActiveAfter,
		RepeatType:       model.RepeatType(r.RepeatType),
		RepeatInterval:   r.RepeatInterval,
		RepeatDaysOfWeek: r.RepeatDaysOfWeek,
		TimeWindowStart:  r.TimeWindowStart,
		TimeWindowEnd:    r.TimeWindowEnd,
		MaxActivations:   r.MaxActivations,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=active completed"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{Status: r.Status}
}

// --- Response DTOs ---

type taskResp struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Address            string     `json:"address,omitempty"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	Radius             float64    `json:"radius"`
	IsCompleted        bool       `json:"is_completed"`
	ActiveAfter        *time.Time `json:"active_after,omitempty"`
	RepeatType         string     `json:"repeat_type"`
	RepeatInterval     int        `json:"repeat_interval"`
	RepeatDaysOfWeek   []int      `json:"repeat_days_of_week,omitempty"`
	TimeWindowStart    *int       `json:"time_window_start,omitempty"`
	TimeWindowEnd      *int       `json:"time_window_end,omitempty"`
	MaxActivations     *int       `json:"max_activations,omitempty"`
	CurrentActivations int        `json:"current_activations"`
	LastActivatedDate  *time.Time `json:"last_activated_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                 t.ID,
		Title:              t.Title,
		Address:            t.Address,
		Latitude:           t.Latitude,
		Longitude:          t.Longitude,
		Radius:             t.Radius,
		IsCompleted:        t.IsCompleted,
		ActiveAfter:        t.ActiveAfter,
		RepeatType:         string(t.RepeatType),
		RepeatInterval:     t.RepeatInterval,
		RepeatDaysOfWeek:   t.RepeatDaysOfWeek,
		TimeWindowStart:    t.TimeWindowStart,
		TimeWindowEnd:      t.TimeWindowEnd,
		MaxActivations:     t.MaxActivations,
		CurrentActivations: t.CurrentActivations,
		LastActivatedDate:  t.LastActivatedDate,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.TaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: len(tasks)}
}

type occurrenceResp struct {
	Task        taskResp `json:"task"`
	IsRepeating bool     `json:"is_repeating"`
	DisplayTime *string  `json:"display_time,omitempty"`
}

type calendarDayResp struct {
	Date        string           `json:"date"`
	Occurrences []occurrenceResp `json:"occurrences"`
}

type calendarWeekResp struct {
	WeekStart string            `json:"week_start"`
	Days      []calendarDayResp `json:"days"`
}

func (h *handler) newCalendarWeekResp(out task.ProjectWeekOutput) calendarWeekResp {
	resp := calendarWeekResp{WeekStart: out.WeekStart.String()}
	for _, day := range out.Days {
		occs := make([]occurrenceResp, len(day.Occurrences))
		for i, occ := range day.Occurrences {
			occs[i] = occurrenceResp{
				Task:        newTaskResp(occ.Task),
				IsRepeating: occ.IsRepeating,
				DisplayTime: occ.DisplayTime,
			}
		}
		resp.Days = append(resp.Days, calendarDayResp{
			Date:        day.Day.String(),
			Occurrences: occs,
		})
	}
	return resp
}
