package http

import (
	"github.com/gin-gonic/gin"

	"georeminder/internal/schedule"
	"georeminder/internal/task"
	"georeminder/pkg/response"
)

// processTaskBodyReq binds and validates the create/update request body.
func (h *handler) processTaskBodyReq(c *gin.Context) (taskBodyReq, error) {
	var req taskBodyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCalendarWeekReq parses the optional ?start=YYYY-MM-DD parameter.
// Absent means the current week.
func (h *handler) processCalendarWeekReq(c *gin.Context) (task.ProjectWeekInput, error) {
	raw := c.Query("start")
	if raw == "" {
		return task.ProjectWeekInput{}, nil
	}

	start, err := schedule.ParseDate(raw)
	if err != nil {
		return task.ProjectWeekInput{}, response.NewHTTPError(400, "start must be a YYYY-MM-DD date")
	}
	return task.ProjectWeekInput{WeekStart: start}, nil
}
