package geofence

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"

	"georeminder/internal/task"
	"georeminder/pkg/response"
)

type geofenceEventReq struct {
	TaskID    string     `json:"task_id" binding:"required"`
	EventTime *time.Time `json:"event_time"`
}

type geofenceEventResp struct {
	Fired bool `json:"fired"`
}

type locationReportReq struct {
	Latitude   float64    `json:"latitude"  binding:"min=-90,max=90"`
	Longitude  float64    `json:"longitude" binding:"min=-180,max=180"`
	RecordedAt *time.Time `json:"recorded_at"`
}

type locationReportResp struct {
	Entered []string `json:"entered"`
	Fired   []string `json:"fired"`
}

// HandleGeofenceEvent godoc
// @Summary     Deliver a geofence enter event
// @Description Runs the activation decision for one enter-transition event.
// @Description Unknown task ids are acknowledged without effect, so the
// @Description location platform never retries stale regions.
// @Tags        Geofence
// @Accept      json
// @Produce     json
// @Param       X-Webhook-Secret header string false "Shared webhook secret"
// @Param       body body geofenceEventReq true "Event data"
// @Success     200 {object} geofenceEventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /webhook/geofence [POST]
func (h *handler) HandleGeofenceEvent(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.checkSecret(c) {
		return
	}

	var req geofenceEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	input := task.GeofenceEnterInput{TaskID: req.TaskID}
	if req.EventTime != nil {
		input.At = *req.EventTime
	}

	out, err := h.uc.HandleGeofenceEnter(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleGeofenceEnter: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, geofenceEventResp{Fired: out.Fired})
}

// HandleLocationReport godoc
// @Summary     Report a raw location
// @Description Hit-tests the location against all monitored regions and runs
// @Description the activation decision for every region entered by it.
// @Tags        Geofence
// @Accept      json
// @Produce     json
// @Param       body body locationReportReq true "Location data"
// @Success     200 {object} locationReportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/location [POST]
func (h *handler) HandleLocationReport(c *gin.Context) {
	ctx := c.Request.Context()

	var req locationReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	at := time.Time{}
	if req.RecordedAt != nil {
		at = *req.RecordedAt
	}

	entered := h.observer.Observe(req.Latitude, req.Longitude)

	resp := locationReportResp{Entered: entered}
	for _, id := range entered {
		out, err := h.uc.HandleGeofenceEnter(ctx, task.GeofenceEnterInput{TaskID: id, At: at})
		if err != nil {
			h.l.Errorf(ctx, "uc.HandleGeofenceEnter (%s): %v", id, err)
			continue
		}
		if out.Fired {
			resp.Fired = append(resp.Fired, id)
		}
	}

	response.OK(c, resp)
}

func (h *handler) checkSecret(c *gin.Context) bool {
	if h.secret == "" {
		return true
	}
	got := c.GetHeader("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		response.Unauthorized(c)
		c.Abort()
		return false
	}
	return true
}
