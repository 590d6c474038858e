package handlers

import (
	"net/http"
	"time"

	"meetslot/models"
	"meetslot/services/meeting"
	"meetslot/services/tasks"
	"meetslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// MeetingHandler serves the slot-finding endpoints.
type MeetingHandler struct {
	Service meeting.MeetingService
	Queue   TaskEnqueuer
	Logger  *zap.Logger
}

func NewMeetingHandler(svc meeting.MeetingService, queue TaskEnqueuer, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{Service: svc, Queue: queue, Logger: logger}
}

// QueryRequest is the body of an ad hoc query.
type QueryRequest struct {
	Events  []models.EventRecord       `json:"events"`
	Request models.MeetingRequestInput `json:"request"`
}

// QueryResponse lists the ranges found.
type QueryResponse struct {
	Date   string                     `json:"date,omitempty"`
	Ranges []models.AvailableInterval `json:"ranges"`
	Cached bool                       `json:"cached,omitempty"`
}

// QueryHandler resolves a request against the events in the body.
func (h *MeetingHandler) QueryHandler(c *gin.Context) {
	var body QueryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	events, err := models.RecordsToEvents(body.Events)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event", err.Error())
		return
	}

	ranges := h.Service.Query(events, body.Request.ToRequest())
	c.JSON(http.StatusOK, QueryResponse{Ranges: models.ToAvailableIntervals(ranges)})
}

// QueryForDateHandler resolves a request against the stored events of :date.
func (h *MeetingHandler) QueryForDateHandler(c *gin.Context) {
	date := c.Param("date")

	var body models.MeetingRequestInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	res, err := h.Service.QueryForDate(c.Request.Context(), date, body.ToRequest())
	if err != nil {
		h.Logger.Error("Failed to query meeting slots", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, statusFor(err), "Failed to query meeting slots", err.Error())
		return
	}

	c.JSON(http.StatusOK, QueryResponse{
		Date:   res.Date,
		Ranges: models.ToAvailableIntervals(res.Ranges),
		Cached: res.Cached,
	})
}

// PrecomputeHandler enqueues a background query for :date. An optional
// "processAt" query parameter (RFC 3339) defers it.
func (h *MeetingHandler) PrecomputeHandler(c *gin.Context) {
	date := c.Param("date")
	if err := meeting.ValidateDate(date); err != nil {
		utils.JSONError(c, statusFor(err), "Invalid date", err.Error())
		return
	}

	var body models.MeetingRequestInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	var processAt time.Time
	if raw := c.Query("processAt"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid processAt", err.Error())
			return
		}
		processAt = t
	}

	task, opts, err := tasks.NewPrecomputeTask(tasks.PrecomputePayload{Date: date, Request: body}, processAt)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build task", err.Error())
		return
	}
	info, err := h.Queue.Enqueue(task, opts...)
	if err != nil {
		h.Logger.Error("Failed to enqueue precompute task", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Failed to enqueue task", err.Error())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"taskId": info.ID, "queue": info.Queue})
}
