package handlers

import (
	"net/http"

	"meetslot/models"
	"meetslot/services/calendar"
	"meetslot/services/meeting"
	"meetslot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxICSBytes bounds uploaded calendars.
const maxICSBytes = 5 << 20

// CalendarHandler manages the stored events of a day.
type CalendarHandler struct {
	Service meeting.MeetingService
	Logger  *zap.Logger
}

func NewCalendarHandler(svc meeting.MeetingService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Service: svc, Logger: logger}
}

// AddEventsRequest is the payload for storing events.
type AddEventsRequest struct {
	Events []models.EventRecord `json:"events" binding:"required"`
}

func (h *CalendarHandler) AddEventsHandler(c *gin.Context) {
	date := c.Param("date")

	var req AddEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	ids, err := h.Service.AddEvents(c.Request.Context(), date, req.Events)
	if err != nil {
		h.Logger.Error("Failed to store events", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, statusFor(err), "Failed to store events", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ids": ids})
}

func (h *CalendarHandler) ListEventsHandler(c *gin.Context) {
	date := c.Param("date")

	events, err := h.Service.ListEvents(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, statusFor(err), "Failed to fetch events", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "events": events})
}

func (h *CalendarHandler) DeleteEventHandler(c *gin.Context) {
	date := c.Param("date")
	eventID := c.Param("eventID")

	if err := h.Service.DeleteEvent(c.Request.Context(), date, eventID); err != nil {
		utils.JSONError(c, statusFor(err), "Failed to delete event", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// ImportICSHandler stores the VEVENTs of an iCalendar body that fall on :date.
func (h *CalendarHandler) ImportICSHandler(c *gin.Context) {
	date := c.Param("date")

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxICSBytes)
	records, stats, err := calendar.ParseICS(body, date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid calendar", err.Error())
		return
	}

	var ids []string
	if len(records) > 0 {
		ids, err = h.Service.AddEvents(c.Request.Context(), date, records)
		if err != nil {
			h.Logger.Error("Failed to store imported events", zap.String("date", date), zap.Error(err))
			utils.JSONError(c, statusFor(err), "Failed to store events", err.Error())
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"ids": ids, "stats": stats})
}
