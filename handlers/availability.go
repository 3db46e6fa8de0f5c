package handlers

import (
	"errors"
	"net/http"
	"time"

	"dentora/services/availability"
	"dentora/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityHandler serves composed day schedules.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetDaySchedule handles GET /api/availability/:doctorID?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetDaySchedule(c *gin.Context) {
	doctorID := c.Param("doctorID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter date=YYYY-MM-DD is required")
		return
	}
	if _, err := time.ParseInLocation(availability.DateLayout, date, time.Local); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "want YYYY-MM-DD")
		return
	}
	if date < time.Now().Format(availability.DateLayout) {
		utils.JSONError(c, http.StatusBadRequest, "date is in the past", "availability is only computed for today and future dates")
		return
	}

	sched, err := h.Service.GetDaySchedule(c.Request.Context(), doctorID, date)
	if err != nil {
		switch {
		case availability.IsConfigError(err):
			utils.JSONError(c, http.StatusUnprocessableEntity, "doctor schedule misconfigured", err.Error())
		case errors.Is(err, mongo.ErrNoDocuments):
			utils.JSONError(c, http.StatusNotFound, "doctor not found", doctorID)
		default:
			// Read-side failure: the day must show as not bookable, never
			// as silently empty.
			utils.JSONError(c, http.StatusBadGateway, "availability unavailable", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, sched)
}
