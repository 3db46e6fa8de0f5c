package handlers

import (
	"net/http"

	"dentora/services/scheduling"
	"dentora/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the reservation write path and portal reads.
type AppointmentHandler struct {
	Service scheduling.SchedulingService
}

func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// Reserve handles POST /api/appointments.
// 201 on success; 409 with the refreshed booked-slot set when the write
// lost the race, at which point the client must clear its selected time and
// re-render from the refreshed list.
func (h *AppointmentHandler) Reserve(c *gin.Context) {
	var req scheduling.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	outcome, err := h.Service.Reserve(c.Request.Context(), req)
	if err != nil {
		if scheduling.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid reservation", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "reservation failed", err.Error())
		return
	}

	if !outcome.Succeeded {
		c.JSON(http.StatusConflict, outcome)
		return
	}
	c.JSON(http.StatusCreated, outcome)
}

// Cancel handles POST /api/appointments/:id/cancel.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "cancel failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

// PatientAppointments handles GET /api/appointments/patient/:patientID.
func (h *AppointmentHandler) PatientAppointments(c *gin.Context) {
	patientID := c.Param("patientID")
	appts, err := h.Service.PatientAppointments(c.Request.Context(), patientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
