package handlers

import (
	"net/http"
	"time"

	doctorRepo "dentora/database/repository/doctor"
	"dentora/models"
	"dentora/services/availability"
	"dentora/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DoctorHandler serves the doctor schedule-admin surface: weekly template,
// slot duration and leave records. Full doctor CRUD lives elsewhere.
type DoctorHandler struct {
	Repo doctorRepo.DoctorRepository
}

func NewDoctorHandler(repo doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Repo: repo}
}

// GetSchedule handles GET /api/doctors/:id/schedule.
func (h *DoctorHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")
	doctor, err := h.Repo.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "doctor not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"doctorId":            doctor.ID,
		"slotDurationMinutes": doctor.SlotDurationMinutes,
		"weeklyAvailability":  doctor.WeeklyAvailability,
		"leaveRecords":        doctor.LeaveRecords,
	})
}

// UpdateTemplateRequest is the payload for replacing a weekly template.
type UpdateTemplateRequest struct {
	SlotDurationMinutes int                   `json:"slotDurationMinutes" binding:"required"`
	WeeklyAvailability  models.WeeklyTemplate `json:"weeklyAvailability" binding:"required"`
}

// UpdateTemplate handles PUT /api/doctors/:id/schedule/template.
// Misconfiguration fails fast with 422 instead of being defaulted away.
func (h *DoctorHandler) UpdateTemplate(c *gin.Context) {
	id := c.Param("id")
	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := validateTemplate(req.WeeklyAvailability, req.SlotDurationMinutes); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "schedule misconfigured", err.Error())
		return
	}

	if err := h.Repo.UpdateWeeklyTemplate(id, req.WeeklyAvailability, req.SlotDurationMinutes); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update template", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

// validateTemplate runs every configured period through the enumerator so
// bad templates are rejected at write time, not discovered during lookup.
func validateTemplate(template models.WeeklyTemplate, stepMinutes int) error {
	if stepMinutes <= 0 {
		return availability.NewConfigError("slot duration must be positive, got %d", stepMinutes)
	}
	validDays := map[string]bool{
		"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
		"Thursday": true, "Friday": true, "Saturday": true,
	}
	for _, rule := range template {
		if !validDays[rule.Day] {
			return availability.NewConfigError("unknown weekday %q", rule.Day)
		}
		if _, err := availability.EnumerateSlots(rule.Morning, stepMinutes); err != nil {
			return err
		}
		if _, err := availability.EnumerateSlots(rule.Evening, stepMinutes); err != nil {
			return err
		}
	}
	return nil
}

// AddLeave handles POST /api/doctors/:id/schedule/leave.
func (h *DoctorHandler) AddLeave(c *gin.Context) {
	id := c.Param("id")
	var record models.LeaveRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	single := availability.NormalizeDate(record.Date)
	start := availability.NormalizeDate(record.LeaveStartDate)
	end := availability.NormalizeDate(record.LeaveEndDate)
	if single == "" && (start == "" || end == "") {
		utils.JSONError(c, http.StatusBadRequest, "invalid leave record",
			"need either date or leaveStartDate+leaveEndDate in YYYY-MM-DD form")
		return
	}
	if single != "" {
		if day, err := time.Parse(availability.DateLayout, single); err == nil {
			record.Day = day.Weekday().String()
		}
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	if err := h.Repo.AddLeaveRecord(id, record); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add leave record", err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

// RemoveLeave handles DELETE /api/doctors/:id/schedule/leave/:leaveID.
func (h *DoctorHandler) RemoveLeave(c *gin.Context) {
	id := c.Param("id")
	leaveID := c.Param("leaveID")
	if err := h.Repo.RemoveLeaveRecord(id, leaveID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove leave record", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": leaveID})
}
