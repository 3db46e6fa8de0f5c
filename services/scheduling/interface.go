package scheduling

import (
	"context"

	"dentora/models"
)

// ReserveRequest is the input for a reservation attempt.
type ReserveRequest struct {
	DoctorID        string `json:"doctorId" binding:"required"`
	PatientID       string `json:"patientId" binding:"required"`
	PatientName     string `json:"patientName"`
	Date            string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time            string `json:"time" binding:"required"` // "HH:mm"
	Notes           string `json:"notes"`
	PatientFCMToken string `json:"patientFcmToken"`
}

// SchedulingService owns the reservation write path: a single optimistic
// attempt, with conflict recovery when the backend uniqueness constraint
// rejects the slot.
type SchedulingService interface {
	// Reserve attempts to book the slot. A lost race returns a non-error
	// outcome with Succeeded=false and the refreshed booked-slot set; the
	// caller must clear the selected time and force a re-selection. The
	// write is never retried with the same time.
	Reserve(ctx context.Context, req ReserveRequest) (*models.ReserveOutcome, error)
	// Cancel marks an appointment cancelled, freeing its slot.
	Cancel(ctx context.Context, appointmentID string) error
	// PatientAppointments lists a patient's appointments for the portal.
	PatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
}
