package appointmentRepo

import (
	"context"

	"dentora/models"
)

// AppointmentRepository defines methods for appointment data access.
// Insert is guarded by a partial unique index on (doctor_id, date, time)
// over active appointments; a lost race surfaces as ErrSlotTaken.
type AppointmentRepository interface {
	// GetByDoctorAndDate returns all non-cancelled appointments for a doctor
	// on the given date.
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	// GetByPatient returns a patient's appointments, newest date first.
	GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// GetByID retrieves a single appointment.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// Insert writes a new appointment. Returns ErrSlotTaken when another
	// active appointment already holds the same (doctor, date, time).
	Insert(ctx context.Context, appt *models.Appointment) error
	// Cancel marks an appointment cancelled and clears its active flag,
	// freeing the slot for re-booking.
	Cancel(ctx context.Context, id string) error
}
