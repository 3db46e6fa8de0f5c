package doctorRepo

import "dentora/models"

// DoctorRepository defines methods for doctor profile data access. The
// scheduling engine only reads; the write methods serve the clinic-admin
// schedule surface (template and leave lifecycle).
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetAll retrieves all active doctors.
	GetAll() ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// UpdateWeeklyTemplate replaces the doctor's recurring availability
	// template and slot duration.
	UpdateWeeklyTemplate(id string, template models.WeeklyTemplate, slotDurationMinutes int) error
	// AddLeaveRecord appends a leave record to the doctor's profile.
	AddLeaveRecord(id string, record models.LeaveRecord) error
	// RemoveLeaveRecord removes a leave record by its ID.
	RemoveLeaveRecord(id string, leaveID string) error
}
