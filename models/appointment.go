package models

import "time"

// Appointment statuses. Only non-cancelled appointments occupy a slot.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment represents a reserved slot for a patient with a doctor.
// The Active flag mirrors "status != cancelled" so the partial unique index
// on (doctor_id, date, time) can exclude cancelled records; it must be kept
// in sync with Status on every write.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	DoctorID    string    `bson:"doctor_id" json:"doctorId"`
	PatientID   string    `bson:"patient_id" json:"patientId"`
	PatientName string    `bson:"patient_name,omitempty" json:"patientName,omitempty"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string    `bson:"time" json:"time"` // "HH:mm"
	Status      string    `bson:"status" json:"status"`
	Active      bool      `bson:"active" json:"-"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReminderPayload is the asynq task body for appointment reminders.
// Target selects the recipient: "patient" uses the FCMToken captured at
// booking time, "doctor" resolves the doctor's registered device.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Target        string `json:"target"`
	FCMToken      string `json:"fcmToken,omitempty"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}
