package models

// SlotStatus classifies a candidate slot for display.
type SlotStatus string

const (
	SlotFree   SlotStatus = "free"
	SlotBooked SlotStatus = "booked"
	SlotPast   SlotStatus = "past"
)

// SlotCandidate is one bookable start time with its display status.
// Never persisted; recomputed on every doctor/date change.
type SlotCandidate struct {
	Time   string     `json:"time"` // "HH:mm"
	Status SlotStatus `json:"status"`
}

// DaySchedule is the composed availability for one doctor on one date.
// An empty Slots list with OnLeave false means the day has no configured
// hours, which the UI must present differently from leave.
type DaySchedule struct {
	DoctorID    string          `json:"doctorId"`
	Date        string          `json:"date"`
	OnLeave     bool            `json:"onLeave"`
	LeaveReason string          `json:"leaveReason,omitempty"`
	Slots       []SlotCandidate `json:"slots"`
}

// ReserveOutcome reports the result of a reservation attempt. When a write
// loses the race, Succeeded is false and RefreshedBookedSlots carries the
// authoritative occupied times so the caller can force a re-selection.
type ReserveOutcome struct {
	Succeeded            bool            `json:"succeeded"`
	Appointment          *Appointment    `json:"appointment,omitempty"`
	RefreshedBookedSlots map[string]bool `json:"refreshedBookedSlots,omitempty"`
}
