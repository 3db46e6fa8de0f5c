package availability

import "dentora/models"

// BuildBookedIndex turns a doctor's appointments for one date into the set
// of occupied "HH:mm" start times. Cancelled appointments do not occupy a
// slot. Every stored time is normalized here so that downstream comparison
// against enumerated candidates is plain string equality; a record whose
// time cannot be normalized is dropped rather than poisoning the index.
func BuildBookedIndex(appts []models.Appointment) map[string]bool {
	booked := make(map[string]bool, len(appts))
	for _, a := range appts {
		if a.Status == models.AppointmentStatusCancelled {
			continue
		}
		if t := NormalizeClockTime(a.Time); t != "" {
			booked[t] = true
		}
	}
	return booked
}
