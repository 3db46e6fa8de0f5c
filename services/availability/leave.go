package availability

import (
	"fmt"
	"time"

	"dentora/models"
)

// LeaveStatus is the outcome of resolving a doctor's leave records against
// one date. OnLeave days are fully blocked before any slots are enumerated.
type LeaveStatus struct {
	OnLeave bool
	Reason  string
}

// ResolveLeave walks the leave records in storage order and returns the
// first match for the given date. Records with an explicit isActive=false
// are skipped. Single-day records are checked before the range form within
// each record; matching stops at the first hit, records are never merged.
//
// A doctor with no leave records resolves to not-on-leave.
func ResolveLeave(records []models.LeaveRecord, date time.Time) LeaveStatus {
	target := date.Format(DateLayout)
	dayName := date.Weekday().String()

	for _, rec := range records {
		if rec.Inert() {
			continue
		}

		if single := NormalizeDate(rec.Date); single != "" {
			if single == target {
				reason := rec.Reason
				if reason == "" {
					reason = fmt.Sprintf("On leave on %s", dayName)
				}
				return LeaveStatus{OnLeave: true, Reason: reason}
			}
			continue
		}

		start := NormalizeDate(rec.LeaveStartDate)
		end := NormalizeDate(rec.LeaveEndDate)
		if start == "" || end == "" {
			// Malformed record: neither form is usable, skip it.
			continue
		}
		// ISO dates compare lexicographically in calendar order. Bounds
		// are inclusive; an inverted range matches nothing.
		if target >= start && target <= end {
			reason := rec.Reason
			if reason == "" {
				reason = fmt.Sprintf("On leave from %s to %s", start, end)
			}
			return LeaveStatus{OnLeave: true, Reason: reason}
		}
	}

	return LeaveStatus{}
}
