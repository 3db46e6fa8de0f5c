package availability

import (
	"time"

	"dentora/models"
)

// ComposeDaySchedule joins template resolution, leave, enumeration and the
// booked index into the final per-slot status list for one doctor-date.
//
// Order is significant: morning slots precede evening slots, each in
// chronological order. When date is the same calendar day as now, slots not
// strictly after the current wall-clock time are marked Past (they stay in
// the list so the UI can grey them out). Booked overlays Free; Past
// overrides both. A past date composes without a cutoff; callers reject
// past dates upstream.
func ComposeDaySchedule(
	doctorID string,
	rule models.DayRule,
	leave LeaveStatus,
	booked map[string]bool,
	date string,
	now time.Time,
	stepMinutes int,
) (models.DaySchedule, error) {
	sched := models.DaySchedule{
		DoctorID: doctorID,
		Date:     date,
		Slots:    []models.SlotCandidate{},
	}

	if leave.OnLeave {
		sched.OnLeave = true
		sched.LeaveReason = leave.Reason
		return sched, nil
	}

	morning, err := EnumerateSlots(rule.Morning, stepMinutes)
	if err != nil {
		return models.DaySchedule{}, err
	}
	evening, err := EnumerateSlots(rule.Evening, stepMinutes)
	if err != nil {
		return models.DaySchedule{}, err
	}

	today := date == now.Format(DateLayout)
	nowMin := minutesOfDay(now)

	for _, t := range append(morning, evening...) {
		status := models.SlotFree
		if booked[t] {
			status = models.SlotBooked
		}
		if today {
			// parseClock cannot fail here: t came out of formatClock.
			m, _ := parseClock(t)
			if m <= nowMin {
				status = models.SlotPast
			}
		}
		sched.Slots = append(sched.Slots, models.SlotCandidate{Time: t, Status: status})
	}

	return sched, nil
}
