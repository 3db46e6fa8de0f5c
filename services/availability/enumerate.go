package availability

import "dentora/models"

// EnumerateSlots produces the ordered candidate start times for one period
// window: start, start+step, ... while the current value is strictly before
// the window end. A slot starting exactly at the end is never offered since
// no service time remains past it.
//
// Pure: identical inputs always yield the identical sequence. All times are
// clinic-local wall clock.
func EnumerateSlots(period models.PeriodRule, stepMinutes int) ([]string, error) {
	if stepMinutes <= 0 {
		return nil, NewConfigError("slot duration must be positive, got %d", stepMinutes)
	}
	if period.IsOff {
		return nil, nil
	}

	start, err := parseClock(period.Start)
	if err != nil {
		return nil, NewConfigError("period start: %v", err)
	}
	end, err := parseClock(period.End)
	if err != nil {
		return nil, NewConfigError("period end: %v", err)
	}

	// An inverted window yields no slots; it is not a config error.
	var slots []string
	for cur := start; cur < end; cur += stepMinutes {
		slots = append(slots, formatClock(cur))
	}
	return slots, nil
}
