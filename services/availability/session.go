package availability

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"dentora/models"
)

// ErrStaleSelection reports that a fetch completed after the user had
// already moved to a different doctor or date; its result was discarded.
var ErrStaleSelection = errors.New("schedule selection superseded")

// Selection identifies one doctor-date choice within a session. Only the
// newest selection's results may be applied.
type Selection struct {
	token    uint64
	DoctorID string
	Date     string
}

// ScheduleSession serializes a user's availability browsing: every
// doctor/date change supersedes in-flight fetches for the previous choice,
// so a slow stale response can never overwrite the current slot list.
// An optional debounce delays the fetch to absorb rapid re-selection.
type ScheduleSession struct {
	Service  AvailabilityService
	Debounce time.Duration

	seq     uint64
	mu      sync.Mutex
	current *models.DaySchedule
}

// Select registers a new doctor-date choice and invalidates all earlier
// selections. The returned Selection is passed to Load.
func (s *ScheduleSession) Select(doctorID, date string) Selection {
	return Selection{
		token:    atomic.AddUint64(&s.seq, 1),
		DoctorID: doctorID,
		Date:     date,
	}
}

// Load fetches the schedule for sel and applies it if sel is still the
// newest selection. A superseded selection returns ErrStaleSelection,
// before or after the fetch, and leaves the current schedule untouched.
func (s *ScheduleSession) Load(ctx context.Context, sel Selection) (*models.DaySchedule, error) {
	if s.Debounce > 0 {
		timer := time.NewTimer(s.Debounce)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if s.stale(sel) {
		return nil, ErrStaleSelection
	}

	sched, err := s.Service.GetDaySchedule(ctx, sel.DoctorID, sel.Date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(sel) {
		return nil, ErrStaleSelection
	}
	s.current = sched
	return sched, nil
}

// Current returns the most recently applied schedule, or nil before any
// selection has loaded.
func (s *ScheduleSession) Current() *models.DaySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *ScheduleSession) stale(sel Selection) bool {
	return sel.token != atomic.LoadUint64(&s.seq)
}
