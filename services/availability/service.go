package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appointmentRepo "dentora/database/repository/appointment"
	doctorRepo "dentora/database/repository/doctor"
	"dentora/models"
	"dentora/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityService computes composed day schedules for doctors.
type AvailabilityService interface {
	// GetDaySchedule returns the composed slot list for a doctor on a date.
	// Any read-side failure is an error: the caller must never present an
	// empty-but-bookable day when availability could not be computed.
	GetDaySchedule(ctx context.Context, doctorID, date string) (*models.DaySchedule, error)
	// BookedIndex returns the currently occupied "HH:mm" times for a
	// doctor-date. Used by the conflict recovery path.
	BookedIndex(ctx context.Context, doctorID, date string) (map[string]bool, error)
	// InvalidateCache drops any cached snapshot for a doctor-date.
	InvalidateCache(ctx context.Context, doctorID, date string)
}

// DefaultAvailabilityService is the production implementation: profile and
// bookings are fetched concurrently, composed with the pure pipeline, and
// the result is cached briefly in Redis.
type DefaultAvailabilityService struct {
	Doctors      doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
	CacheTTL     time.Duration
	// Now supplies clinic-local wall-clock time; injected for testability.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) cacheKey(doctorID, date string) string {
	return fmt.Sprintf("avail:%s:%s", doctorID, date)
}

func (s *DefaultAvailabilityService) GetDaySchedule(ctx context.Context, doctorID, date string) (*models.DaySchedule, error) {
	logger := utils.GetLogger()

	day, err := time.ParseInLocation(DateLayout, date, s.now().Location())
	if err != nil {
		return nil, NewConfigError("invalid date %q, want YYYY-MM-DD", date)
	}

	if cached := s.cachedSchedule(ctx, doctorID, date); cached != nil {
		return cached, nil
	}

	// The profile and bookings reads are independent; issue them together.
	type doctorResult struct {
		doctor *models.Doctor
		err    error
	}
	type apptResult struct {
		appts []models.Appointment
		err   error
	}
	doctorCh := make(chan doctorResult, 1)
	apptCh := make(chan apptResult, 1)

	go func() {
		d, err := s.Doctors.GetByID(doctorID)
		doctorCh <- doctorResult{doctor: d, err: err}
	}()
	go func() {
		a, err := s.Appointments.GetByDoctorAndDate(ctx, doctorID, date)
		apptCh <- apptResult{appts: a, err: err}
	}()

	dres := <-doctorCh
	ares := <-apptCh
	if dres.err != nil {
		return nil, fmt.Errorf("cannot compute availability: %w", dres.err)
	}
	if ares.err != nil {
		return nil, fmt.Errorf("cannot compute availability: %w", ares.err)
	}

	doctor := dres.doctor
	rule := ResolveDayRule(doctor.WeeklyAvailability, day)
	leave := ResolveLeave(doctor.LeaveRecords, day)
	booked := BuildBookedIndex(ares.appts)

	sched, err := ComposeDaySchedule(doctorID, rule, leave, booked, date, s.now(), doctor.SlotDurationMinutes)
	if err != nil {
		return nil, err
	}

	s.storeSchedule(ctx, &sched)
	logger.Debug("composed day schedule",
		zap.String("doctorID", doctorID),
		zap.String("date", date),
		zap.Int("slots", len(sched.Slots)),
		zap.Bool("onLeave", sched.OnLeave))
	return &sched, nil
}

func (s *DefaultAvailabilityService) BookedIndex(ctx context.Context, doctorID, date string) (map[string]bool, error) {
	appts, err := s.Appointments.GetByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("cannot refresh booked slots: %w", err)
	}
	return BuildBookedIndex(appts), nil
}

func (s *DefaultAvailabilityService) InvalidateCache(ctx context.Context, doctorID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, s.cacheKey(doctorID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
	}
}

func (s *DefaultAvailabilityService) cachedSchedule(ctx context.Context, doctorID, date string) *models.DaySchedule {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return nil
	}
	raw, err := s.Cache.Get(ctx, s.cacheKey(doctorID, date)).Result()
	if err != nil {
		return nil
	}
	var sched models.DaySchedule
	if err := json.Unmarshal([]byte(raw), &sched); err != nil {
		return nil
	}
	return &sched
}

func (s *DefaultAvailabilityService) storeSchedule(ctx context.Context, sched *models.DaySchedule) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(sched)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, s.cacheKey(sched.DoctorID, sched.Date), raw, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability snapshot", zap.Error(err))
	}
}
