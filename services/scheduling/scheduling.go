package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "dentora/database/repository/appointment"
	"dentora/models"
	"dentora/services/availability"
	"dentora/services/notification"
	"dentora/services/tasks"
	"dentora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSchedulingService is the production scheduling implementation.
// Reminders and Notifier are optional; when nil the corresponding side
// effects are skipped.
type DefaultSchedulingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Availability availability.AvailabilityService
	Notifier     notification.NotificationService
	Reminders    *tasks.ReminderScheduler
	// Now supplies clinic-local wall-clock time; injected for testability.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulingService) Reserve(ctx context.Context, req ReserveRequest) (*models.ReserveOutcome, error) {
	logger := utils.GetLogger()

	if _, err := time.ParseInLocation(availability.DateLayout, req.Date, s.now().Location()); err != nil {
		return nil, NewValidationError("invalid date %q, want YYYY-MM-DD", req.Date)
	}
	slotTime := availability.NormalizeClockTime(req.Time)
	if slotTime == "" {
		return nil, NewValidationError("invalid time %q, want HH:mm", req.Time)
	}

	// Booking into the past is not a supported flow; callers prevent it
	// upstream and this guard backs them up.
	now := s.now()
	today := now.Format(availability.DateLayout)
	if req.Date < today {
		return nil, NewValidationError("date %s is in the past", req.Date)
	}
	if req.Date == today && slotTime <= now.Format("15:04") {
		return nil, NewValidationError("time %s has already passed", slotTime)
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        slotTime,
		Status:      models.AppointmentStatusConfirmed,
		Active:      true,
		Notes:       req.Notes,
	}

	if err := s.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return s.recoverConflict(ctx, req.DoctorID, req.Date, slotTime)
		}
		// Any other failure: state assumed unchanged, no refresh.
		return nil, fmt.Errorf("reservation failed: %w", err)
	}

	s.Availability.InvalidateCache(ctx, req.DoctorID, req.Date)
	s.afterReserve(ctx, appt, req.PatientFCMToken)

	logger.Info("appointment reserved",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))

	return &models.ReserveOutcome{Succeeded: true, Appointment: appt}, nil
}

// recoverConflict handles a lost booking race: the slot list the user chose
// from is stale, so refresh the booked index and hand it back. The caller
// must clear the selected time; re-submitting the same slot without a fresh
// fetch is rejected by the same unique index again.
func (s *DefaultSchedulingService) recoverConflict(ctx context.Context, doctorID, date, slotTime string) (*models.ReserveOutcome, error) {
	utils.GetLogger().Warn("booking conflict, refreshing booked slots",
		zap.String("doctorID", doctorID),
		zap.String("date", date),
		zap.String("time", slotTime))

	s.Availability.InvalidateCache(ctx, doctorID, date)
	refreshed, err := s.Availability.BookedIndex(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("slot %s was taken and refresh failed: %w", slotTime, err)
	}
	return &models.ReserveOutcome{
		Succeeded:            false,
		RefreshedBookedSlots: refreshed,
	}, nil
}

// afterReserve runs the best-effort side effects of a successful write.
// Their failures are logged, never surfaced: the booking already exists and
// the caller must see it as such.
func (s *DefaultSchedulingService) afterReserve(ctx context.Context, appt *models.Appointment, patientToken string) {
	logger := utils.GetLogger()

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(*appt, patientToken); err != nil {
			logger.Warn("failed to schedule reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	if s.Notifier != nil && patientToken != "" {
		body := fmt.Sprintf("Your appointment on %s at %s is confirmed.", appt.Date, appt.Time)
		data := map[string]string{"appointmentId": appt.ID}
		if err := s.Notifier.SendPush(ctx, patientToken, "Appointment confirmed", body, data); err != nil {
			logger.Warn("failed to send confirmation push", zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
}

func (s *DefaultSchedulingService) Cancel(ctx context.Context, appointmentID string) error {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	if appt.Status == models.AppointmentStatusCancelled {
		return nil
	}
	if err := s.Appointments.Cancel(ctx, appointmentID); err != nil {
		return err
	}
	s.Availability.InvalidateCache(ctx, appt.DoctorID, appt.Date)

	utils.GetLogger().Info("appointment cancelled",
		zap.String("appointmentID", appointmentID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date))
	return nil
}

func (s *DefaultSchedulingService) PatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Appointments.GetByPatient(ctx, patientID)
}
