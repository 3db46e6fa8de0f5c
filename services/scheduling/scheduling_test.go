package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentRepo "dentora/database/repository/appointment"
	"dentora/models"
)

// memAppointmentRepo is an in-memory AppointmentRepository enforcing the
// same uniqueness rule as the Mongo partial index.
type memAppointmentRepo struct {
	appts     []models.Appointment
	insertErr error
}

func (m *memAppointmentRepo) key(a models.Appointment) string {
	return a.DoctorID + "|" + a.Date + "|" + a.Time
}

func (m *memAppointmentRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Date == date && a.Status != models.AppointmentStatusCancelled {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range m.appts {
		if m.appts[i].ID == id {
			return &m.appts[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, existing := range m.appts {
		if existing.Active && m.key(existing) == m.key(*appt) {
			return appointmentRepo.ErrSlotTaken
		}
	}
	m.appts = append(m.appts, *appt)
	return nil
}

func (m *memAppointmentRepo) Cancel(ctx context.Context, id string) error {
	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts[i].Status = models.AppointmentStatusCancelled
			m.appts[i].Active = false
			return nil
		}
	}
	return errors.New("not found")
}

// recordingAvailability tracks conflict-path refreshes.
type recordingAvailability struct {
	repo          *memAppointmentRepo
	refreshes     int
	invalidations int
}

func (r *recordingAvailability) GetDaySchedule(ctx context.Context, doctorID, date string) (*models.DaySchedule, error) {
	return nil, errors.New("not used in these tests")
}

func (r *recordingAvailability) BookedIndex(ctx context.Context, doctorID, date string) (map[string]bool, error) {
	r.refreshes++
	appts, _ := r.repo.GetByDoctorAndDate(ctx, doctorID, date)
	booked := make(map[string]bool, len(appts))
	for _, a := range appts {
		booked[a.Time] = true
	}
	return booked, nil
}

func (r *recordingAvailability) InvalidateCache(ctx context.Context, doctorID, date string) {
	r.invalidations++
}

func newTestService(repo *memAppointmentRepo) (*DefaultSchedulingService, *recordingAvailability) {
	avail := &recordingAvailability{repo: repo}
	svc := &DefaultSchedulingService{
		Appointments: repo,
		Availability: avail,
		Now: func() time.Time {
			return time.Date(2025, 7, 21, 8, 0, 0, 0, time.UTC)
		},
	}
	return svc, avail
}

func reserveReq(timeOfDay string) ReserveRequest {
	return ReserveRequest{
		DoctorID:  "doc-1",
		PatientID: "pat-1",
		Date:      "2025-07-22",
		Time:      timeOfDay,
	}
}

func TestReserve_Success(t *testing.T) {
	repo := &memAppointmentRepo{}
	svc, avail := newTestService(repo)

	outcome, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Succeeded || outcome.Appointment == nil {
		t.Fatalf("expected successful outcome, got %+v", outcome)
	}
	if outcome.Appointment.Time != "09:00" || !outcome.Appointment.Active {
		t.Fatalf("appointment not populated correctly: %+v", outcome.Appointment)
	}
	if avail.invalidations != 1 {
		t.Fatalf("expected one cache invalidation, got %d", avail.invalidations)
	}
	if avail.refreshes != 0 {
		t.Fatalf("success path must not refresh booked slots, got %d", avail.refreshes)
	}
}

func TestReserve_ConflictRace(t *testing.T) {
	// Two near-simultaneous reservations for 09:00: the second loses and
	// gets the refreshed booked set containing the winner's slot.
	repo := &memAppointmentRepo{}
	svc, avail := newTestService(repo)

	first, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err != nil || !first.Succeeded {
		t.Fatalf("first reservation should win: %+v, %v", first, err)
	}

	second, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err != nil {
		t.Fatalf("conflict is an outcome, not an error: %v", err)
	}
	if second.Succeeded {
		t.Fatalf("second reservation must lose the race")
	}
	if !second.RefreshedBookedSlots["09:00"] {
		t.Fatalf("refreshed set must contain the contested slot, got %v", second.RefreshedBookedSlots)
	}
	if avail.refreshes != 1 {
		t.Fatalf("conflict must refresh the booked index exactly once, got %d", avail.refreshes)
	}

	// Re-submitting the same time without a fresh pick is rejected again.
	third, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err != nil || third.Succeeded {
		t.Fatalf("re-submission of a taken slot must conflict again: %+v, %v", third, err)
	}
}

func TestReserve_GenericFailureNoRefresh(t *testing.T) {
	repo := &memAppointmentRepo{insertErr: errors.New("network down")}
	svc, avail := newTestService(repo)

	outcome, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err == nil || outcome != nil {
		t.Fatalf("generic failure must surface as an error, got %+v, %v", outcome, err)
	}
	if avail.refreshes != 0 {
		t.Fatalf("generic failure must not refresh booked slots")
	}
}

func TestReserve_Validation(t *testing.T) {
	repo := &memAppointmentRepo{}
	svc, _ := newTestService(repo)

	cases := []ReserveRequest{
		{DoctorID: "doc-1", PatientID: "pat-1", Date: "22-07-2025", Time: "09:00"},
		{DoctorID: "doc-1", PatientID: "pat-1", Date: "2025-07-22", Time: "late morning"},
		{DoctorID: "doc-1", PatientID: "pat-1", Date: "2025-07-20", Time: "09:00"}, // past date
		{DoctorID: "doc-1", PatientID: "pat-1", Date: "2025-07-21", Time: "07:30"}, // earlier today
	}
	for i, req := range cases {
		if _, err := svc.Reserve(context.Background(), req); !IsValidationError(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestReserve_TimeNormalizedBeforeWrite(t *testing.T) {
	repo := &memAppointmentRepo{}
	svc, _ := newTestService(repo)

	first, err := svc.Reserve(context.Background(), reserveReq("9:00"))
	if err != nil || !first.Succeeded {
		t.Fatalf("unexpected: %+v, %v", first, err)
	}
	if first.Appointment.Time != "09:00" {
		t.Fatalf("time must be stored normalized, got %q", first.Appointment.Time)
	}

	// The padded form collides with the shorthand form.
	second, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err != nil || second.Succeeded {
		t.Fatalf("normalization must make formats collide: %+v, %v", second, err)
	}
}

func TestCancel_FreesSlot(t *testing.T) {
	repo := &memAppointmentRepo{}
	svc, avail := newTestService(repo)

	outcome, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err != nil || !outcome.Succeeded {
		t.Fatalf("unexpected: %+v, %v", outcome, err)
	}

	if err := svc.Cancel(context.Background(), outcome.Appointment.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if avail.invalidations != 2 {
		t.Fatalf("cancel must invalidate the availability cache, got %d invalidations", avail.invalidations)
	}

	retry, err := svc.Reserve(context.Background(), reserveReq("09:00"))
	if err != nil || !retry.Succeeded {
		t.Fatalf("cancelled slot must be reclaimable: %+v, %v", retry, err)
	}
}
