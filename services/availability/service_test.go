package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"dentora/models"
)

type fakeDoctorRepo struct {
	doctor *models.Doctor
	err    error
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) { return f.doctor, f.err }
func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error)          { return nil, nil }
func (f *fakeDoctorRepo) Create(d *models.Doctor) error             { return nil }
func (f *fakeDoctorRepo) UpdateWeeklyTemplate(id string, t models.WeeklyTemplate, step int) error {
	return nil
}
func (f *fakeDoctorRepo) AddLeaveRecord(id string, r models.LeaveRecord) error { return nil }
func (f *fakeDoctorRepo) RemoveLeaveRecord(id, leaveID string) error           { return nil }

type fakeApptRepo struct {
	appts []models.Appointment
	err   error
}

func (f *fakeApptRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return f.appts, f.err
}
func (f *fakeApptRepo) GetByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, errors.New("not found")
}
func (f *fakeApptRepo) Insert(ctx context.Context, a *models.Appointment) error { return nil }
func (f *fakeApptRepo) Cancel(ctx context.Context, id string) error             { return nil }

func testDoctor() *models.Doctor {
	return &models.Doctor{
		ID:                  "doc-1",
		SlotDurationMinutes: 30,
		WeeklyAvailability: models.WeeklyTemplate{
			{
				Day:     "Monday",
				Morning: models.PeriodRule{Start: "09:00", End: "12:00"},
				Evening: models.PeriodRule{IsOff: true},
			},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 7, 20, 8, 0, 0, 0, time.UTC)
}

func TestGetDaySchedule_OpenDay(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Doctors: &fakeDoctorRepo{doctor: testDoctor()},
		Appointments: &fakeApptRepo{appts: []models.Appointment{
			{Time: "09:30", Status: models.AppointmentStatusConfirmed},
		}},
		Now: fixedNow,
	}

	// 2025-07-21 is a Monday.
	sched, err := svc.GetDaySchedule(context.Background(), "doc-1", "2025-07-21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTimes := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if len(sched.Slots) != len(wantTimes) {
		t.Fatalf("expected %d slots, got %+v", len(wantTimes), sched.Slots)
	}
	for i, s := range sched.Slots {
		if s.Time != wantTimes[i] {
			t.Fatalf("slot %d: expected %s, got %s", i, wantTimes[i], s.Time)
		}
	}
	if sched.Slots[1].Status != models.SlotBooked {
		t.Fatalf("09:30 should be booked, got %s", sched.Slots[1].Status)
	}
	if sched.Slots[0].Status != models.SlotFree {
		t.Fatalf("09:00 should be free, got %s", sched.Slots[0].Status)
	}
}

func TestGetDaySchedule_LeaveOverridesTemplate(t *testing.T) {
	doctor := testDoctor()
	doctor.LeaveRecords = []models.LeaveRecord{{Date: "2025-07-21"}}
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: doctor},
		Appointments: &fakeApptRepo{},
		Now:          fixedNow,
	}

	sched, err := svc.GetDaySchedule(context.Background(), "doc-1", "2025-07-21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sched.OnLeave || len(sched.Slots) != 0 {
		t.Fatalf("leave must fully block the day, got %+v", sched)
	}
	if sched.LeaveReason != "On leave on Monday" {
		t.Fatalf("unexpected leave reason %q", sched.LeaveReason)
	}
}

func TestGetDaySchedule_ReadFailuresAreErrors(t *testing.T) {
	// A day whose inputs cannot be fetched must error out, never present
	// itself as an empty-but-bookable day.
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{err: errors.New("mongo down")},
		Appointments: &fakeApptRepo{},
		Now:          fixedNow,
	}
	if _, err := svc.GetDaySchedule(context.Background(), "doc-1", "2025-07-21"); err == nil {
		t.Fatalf("doctor fetch failure must propagate")
	}

	svc = &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: testDoctor()},
		Appointments: &fakeApptRepo{err: errors.New("mongo down")},
		Now:          fixedNow,
	}
	if _, err := svc.GetDaySchedule(context.Background(), "doc-1", "2025-07-21"); err == nil {
		t.Fatalf("bookings fetch failure must propagate")
	}
}

func TestGetDaySchedule_InvalidConfig(t *testing.T) {
	doctor := testDoctor()
	doctor.SlotDurationMinutes = 0
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: doctor},
		Appointments: &fakeApptRepo{},
		Now:          fixedNow,
	}
	if _, err := svc.GetDaySchedule(context.Background(), "doc-1", "2025-07-21"); !IsConfigError(err) {
		t.Fatalf("zero slot duration must be a config error, got %v", err)
	}
}

func TestGetDaySchedule_InvalidDate(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Doctors:      &fakeDoctorRepo{doctor: testDoctor()},
		Appointments: &fakeApptRepo{},
		Now:          fixedNow,
	}
	if _, err := svc.GetDaySchedule(context.Background(), "doc-1", "21/07/2025"); !IsConfigError(err) {
		t.Fatalf("malformed date must be rejected, got %v", err)
	}
}

func TestBookedIndex_RefreshReflectsStore(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Doctors: &fakeDoctorRepo{doctor: testDoctor()},
		Appointments: &fakeApptRepo{appts: []models.Appointment{
			{Time: "9:00", Status: models.AppointmentStatusConfirmed},
			{Time: "10:00", Status: models.AppointmentStatusCancelled},
		}},
		Now: fixedNow,
	}
	booked, err := svc.BookedIndex(context.Background(), "doc-1", "2025-07-21")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !booked["09:00"] || booked["10:00"] || len(booked) != 1 {
		t.Fatalf("unexpected booked index %v", booked)
	}
}
