package availability

import (
	"reflect"
	"testing"

	"dentora/models"
)

func TestEnumerateSlots_MorningWindow(t *testing.T) {
	period := models.PeriodRule{Start: "09:00", End: "12:00"}
	slots, err := EnumerateSlots(period, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestEnumerateSlots_OffPeriodIgnoresTimes(t *testing.T) {
	// Garbage start/end must not be inspected when the period is off.
	period := models.PeriodRule{Start: "not-a-time", End: "", IsOff: true}
	slots, err := EnumerateSlots(period, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots for an off period, got %v", slots)
	}
}

func TestEnumerateSlots_NonPositiveStep(t *testing.T) {
	period := models.PeriodRule{Start: "09:00", End: "12:00"}
	for _, step := range []int{0, -15} {
		if _, err := EnumerateSlots(period, step); !IsConfigError(err) {
			t.Fatalf("step %d: expected config error, got %v", step, err)
		}
	}
}

func TestEnumerateSlots_InvertedWindow(t *testing.T) {
	period := models.PeriodRule{Start: "14:00", End: "12:00"}
	slots, err := EnumerateSlots(period, 30)
	if err != nil {
		t.Fatalf("inverted window should not error, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestEnumerateSlots_MalformedTimes(t *testing.T) {
	period := models.PeriodRule{Start: "morning", End: "12:00"}
	if _, err := EnumerateSlots(period, 30); !IsConfigError(err) {
		t.Fatalf("expected config error for malformed start, got %v", err)
	}
}

func TestEnumerateSlots_TruncatedLastBoundary(t *testing.T) {
	// 10:00 starts strictly before the 10:10 end, so it is offered even
	// though a full step does not fit; nothing past the end is.
	period := models.PeriodRule{Start: "09:00", End: "10:10"}
	slots, err := EnumerateSlots(period, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "09:30", "10:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestEnumerateSlots_BoundsAndSpacing(t *testing.T) {
	period := models.PeriodRule{Start: "08:15", End: "11:00"}
	step := 20
	slots, err := EnumerateSlots(period, step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, _ := parseClock(period.Start)
	end, _ := parseClock(period.End)
	for i, s := range slots {
		m, err := parseClock(s)
		if err != nil {
			t.Fatalf("slot %q not a clock time: %v", s, err)
		}
		if m < start || m >= end {
			t.Fatalf("slot %s outside [%s, %s)", s, period.Start, period.End)
		}
		if i > 0 {
			prev, _ := parseClock(slots[i-1])
			if m-prev != step {
				t.Fatalf("slots %s and %s are %d minutes apart, want %d", slots[i-1], s, m-prev, step)
			}
		}
	}

	again, _ := EnumerateSlots(period, step)
	if !reflect.DeepEqual(slots, again) {
		t.Fatalf("enumeration not idempotent: %v vs %v", slots, again)
	}
}
