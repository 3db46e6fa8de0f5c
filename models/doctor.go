package models

import "time"

// Doctor represents a clinic doctor profile. The scheduling engine only
// reads WeeklyAvailability, SlotDurationMinutes and LeaveRecords; the rest
// is owned by the clinic admin screens.
type Doctor struct {
	ID                  string         `bson:"id" json:"id"`
	Name                string         `bson:"name" json:"name"`
	Specialty           string         `bson:"specialty" json:"specialty"`
	SlotDurationMinutes int            `bson:"slotDurationMinutes" json:"slotDurationMinutes"`
	WeeklyAvailability  WeeklyTemplate `bson:"weeklyAvailability" json:"weeklyAvailability"`
	LeaveRecords        []LeaveRecord  `bson:"leaveRecords,omitempty" json:"leaveRecords,omitempty"`
	FCMToken            string         `bson:"fcmToken,omitempty" json:"-"`
	IsActive            bool           `bson:"isActive" json:"isActive"`
	CreatedAt           time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// WeeklyTemplate holds a doctor's recurring per-weekday open hours,
// one entry per weekday name ("Sunday".."Saturday"). Days absent from the
// template are treated as fully off, never as an error.
type WeeklyTemplate []DayRule

// DayRule is one weekday's configuration: a morning and an evening window.
type DayRule struct {
	Day     string     `bson:"day" json:"day"` // weekday name, e.g. "Monday"
	Morning PeriodRule `bson:"morning" json:"morning"`
	Evening PeriodRule `bson:"evening" json:"evening"`
}

// PeriodRule is a single time-of-day window. When IsOff is true the Start
// and End values are meaningless and must not be parsed.
type PeriodRule struct {
	Start string `bson:"start" json:"start"` // "HH:mm", clinic-local
	End   string `bson:"end" json:"end"`     // "HH:mm", clinic-local
	IsOff bool   `bson:"isOff" json:"isOff"`
}

// Rule returns the DayRule for the given weekday name, or a fully-off rule
// when the template has no entry for it.
func (t WeeklyTemplate) Rule(day string) DayRule {
	for _, r := range t {
		if r.Day == day {
			return r
		}
	}
	return DayRule{
		Day:     day,
		Morning: PeriodRule{IsOff: true},
		Evening: PeriodRule{IsOff: true},
	}
}
