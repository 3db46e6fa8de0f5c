package models

// LeaveRecord marks a doctor as unavailable for a single date or an
// inclusive date range. Two storage forms exist: Date set (single day) or
// LeaveStartDate/LeaveEndDate set (range). IsActive is tri-state: only an
// explicit false makes the record inert.
type LeaveRecord struct {
	ID             string `bson:"id,omitempty" json:"id,omitempty"`
	Date           string `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"
	Day            string `bson:"day,omitempty" json:"day,omitempty"`   // weekday name, informational
	LeaveStartDate string `bson:"leaveStartDate,omitempty" json:"leaveStartDate,omitempty"`
	LeaveEndDate   string `bson:"leaveEndDate,omitempty" json:"leaveEndDate,omitempty"`
	Reason         string `bson:"reason,omitempty" json:"reason,omitempty"`
	IsActive       *bool  `bson:"isActive,omitempty" json:"isActive,omitempty"`
}

// Inert reports whether the record should be skipped during resolution.
func (r LeaveRecord) Inert() bool {
	return r.IsActive != nil && !*r.IsActive
}
