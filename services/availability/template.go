package availability

import (
	"time"

	"dentora/models"
)

// ResolveDayRule returns the template rule governing the given date's
// weekday. Sparse templates are tolerated: a missing weekday entry resolves
// to a fully-off day rather than an error.
func ResolveDayRule(template models.WeeklyTemplate, date time.Time) models.DayRule {
	return template.Rule(date.Weekday().String())
}
