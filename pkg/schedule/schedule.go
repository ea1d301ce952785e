package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is a time-ranged item on the timeline. StartDate and EndDate are
// inclusive calendar dates with StartDate <= EndDate; same-day schedules are
// allowed. The ID is assigned at creation and never changes.
type Schedule struct {
	ID                  string               `json:"id"`
	StartDate           Date                 `json:"startDate"`
	EndDate             Date                 `json:"endDate"`
	ModificationRecords []ModificationRecord `json:"modificationRecords"`
}

// New creates a schedule with a fresh id and the creation record seeded at
// the given time.
func New(start, end Date, at time.Time) *Schedule {
	s := &Schedule{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   end,
	}
	s.AppendRecord(DescInitialCreation, at)
	return s
}

// Shift moves both edges of the interval by the given number of days.
func (s *Schedule) Shift(days int) {
	s.StartDate = s.StartDate.AddDays(days)
	s.EndDate = s.EndDate.AddDays(days)
}

// Days is the inclusive length of the interval in days.
func (s *Schedule) Days() int {
	return s.StartDate.DaysBetween(s.EndDate) + 1
}
