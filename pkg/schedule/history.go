package schedule

import (
	"fmt"
	"time"
)

// Change descriptions recorded in a schedule's history. Move records carry
// the day delta and are formatted with DescribeMove.
const (
	DescInitialCreation = "Initial creation"
	DescUpdated         = "Schedule updated"
)

// ModificationRecord is one entry of a schedule's append-only history. The
// first record of every schedule is the creation record; every committed
// mutation afterwards appends exactly one more. Records are never removed
// or reordered.
type ModificationRecord struct {
	ChangeDescription string    `json:"changeDescription"`
	ModificationDate  Timestamp `json:"modificationDate"`
}

// DescribeMove renders the history description for a move of n days.
func DescribeMove(days int) string {
	return fmt.Sprintf("Moved by %d days", days)
}

// AppendRecord adds a history record describing a committed change.
func (s *Schedule) AppendRecord(desc string, at time.Time) {
	s.ModificationRecords = append(s.ModificationRecords, ModificationRecord{
		ChangeDescription: desc,
		ModificationDate:  Timestamp{Time: at},
	})
}

// EnsureHistorySeed backfills the creation record for schedules read from
// storage written before history existed.
func (s *Schedule) EnsureHistorySeed() {
	if len(s.ModificationRecords) > 0 {
		return
	}
	s.AppendRecord(DescInitialCreation, time.Now())
}
