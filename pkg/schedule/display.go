package schedule

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrettyPrint writes schedules as an aligned table, one row per schedule,
// optionally prefixed with ids.
func PrettyPrint(showID bool, schedules ...*Schedule) {
	if len(schedules) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	if showID {
		tbl.AddRow("ID", "START", "END", "DAYS", "CHANGES")
	} else {
		tbl.AddRow("START", "END", "DAYS", "CHANGES")
	}

	for _, s := range schedules {
		if showID {
			tbl.AddRow(s.ID, s.StartDate.String(), s.EndDate.String(), s.Days(), len(s.ModificationRecords))
		} else {
			tbl.AddRow(s.StartDate.String(), s.EndDate.String(), s.Days(), len(s.ModificationRecords))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PrettyPrintHistory writes one schedule's modification records in commit
// order.
func PrettyPrintHistory(s *Schedule) {
	if s == nil {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range s.ModificationRecords {
		tbl.AddRow(r.ModificationDate.String(), r.ChangeDescription)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
