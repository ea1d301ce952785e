package timeline

import "tableflip.dev/gantt/pkg/schedule"

// ColumnIndex maps a date to its 1-based grid column. Dates outside the
// window clamp to the first column or to one past the last, so a schedule
// edge that has scrolled off still anchors at the visible boundary instead
// of disappearing. A schedule entirely outside the window therefore renders
// as a degenerate 1-column marker at the edge, which keeps it grabbable for
// drags that pull it back into view.
func ColumnIndex(w Window, date schedule.Date) int {
	if date.Before(w.First) {
		return 1
	}
	if date.After(w.Last) {
		return w.First.DaysBetween(w.Last) + 2
	}
	return w.First.DaysBetween(date) + 1
}

// ColumnSpan returns the half-open [start, end) column range for a schedule
// interval: the end edge gets one extra column so the bar covers its last
// day.
func ColumnSpan(w Window, start, end schedule.Date) (int, int) {
	return ColumnIndex(w, start), ColumnIndex(w, end) + 1
}
