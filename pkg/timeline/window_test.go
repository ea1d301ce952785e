package timeline

import (
	"testing"
	"time"

	"tableflip.dev/gantt/pkg/schedule"
)

func date(v string) schedule.Date { return schedule.MustParseDate(v) }

func TestNewWindowBounds(t *testing.T) {
	w := NewWindow(date("2025-12-14"), 0)
	if w.First.String() != "2025-11-30" {
		t.Fatalf("first: got %s", w.First)
	}
	if w.Last.String() != "2025-12-28" {
		t.Fatalf("last: got %s", w.Last)
	}
}

func TestNewWindowOffsetShiftsAnchor(t *testing.T) {
	base := NewWindow(date("2025-12-14"), 0)
	fwd := NewWindow(date("2025-12-14"), 3)
	back := NewWindow(date("2025-12-14"), -3)

	if got := base.First.DaysBetween(fwd.First); got != 3 {
		t.Fatalf("positive offset should shift first by 3, got %d", got)
	}
	if got := base.Last.DaysBetween(back.Last); got != -3 {
		t.Fatalf("negative offset should shift last by -3, got %d", got)
	}
}

func TestDaysLengthAndConsecutive(t *testing.T) {
	w := NewWindow(date("2025-12-14"), 0)
	days := w.Days()

	if len(days) != Size {
		t.Fatalf("expected %d days, got %d", Size, len(days))
	}
	if len(days) != 29 {
		t.Fatalf("default window must be 29 days, got %d", len(days))
	}
	if !days[0].Date.Equal(w.First) || !days[len(days)-1].Date.Equal(w.Last) {
		t.Fatal("day sequence must cover first..last")
	}
	for i := 1; i < len(days); i++ {
		if days[i-1].Date.DaysBetween(days[i].Date) != 1 {
			t.Fatalf("days not consecutive at index %d", i)
		}
	}
}

func TestDaysWeekendFlags(t *testing.T) {
	w := NewWindow(date("2025-12-14"), 0)
	for _, d := range w.Days() {
		wd := d.Date.Weekday()
		expected := wd == time.Saturday || wd == time.Sunday
		if d.IsWeekend != expected {
			t.Fatalf("%s: expected weekend=%v", d.Key, expected)
		}
		if d.IsHoliday {
			t.Fatalf("%s: holiday flag must stay false", d.Key)
		}
	}
}

func TestDaysLabels(t *testing.T) {
	w := NewWindow(date("2025-12-14"), 0)
	days := w.Days()
	if days[0].Label != "30" || days[0].Key != "2025-11-30" {
		t.Fatalf("unexpected first day: %q %q", days[0].Key, days[0].Label)
	}
}

func TestContains(t *testing.T) {
	w := NewWindow(date("2025-12-14"), 0)
	if !w.Contains(date("2025-11-30")) || !w.Contains(date("2025-12-28")) {
		t.Fatal("window edges are inclusive")
	}
	if w.Contains(date("2025-11-29")) || w.Contains(date("2025-12-29")) {
		t.Fatal("dates outside the window must not be contained")
	}
}
