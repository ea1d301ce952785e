package schedule

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-11")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d.String() != "2025-12-11" {
		t.Fatalf("expected 2025-12-11, got %s", d)
	}
	if _, err := ParseDate("12/11/2025"); err == nil {
		t.Fatal("expected error for non-ISO input")
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustParseDate("2025-01-10")

	if got := d.AddDays(5); got.String() != "2025-01-15" {
		t.Fatalf("add 5 days: got %s", got)
	}
	if got := d.AddDays(-11); got.String() != "2024-12-30" {
		t.Fatalf("add -11 days across year boundary: got %s", got)
	}
	if got := d.DaysBetween(MustParseDate("2025-01-15")); got != 5 {
		t.Fatalf("days between: got %d", got)
	}
	if got := d.DaysBetween(MustParseDate("2025-01-05")); got != -5 {
		t.Fatalf("negative days between: got %d", got)
	}
	if got := d.DaysBetween(d); got != 0 {
		t.Fatalf("same-day days between: got %d", got)
	}
}

func TestDateComparisons(t *testing.T) {
	a := MustParseDate("2025-03-01")
	b := MustParseDate("2025-03-02")

	if !a.Before(b) || b.Before(a) {
		t.Fatal("Before inconsistent")
	}
	if !b.After(a) || a.After(b) {
		t.Fatal("After inconsistent")
	}
	if !a.Equal(MustParseDate("2025-03-01")) {
		t.Fatal("Equal inconsistent")
	}
}

func TestDateWeekend(t *testing.T) {
	// 2025-12-13 is a Saturday, 2025-12-14 a Sunday.
	for _, tc := range []struct {
		date    string
		weekend bool
	}{
		{"2025-12-12", false},
		{"2025-12-13", true},
		{"2025-12-14", true},
		{"2025-12-15", false},
	} {
		if got := MustParseDate(tc.date).IsWeekend(); got != tc.weekend {
			t.Fatalf("%s: expected weekend=%v, got %v", tc.date, tc.weekend, got)
		}
	}
}

func TestDateOfIgnoresClockTime(t *testing.T) {
	d := DateOf(time.Date(2025, time.June, 3, 23, 59, 59, 0, time.UTC))
	if d.String() != "2025-06-03" {
		t.Fatalf("expected 2025-06-03, got %s", d)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2025-12-11")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2025-12-11"` {
		t.Fatalf("unexpected wire form: %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip mismatch: %s", back)
	}
}
