package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Date is a calendar date with day granularity. The zero value is the zero
// time. Dates are normalized to midnight UTC so day arithmetic never crosses
// a DST boundary.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date in local time.
func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, fmt.Errorf("schedule: parse date %q: %w", v, err)
	}
	return DateOf(t), nil
}

// MustParseDate is a test and fixture helper; it panics on malformed input.
func MustParseDate(v string) Date {
	d, err := ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

// DaysBetween returns the signed number of days from d to then.
func (d Date) DaysBetween(then Date) int {
	return int(then.t.Sub(d.t).Hours() / 24)
}

func (d Date) Before(then Date) bool { return d.t.Before(then.t) }
func (d Date) After(then Date) bool  { return d.t.After(then.t) }
func (d Date) Equal(then Date) bool  { return d.t.Equal(then.t) }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Label is the short day-of-month form rendered in the grid header.
func (d Date) Label() string {
	return d.t.Format("02")
}

func (d Date) String() string {
	return d.t.Format(layoutISO)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
