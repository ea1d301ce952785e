package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gantt/pkg/app"
	"tableflip.dev/gantt/pkg/schedule"
	"tableflip.dev/gantt/pkg/timeline"
)

type Get struct {
	Start  string
	End    string
	ShowID bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	rangeStart, rangeEnd, err := n.queryRange()
	if err != nil {
		return err
	}

	all, err := n.Service.List(ctx, rangeStart, rangeEnd)
	if err != nil {
		return err
	}

	fmt.Println("")
	fmt.Printf("%s .. %s\n", rangeStart, rangeEnd.AddDays(-1))
	schedule.PrettyPrint(n.ShowID, all...)
	return nil
}

// queryRange defaults to the grid window around today. The stored query is
// half-open, so the end bound sits one day past the last visible day.
func (n *Get) queryRange() (schedule.Date, schedule.Date, error) {
	w := timeline.NewWindow(schedule.Today(), 0)
	rangeStart, rangeEnd := w.First, w.Last.AddDays(1)

	if n.Start != "" {
		parsed, err := schedule.ParseDate(n.Start)
		if err != nil {
			return schedule.Date{}, schedule.Date{}, err
		}
		rangeStart = parsed
	}
	if n.End != "" {
		parsed, err := schedule.ParseDate(n.End)
		if err != nil {
			return schedule.Date{}, schedule.Date{}, err
		}
		rangeEnd = parsed
	}
	if !rangeStart.Before(rangeEnd) {
		return schedule.Date{}, schedule.Date{}, errors.New("start must be before end")
	}
	return rangeStart, rangeEnd, nil
}
