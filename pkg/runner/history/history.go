package history

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gantt/pkg/app"
	"tableflip.dev/gantt/pkg/schedule"
)

type History struct {
	ID string

	Service *app.Service
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show history, no service")
	}
	if n.ID == "" {
		return errors.New("schedule id required")
	}

	s, err := n.Service.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	fmt.Println("")
	fmt.Printf("%s .. %s\n", s.StartDate, s.EndDate)
	schedule.PrettyPrintHistory(s)
	return nil
}
