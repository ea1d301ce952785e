package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gantt/pkg/app"
	"tableflip.dev/gantt/pkg/schedule"
)

type Add struct {
	Start  string
	End    string
	ShowID bool

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Start == "" {
		return errors.New("start date required")
	}
	if n.End == "" {
		// Click-to-create uses the same date for both edges; the CLI
		// mirrors that for a bare --start.
		n.End = n.Start
	}

	start, err := schedule.ParseDate(n.Start)
	if err != nil {
		return err
	}
	end, err := schedule.ParseDate(n.End)
	if err != nil {
		return err
	}

	created, err := n.Service.Create(ctx, start, end)
	if err != nil {
		return err
	}

	fmt.Println("")
	schedule.PrettyPrint(n.ShowID, created)
	return nil
}
