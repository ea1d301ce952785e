package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gantt/pkg/app"
)

type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if n.ID == "" {
		return errors.New("schedule id required")
	}
	if err := n.Service.Delete(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
