package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gantt/pkg/commands/options"
	"tableflip.dev/gantt/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a schedule",
		Example: `
gantt add --start 2025-12-11 --end 2025-12-16
gantt add --start 2025-12-11
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if ro.Start == "" {
				return errors.New("--start is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Add{
				Start:   ro.Start,
				End:     ro.End,
				ShowID:  io.ShowID,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddRangeArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
