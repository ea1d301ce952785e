package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gantt/pkg/commands/options"
	"tableflip.dev/gantt/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "get schedules overlapping a date range",
		Long: "Get the schedules whose interval overlaps the query range.\n\n" +
			"Without flags the range is the grid window around today. The end\n" +
			"bound is exclusive.",
		Example: `
gantt get
gantt get --start 2025-12-10 --end 2025-12-13
gantt get --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Get{
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
