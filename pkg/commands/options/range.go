// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// RangeOptions captures the date-range flags shared by query commands.
type RangeOptions struct {
	Start string
	End   string
}

// AddRangeArgs wires the range flags on the provided command.
func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVarP(&o.Start, "start", "s", "",
		"Range start date (YYYY-MM-DD).")
	cmd.Flags().StringVarP(&o.End, "end", "e", "",
		"Range end date (YYYY-MM-DD), exclusive for queries.")
}
