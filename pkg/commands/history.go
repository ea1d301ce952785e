package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gantt/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "show a schedule's modification records",
		Example: `
gantt history 24d65ae6-e3af-4b1e-a86a-ebea7102e2b7
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one schedule id expected")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := history.History{ID: args[0], Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
