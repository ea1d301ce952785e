package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gantt/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	addr := ":8080"
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the schedule HTTP API",
		Example: `
gantt serve
gantt serve --addr :9090
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := serve.Serve{Addr: addr, Service: svc}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address.")

	topLevel.AddCommand(cmd)
}
