package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: base.Wrap80("Schedule timelines on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addServe(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addHistory(topLevel)
	addRemove(topLevel)
	addVersion(topLevel)
}
