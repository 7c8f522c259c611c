package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lawe/pkg/commands/options"
	"tableflip.dev/lawe/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
lawe add client Jane Smith --email jane@example.com
lawe add task prepare deposition --on="2026-09-15"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddClient(cmd)
	addAddTask(cmd)

	topLevel.AddCommand(cmd)
}

func addAddClient(topLevel *cobra.Command) {
	o := &options.AddOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "client NAME",
		Short: "add a client to the roster",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := add.Client{
				Name:  strings.Join(args, " "),
				Email: o.Email,
				Phone: o.Phone,
				Store: demoStore(),
			}
			err := a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddClientArgs(cmd, o)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addAddTask(topLevel *cobra.Command) {
	o := &options.AddOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "task TITLE",
		Short: "add a task to the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := o.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Task{
				Title: strings.Join(args, " "),
				On:    on,
				Store: demoStore(),
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, o)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
