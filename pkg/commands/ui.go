package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lawe/pkg/config"
	"tableflip.dev/lawe/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
lawe ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
