package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/lawe/pkg/commands/options"
	"tableflip.dev/lawe/pkg/runner/get"
	"tableflip.dev/lawe/pkg/store"
)

func demoStore() *store.Store {
	st := store.New("store")
	st.Seed(time.Now())
	return st
}

func addGet(topLevel *cobra.Command) {
	o := &options.GetOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get [collection]",
		Short: "get clients, documents, events, or tasks",
		Example: `
lawe get clients
lawe get documents --sort date
lawe get documents --search motion
`,
		ValidArgs: []string{"clients", "documents", "events", "tasks"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := get.Get{
				Kind:   args[0],
				Search: o.Search,
				Sort:   o.Sort,
				Store:  demoStore(),
			}
			err := g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddGetArgs(cmd, o)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
