package get

import (
	"context"
	"fmt"

	"tableflip.dev/lawe/pkg/printers"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/views"
)

// Get lists one of the session collections to the terminal.
type Get struct {
	Kind   string
	Search string
	Sort   string

	Store *store.Store
}

func (g *Get) Do(ctx context.Context) error {
	if g.Store == nil {
		return fmt.Errorf("get: no store")
	}
	snap := g.Store.Snapshot()
	pp := printers.PrettyPrint{}
	fmt.Println("")

	switch g.Kind {
	case "clients":
		pp.Title("Clients")
		pp.Clients(views.CountPerClient(snap))
	case "documents":
		key, err := views.ParseSortKey(g.Sort)
		if err != nil {
			return err
		}
		docs := views.FilterDocuments(snap, g.Search, true)
		docs = views.SortDocuments(snap, docs, key)
		pp.Title("Documents")
		pp.Documents(snap, docs)
	case "events":
		pp.Title("Events")
		pp.Events(snap)
	case "tasks":
		pp.Title("Tasks")
		pp.Tasks(snap.Tasks)
	default:
		return fmt.Errorf("get: unknown collection %q", g.Kind)
	}
	return nil
}
