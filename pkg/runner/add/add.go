package add

import (
	"context"
	"time"

	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/printers"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/views"
)

// Client adds a client and prints the updated roster.
type Client struct {
	Name  string
	Email string
	Phone string

	Store *store.Store
}

func (a *Client) Do(ctx context.Context) error {
	if _, err := a.Store.AddClient(a.Name, a.Email, a.Phone); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Clients")
	pp.Clients(views.CountPerClient(a.Store.Snapshot()))
	return nil
}

// Task adds a task and prints the updated list.
type Task struct {
	Title string
	On    *time.Time

	Store *store.Store
}

func (a *Task) Do(ctx context.Context) error {
	var due entity.Timestamp
	if a.On != nil {
		due = entity.At(*a.On)
	}
	if _, err := a.Store.AddTask(a.Title, due); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Tasks")
	pp.Tasks(a.Store.Snapshot().Tasks)
	return nil
}
