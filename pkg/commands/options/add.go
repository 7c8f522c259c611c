package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO = "2006-01-02"
)

// AddOptions
type AddOptions struct {
	Email    string
	Phone    string
	OnString string
}

func AddClientArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Email, "email", "",
		"Email address for the client.")
	cmd.Flags().StringVar(&o.Phone, "phone", "",
		"Phone number for the client.")
}

func AddTaskArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a due date for the task, example: --on="2026-09-15".`)
}

func (o *AddOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
