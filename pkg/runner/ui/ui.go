package ui

import (
	"context"
	"time"

	"tableflip.dev/lawe/pkg/auth"
	"tableflip.dev/lawe/pkg/config"
	"tableflip.dev/lawe/pkg/entity"
	"tableflip.dev/lawe/pkg/notify"
	"tableflip.dev/lawe/pkg/session"
	"tableflip.dev/lawe/pkg/store"
	"tableflip.dev/lawe/pkg/tui/app"
)

// UI wires the session pieces together and runs the Bubble Tea program.
type UI struct {
	Config *config.Config
}

func (u *UI) Do(ctx context.Context) error {
	cfg := u.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	authenticator := auth.NewStatic(
		entity.User{ID: 1, Name: cfg.Account.Name, Email: cfg.Account.Email},
		cfg.Account.Email,
		cfg.Account.Password,
	)

	st := store.New("store")
	st.Seed(time.Now())

	sess := session.New(authenticator, st)
	sess.UpdateSettings(cfg.Settings)

	return app.Run(sess, st, notify.Discard{})
}
