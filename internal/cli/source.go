package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/tacogips/altadder/internal/app"
)

// newSession creates a page session backed by the configured loader.
func newSession() *app.Session {
	return app.NewSession(
		newLoader(currentConfig(), nil),
		app.WithRegistry(trustRegistry),
		app.WithClipboard(clipboardWriter),
	)
}

// loadSource loads raw into a fresh session and returns it displaying the
// source.
func loadSource(ctx context.Context, raw string) (*app.Session, *app.View, error) {
	sess := newSession()
	v, err := sess.Load(ctx, raw)
	if err != nil {
		return nil, nil, err
	}
	return sess, v, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
