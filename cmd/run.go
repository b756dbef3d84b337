package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/orienta/internal/app"
	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/store"
)

// runApp opens the store, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	log, closeLog, err := newLogger(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	exportDir, _ := cmd.Flags().GetString("export")
	env, err := newEnv(cmd.Context(), cat, st, log)
	if err != nil {
		return err
	}
	env.ExportDir = exportDir

	return app.Run(env)
}

// newEnv restores the favorites and last result from st and builds a
// session around them.
func newEnv(ctx context.Context, cat *catalog.Catalog, st *store.Store, log *slog.Logger) (*screen.Env, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	favRepo, resRepo := st.FavoritesRepo(), st.ResultRepo()

	opts := []session.Option{session.WithLogger(log)}
	favs, saved, err := favRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	if saved {
		opts = append(opts, session.WithFavorites(favs))
	}

	last, err := resRepo.Latest(ctx)
	if err != nil {
		log.Warn("last result unavailable", "err", err)
	} else if last != nil {
		opts = append(opts, session.WithPrevious(last))
	}

	return &screen.Env{
		Session:   session.New(cat, opts...),
		Favorites: favRepo,
		Results:   resRepo,
		Log:       log,
	}, nil
}
