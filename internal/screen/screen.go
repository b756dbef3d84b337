package screen

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/orienta/internal/logging"
	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/store"
	"github.com/abhisek/orienta/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Env is shared by every screen of one run. The repos are nil when the
// host runs without storage; screens then keep everything in memory.
type Env struct {
	Session   *session.Session
	Favorites store.FavoritesRepo
	Results   store.ResultRepo
	Log       *slog.Logger

	// Last is the most recent record, finalized in this run or loaded
	// from storage at startup.
	Last *result.Record

	// ExportDir enables JSON export from the result screen when set.
	ExportDir string
}

// Latest returns Last, falling back to the record the session was
// started with.
func (e *Env) Latest() *result.Record {
	if e.Last != nil {
		return e.Last
	}
	return e.Session.Previous()
}

// SaveFavorites persists the session favorites. It is a no-op without
// storage.
func (e *Env) SaveFavorites(ctx context.Context) error {
	if e.Favorites == nil {
		return nil
	}
	return e.Favorites.Save(ctx, e.Session.Favorites())
}

// Logger returns the env logger, or a discard logger when none is set.
func (e *Env) Logger() *slog.Logger {
	if e == nil || e.Log == nil {
		return logging.Discard()
	}
	return e.Log
}
