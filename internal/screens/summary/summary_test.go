package summary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/result"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/store"
)

func newTestEnv(t *testing.T) (*screen.Env, *result.Record) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "orienta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	sess := session.New(catalog.Default(), session.WithFavorites(nil))
	sess.StartTest()
	for i := range catalog.Default().NumQuestions() {
		require.NoError(t, sess.RecordAnswer(i, 0))
	}
	rec, err := sess.Finalize()
	require.NoError(t, err)
	return &screen.Env{Session: sess, Favorites: st.FavoritesRepo()}, rec
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r}
}

func TestViewShowsReport(t *testing.T) {
	env, rec := newTestEnv(t)
	view := ansi.Strip(New(env, rec).View(100, 50))

	assert.Contains(t, view, "Perfil de Orientación Vocacional")
	assert.Contains(t, view, "Ingeniería Civil")
	assert.Contains(t, view, "solo del Test")
}

func TestOtherProfessionCycles(t *testing.T) {
	env, rec := newTestEnv(t)
	s := New(env, rec)

	s.Update(key('o'))
	assert.Equal(t, "Electricidad/Electrónica", s.shown)
	s.Update(key('o'))
	assert.Equal(t, "Mecánica", s.shown)
	assert.Contains(t, ansi.Strip(s.View(100, 50)), "Otra opción en Oficios e Ingeniería: Mecánica")
}

func TestToggleFavoritePersists(t *testing.T) {
	env, rec := newTestEnv(t)
	s := New(env, rec)

	s.Update(key('f'))
	assert.Equal(t, []string{"Ingeniería Civil"}, env.Session.Favorites())

	names, saved, err := env.Favorites.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, []string{"Ingeniería Civil"}, names)

	s.Update(key('f'))
	assert.Empty(t, env.Session.Favorites())
}

func TestExport(t *testing.T) {
	env, rec := newTestEnv(t)
	env.ExportDir = t.TempDir()
	s := New(env, rec)
	s.now = func() time.Time { return time.Date(2026, 5, 2, 17, 4, 5, 0, time.Local) }

	s.Update(key('e'))

	path := filepath.Join(env.ExportDir, "resultado_vocacional_2026-05-02_17-04-05.json")
	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Contains(t, s.notice, path)
}

func TestExportDisabledWithoutDir(t *testing.T) {
	env, rec := newTestEnv(t)
	s := New(env, rec)

	s.Update(key('e'))
	assert.Empty(t, s.notice)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "e", h.Key)
	}
}

func TestEnterReturnsHome(t *testing.T) {
	env, rec := newTestEnv(t)
	_, cmd := New(env, rec).Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopToRootMsg{}, cmd())
}
