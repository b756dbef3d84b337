package quiz

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/orienta/internal/catalog"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/screens/summary"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/store"
)

func newTestEnv(t *testing.T) *screen.Env {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "orienta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	sess := session.New(catalog.Default(), session.WithClock(func() time.Time {
		return time.Date(2026, 5, 2, 17, 4, 5, 0, time.Local)
	}))
	return &screen.Env{Session: sess, Results: st.ResultRepo(), Favorites: st.FavoritesRepo()}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r}
}

func TestNewStartsTest(t *testing.T) {
	env := newTestEnv(t)
	New(env)
	assert.Equal(t, session.StateInTest, env.Session.State())
	assert.Equal(t, 0, env.Session.QuestionIndex())
}

func TestNewResumesTestInProgress(t *testing.T) {
	env := newTestEnv(t)
	q := New(env)
	q.Update(key('2'))
	q.Update(key('2'))

	New(env)
	assert.Equal(t, 2, env.Session.QuestionIndex())
}

func TestArrowsAndEnterAnswer(t *testing.T) {
	env := newTestEnv(t)
	q := New(env)

	q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, 1, env.Session.QuestionIndex())
	assert.Equal(t, 1, env.Session.Tally()[catalog.AreaSalud])
}

func TestOutOfRangeDigitIgnored(t *testing.T) {
	env := newTestEnv(t)
	q := New(env)

	_, cmd := q.Update(key('9'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, env.Session.QuestionIndex())
}

func TestFinishSavesAndShowsResult(t *testing.T) {
	env := newTestEnv(t)
	q := New(env)

	var cmd tea.Cmd
	for range catalog.Default().NumQuestions() {
		_, cmd = q.Update(key('1'))
	}
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	assert.IsType(t, &summary.SummaryScreen{}, msg.Screen)

	require.NotNil(t, env.Last)
	assert.Equal(t, catalog.AreaOficios, env.Last.Area)
	assert.Equal(t, "Ingeniería Civil", env.Last.Profession)

	saved, err := env.Results.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, env.Last.Blended, saved.Blended)
}

func TestViewShowsProgress(t *testing.T) {
	env := newTestEnv(t)
	q := New(env)
	q.Update(key('1'))

	view := ansi.Strip(q.View(100, 40))
	assert.Contains(t, view, "Pregunta 2 de 6")
	assert.Contains(t, view, "Cómo vas")
}
