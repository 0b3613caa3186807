package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (Model, *game.Game) {
	t.Helper()
	g := game.NewGame(game.Config{
		Seed:     1,
		Interval: 50 * time.Millisecond,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return NewModel(g, theme.Dark), g
}

func press(m tea.Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestMapKey(t *testing.T) {
	assert.Equal(t, game.KeyUp, MapKey(tea.KeyMsg{Type: tea.KeyUp}.String()))
	assert.Equal(t, game.KeyDown, MapKey(tea.KeyMsg{Type: tea.KeyDown}.String()))
	assert.Equal(t, game.KeyLeft, MapKey(tea.KeyMsg{Type: tea.KeyLeft}.String()))
	assert.Equal(t, game.KeyRight, MapKey(tea.KeyMsg{Type: tea.KeyRight}.String()))
	assert.Equal(t, game.KeyR, MapKey("r"))
	assert.Equal(t, game.KeyQ, MapKey("Q"))
	assert.Equal(t, game.KeyNone, MapKey("x"))
}

func TestUpdateTickAdvancesGame(t *testing.T) {
	m, g := newModel(t)
	require.NotNil(t, m.Init())

	next, cmd := m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.IsType(t, Model{}, next)
	assert.Equal(t, types.Point{X: 120, Y: 100}, g.Snapshot().Head())
}

func TestUpdateArrowTurnsSnake(t *testing.T) {
	m, g := newModel(t)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Nil(t, cmd)
	assert.Equal(t, types.Up, g.Pending())

	// reversal of the last move is ignored
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, types.Up, g.Pending())

	m.Update(TickMsg(time.Now()))
	assert.Equal(t, types.Point{X: 100, Y: 80}, g.Snapshot().Head())
}

func TestQuitOnlyAfterGameOver(t *testing.T) {
	m, g := newModel(t)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)

	// drive the snake into the top wall
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < types.Rows && !g.IsGameOver(); i++ {
		m.Update(TickMsg(time.Now()))
	}
	require.True(t, g.IsGameOver())
	assert.Contains(t, m.View(), "Game Over!")

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestRetryAfterGameOver(t *testing.T) {
	m, g := newModel(t)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < types.Rows && !g.IsGameOver(); i++ {
		m.Update(TickMsg(time.Now()))
	}
	require.True(t, g.IsGameOver())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.False(t, g.IsGameOver())
	assert.Equal(t, game.InitialBody, g.Snapshot().Snake)
	assert.Contains(t, m.View(), "Score: 0")
	assert.Equal(t, 1, g.Stats().RoundsPlayed)
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m, _ := newModel(t)
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
}
