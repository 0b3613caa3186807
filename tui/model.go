// Package tui plays the game in a terminal through Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"classic-snake/game"
	"classic-snake/game/types"
	"classic-snake/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickMsg advances the simulation by one step.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var keyBindings = map[string]game.Key{
	"up":    game.KeyUp,
	"down":  game.KeyDown,
	"left":  game.KeyLeft,
	"right": game.KeyRight,
	"r":     game.KeyR,
	"R":     game.KeyR,
	"q":     game.KeyQ,
	"Q":     game.KeyQ,
}

// MapKey translates a Bubble Tea key string into a game key.
func MapKey(s string) game.Key {
	return keyBindings[s]
}

type styles struct {
	board lipgloss.Style
	empty lipgloss.Style
	snake lipgloss.Style
	head  lipgloss.Style
	food  lipgloss.Style
	text  lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	bg := lipgloss.Color(theme.Hex(t.Background))
	return styles{
		board: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Hex(theme.Darker(t.Text, 150)))),
		empty: lipgloss.NewStyle().Background(bg),
		snake: lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(theme.Hex(theme.Darker(t.Snake, 150)))),
		head:  lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(theme.Hex(t.Snake))),
		food:  lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(theme.Hex(t.Food))),
		text:  lipgloss.NewStyle().Bold(true),
	}
}

type Model struct {
	game     *game.Game
	interval time.Duration
	styles   styles
	quitting bool
}

func NewModel(g *game.Game, t theme.Theme) Model {
	return Model{
		game:     g,
		interval: g.Interval,
		styles:   newStyles(t),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.game.Apply(m.game.HandleKey(MapKey(msg.String()))) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case TickMsg:
		m.game.Tick()
		return m, tickCmd(m.interval)
	}
	return m, nil
}

const (
	cellSnake = "██"
	cellHead  = "▓▓"
	cellFood  = "●●"
	cellEmpty = "  "
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.game.Snapshot()
	stats := m.game.Stats()

	var b strings.Builder
	b.WriteString(m.styles.text.Render(fmt.Sprintf("Score: %d   Best: %d", s.Score, max(stats.HighScore, s.Score))))
	b.WriteByte('\n')

	if s.GameOver {
		msg := fmt.Sprintf("Game Over!\nScore: %d\n%s collision\n\nPress 'R' to Retry\nPress 'Q' to Quit",
			s.Score, s.Cause)
		box := lipgloss.Place(types.Columns*2, types.Rows, lipgloss.Center, lipgloss.Center,
			m.styles.text.Render(msg))
		b.WriteString(m.styles.board.Render(box))
		return b.String()
	}

	b.WriteString(m.styles.board.Render(m.renderBoard(s)))
	b.WriteString("\narrows: move   ctrl+c: quit\n")
	return b.String()
}

func (m Model) renderBoard(s game.Snapshot) string {
	cells := make([][]string, types.Rows)
	for y := range cells {
		cells[y] = make([]string, types.Columns)
		for x := range cells[y] {
			cells[y][x] = m.styles.empty.Render(cellEmpty)
		}
	}
	put := func(p types.Point, v string) {
		x, y := p.X/types.CellSize, p.Y/types.CellSize
		if x >= 0 && x < types.Columns && y >= 0 && y < types.Rows {
			cells[y][x] = v
		}
	}

	put(s.Food, m.styles.food.Render(cellFood))
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Snake[i], m.styles.head.Render(cellHead))
		} else {
			put(s.Snake[i], m.styles.snake.Render(cellSnake))
		}
	}

	rows := make([]string, types.Rows)
	for y := range cells {
		rows[y] = strings.Join(cells[y], "")
	}
	return strings.Join(rows, "\n")
}

// Run starts the terminal program and blocks until the player quits.
func Run(g *game.Game, t theme.Theme) error {
	p := tea.NewProgram(NewModel(g, t), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}
	return nil
}
