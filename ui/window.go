package ui

import (
	"time"

	"classic-snake/game"
	"classic-snake/theme"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the game window and drives g until the player quits or closes
// the window. Each frame applies at most one of: a key intent or a tick.
func Run(g *game.Game, t theme.Theme) {
	rl.InitWindow(WindowWidth, WindowHeight, WindowTitle)
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc must not bypass the game-over menu
	rl.SetTargetFPS(60)

	renderer := NewRenderer(t)
	stepper := game.NewStepper(g.Interval, time.Now())

	for !rl.WindowShouldClose() {
		if key := PollKey(); key != game.KeyNone {
			if g.Apply(g.HandleKey(key)) {
				return
			}
		} else if stepper.Ready(time.Now()) {
			g.Tick()
		}

		renderer.Draw(g.Snapshot(), g.Stats())
	}
}
