package ui

import (
	"classic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	raylib int32
	key    game.Key
}{
	{rl.KeyUp, game.KeyUp},
	{rl.KeyDown, game.KeyDown},
	{rl.KeyLeft, game.KeyLeft},
	{rl.KeyRight, game.KeyRight},
	{rl.KeyR, game.KeyR},
	{rl.KeyQ, game.KeyQ},
}

// PollKey returns the first bound key pressed since the last frame, or
// game.KeyNone.
func PollKey() game.Key {
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.raylib) {
			return b.key
		}
	}
	return game.KeyNone
}
