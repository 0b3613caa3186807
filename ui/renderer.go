package ui

import (
	"fmt"
	"image/color"
	"strings"

	"classic-snake/game"
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/theme"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around the board
	borderWidth   = 5
	shadowOffset  = 2
	darkerFactor  = 150

	fontSize         = 20
	gameOverFontSize = 30
	lineHeight       = 36

	WindowWidth  = types.BoardWidth + borderPadding*2
	WindowHeight = types.BoardHeight + borderPadding*2
	WindowTitle  = "Snake Game"
)

type Renderer struct {
	theme        theme.Theme
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(t theme.Theme) *Renderer {
	r := &Renderer{
		theme:    t,
		cellSize: types.CellSize,
		offsetX:  borderPadding,
		offsetY:  borderPadding,
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw paints one frame from a snapshot.
func (r *Renderer) Draw(s game.Snapshot, stats manager.Summary) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(r.theme.Background)
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(borderWidth/2, borderWidth/2, float32(r.screenWidth-borderWidth), float32(r.screenHeight-borderWidth)),
		borderWidth,
		r.theme.Border)

	if s.GameOver {
		r.drawGameOver(s, stats)
		return
	}

	for _, p := range s.Snake {
		r.drawCell(p, r.theme.Snake)
	}
	r.drawCell(s.Food, r.theme.Food)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), r.offsetX, r.offsetY, fontSize, r.theme.Text)
	best := fmt.Sprintf("Best: %d", max(stats.HighScore, s.Score))
	rl.DrawText(best, r.screenWidth-r.offsetX-rl.MeasureText(best, fontSize), r.offsetY, fontSize, r.theme.Text)
}

// drawCell paints a diagonally shaded square with a translucent shadow on top.
func (r *Renderer) drawCell(p types.Point, base color.RGBA) {
	x := float32(r.offsetX + int32(p.X))
	y := float32(r.offsetY + int32(p.Y))
	size := float32(r.cellSize)

	dark := theme.Darker(base, darkerFactor)
	mid := blend(dark, base)
	// corners: top-left, bottom-left, bottom-right, top-right
	rl.DrawRectangleGradientEx(rl.NewRectangle(x, y, size, size), dark, mid, base, mid)

	// translucent shadow laid over the cell, offset down and right
	rl.DrawRectangle(int32(x)+shadowOffset, int32(y)+shadowOffset, r.cellSize, r.cellSize, r.theme.Shadow)
}

func (r *Renderer) drawGameOver(s game.Snapshot, stats manager.Summary) {
	lines := []string{
		"Game Over!",
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Best: %d  Rounds: %d", stats.HighScore, stats.RoundsPlayed),
		"Press 'R' to Retry",
		"Press 'Q' to Quit",
	}

	top := (r.screenHeight - int32(len(lines))*lineHeight) / 2
	for i, line := range lines {
		w := rl.MeasureText(line, gameOverFontSize)
		rl.DrawText(line, (r.screenWidth-w)/2, top+int32(i)*lineHeight, gameOverFontSize, r.theme.Text)
	}
	if s.Cause != types.NoCollision {
		hint := strings.ToUpper(s.Cause.String()) + " COLLISION"
		w := rl.MeasureText(hint, fontSize)
		rl.DrawText(hint, (r.screenWidth-w)/2, top-lineHeight, fontSize, theme.Darker(r.theme.Text, darkerFactor))
	}
}

func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: uint8((int(a.A) + int(b.A)) / 2),
	}
}
