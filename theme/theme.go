// Package theme holds the colour palettes shared by the window and terminal
// frontends.
package theme

import (
	"fmt"
	"image/color"
)

type Theme struct {
	Name       string
	Background color.RGBA
	Border     color.RGBA
	Snake      color.RGBA
	Food       color.RGBA
	Text       color.RGBA
	Shadow     color.RGBA
}

var (
	Dark = Theme{
		Name:       "dark",
		Background: color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Border:     color.RGBA{A: 255},
		Snake:      color.RGBA{G: 255, A: 255},
		Food:       color.RGBA{R: 255, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Shadow:     color.RGBA{A: 80},
	}
	Light = Theme{
		Name:       "light",
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border:     color.RGBA{A: 255},
		Snake:      color.RGBA{A: 255},
		Food:       color.RGBA{R: 255, A: 255},
		Text:       color.RGBA{A: 255},
		Shadow:     color.RGBA{A: 80},
	}
)

// Select returns Light when light is set, Dark otherwise.
func Select(light bool) Theme {
	if light {
		return Light
	}
	return Dark
}

// Darker scales the colour channels down by factor percent, so 150 yields a
// colour at two thirds of the original brightness. Factors <= 100 return c.
func Darker(c color.RGBA, factor int) color.RGBA {
	if factor <= 100 {
		return c
	}
	scale := func(v uint8) uint8 {
		return uint8(int(v) * 100 / factor)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
