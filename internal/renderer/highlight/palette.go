package highlight

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/te/internal/renderer/core"
)

// ansi8 are the basic terminal colors in palette order.
var ansi8 = []colorful.Color{
	{R: 0, G: 0, B: 0},
	{R: 0.5, G: 0, B: 0},
	{R: 0, G: 0.5, B: 0},
	{R: 0.5, G: 0.5, B: 0},
	{R: 0, G: 0, B: 0.5},
	{R: 0.5, G: 0, B: 0.5},
	{R: 0, G: 0.5, B: 0.5},
	{R: 0.75, G: 0.75, B: 0.75},
}

// Reducer maps theme colors to what a terminal can show.
type Reducer func(core.Color) core.Color

// ReducerFor returns the reducer for a terminal with the given color count.
// Terminals with 256 or more colors get colors unchanged; smaller ones get
// the perceptually nearest basic color.
func ReducerFor(colors int) Reducer {
	if colors >= 256 {
		return func(c core.Color) core.Color { return c }
	}
	return Nearest8
}

// Nearest8 returns the basic palette color closest to c in Lab space.
// Default and indexed colors are returned unchanged.
func Nearest8(c core.Color) core.Color {
	if c.IsDefault() || c.Indexed {
		return c
	}
	want := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}

	best, bestDist := 0, want.DistanceLab(ansi8[0])
	for i := 1; i < len(ansi8); i++ {
		if d := want.DistanceLab(ansi8[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return core.ColorFromIndex(uint8(best))
}
