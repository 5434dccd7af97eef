package tui

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/grass-snake/internal/core"
	"github.com/vovakirdan/grass-snake/internal/snake"
)

const (
	buttonLabel  = "START GAME"
	buttonWidth  = 24
	buttonHeight = 3
)

// startButton returns where the start button sits on a w×h screen.
func startButton(w, h int) core.Rect {
	return core.CenteredRect(buttonWidth, buttonHeight, w, h)
}

// toColorful converts a cell color for blending.
func toColorful(c core.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// blend mixes a toward b by t in Lab space.
func blend(a, b core.Color, t float64) core.Color {
	r, g, bl := toColorful(a).BlendLab(toColorful(b), t).Clamped().RGB255()
	return core.RGB(r, g, bl)
}

// dimmed returns the palette with the grass darkened, used behind the
// game-over text so it reads as an overlay.
func dimmed(p snake.Palette) snake.Palette {
	p.LightGrass = blend(p.LightGrass, core.ColorBlack, 0.35)
	p.DarkGrass = blend(p.DarkGrass, core.ColorBlack, 0.35)
	return p
}

// drawStart draws the title screen.
func drawStart(dst *core.Screen, p snake.Palette, highScore int, hover bool) {
	dst.Clear()
	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	snake.DrawGrass(dst, p, full)

	h := dst.Height()
	dst.DrawTextCentered(h/4, " SNAKE GAME ", core.ColorTitle, core.NoColor)
	dst.DrawTextCentered(h/4+2, fmt.Sprintf("High Score: %d", highScore), core.ColorBlack, core.NoColor)

	btn := startButton(dst.Width(), h)
	color := p.Button
	if hover {
		color = p.ButtonHover
	}
	dst.Paint(btn, color)
	_, cy := btn.Center()
	dst.DrawTextCentered(cy, buttonLabel, core.ColorWhite, color)
}

// drawGameOver draws the final score screen.
func drawGameOver(dst *core.Screen, p snake.Palette, score, highScore int, newRecord bool) {
	dst.Clear()
	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	snake.DrawGrass(dst, dimmed(p), full)

	h := dst.Height()
	dst.DrawTextCentered(h/3, " GAME OVER ", core.ColorAlert, core.NoColor)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Final Score: %d", score), core.ColorWhite, core.NoColor)
	dst.DrawTextCentered(h/2+1, fmt.Sprintf("High Score: %d", highScore), core.ColorWhite, core.NoColor)
	if newRecord {
		dst.DrawTextCentered(h/2+2, "New record!", p.Button, core.NoColor)
	}
	dst.DrawTextCentered(h/2+4, "Press R to Restart or Q to Quit", core.ColorWhite, core.NoColor)
}
