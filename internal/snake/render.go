package snake

import (
	"fmt"

	"github.com/vovakirdan/grass-snake/internal/core"
)

const (
	// CellWidth is the number of terminal columns per board cell, which
	// keeps cells roughly square in a typical terminal font.
	CellWidth = 2
	hudRows   = 1
)

// MinScreen returns the smallest terminal that fits the board and HUD.
func (g *Game) MinScreen() (int, int) {
	b := g.rules.Board
	return b.Cols() * CellWidth, b.Rows() + hudRows
}

// BoardRect returns the terminal area the board occupies on a w×h screen.
// The HUD sits on the line right above it.
func BoardRect(b Board, w, h int) core.Rect {
	r := core.CenteredRect(b.Cols()*CellWidth, b.Rows()+hudRows, w, h)
	r.Y += hudRows
	r.H -= hudRows
	return r
}

// DrawGrass paints the checkerboard over area. The top-left cell is light.
func DrawGrass(dst *core.Screen, p Palette, area core.Rect) {
	for y := area.Y; y < area.Bottom(); y++ {
		row := y - area.Y
		for x := area.X; x < area.Right(); x++ {
			col := (x - area.X) / CellWidth
			bg := p.LightGrass
			if (row+col)%2 != 0 {
				bg = p.DarkGrass
			}
			dst.SetCell(x, y, core.Cell{Rune: ' ', BG: bg})
		}
	}
}

// Render draws the board, snake, foods and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.Snapshot()
	area := BoardRect(snap.Board, dst.Width(), dst.Height())
	DrawGrass(dst, snap.Palette, area)

	// Tail first so the head wins when cells overlap right after growing.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, area, snap.Board, snap.Snake[i], "••", core.ColorWhite, snap.Palette.SnakeHead)
		} else {
			drawCell(dst, area, snap.Board, snap.Snake[i], "  ", core.NoColor, snap.Palette.SnakeBody)
		}
	}

	// Food is drawn over the snake, matching the canvas screenshot.
	for _, f := range snap.Foods {
		text := "  "
		if f.Kind == KindPoison {
			text = "╲╱"
		}
		drawCell(dst, area, snap.Board, f.Pos, text, core.ColorWhite, f.Color)
	}

	hud := fmt.Sprintf("Score: %d  High Score: %d", snap.Score, snap.HighScore)
	dst.DrawTextStyled(area.X, area.Y-hudRows, hud, core.ColorWhite, core.NoColor)

	if snap.Paused {
		dst.DrawTextCentered(area.Y+area.H/2, " PAUSED ", core.ColorWhite, core.ColorPause)
	}
}

// drawCell writes a board cell as CellWidth styled terminal columns.
func drawCell(dst *core.Screen, area core.Rect, b Board, p Point, text string, fg, bg core.Color) {
	col, row := b.ColRow(p)
	dst.DrawTextStyled(area.X+col*CellWidth, area.Y+row, text, fg, bg)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.MinScreen()
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "Window too small", core.ColorAlert, core.NoColor)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()), core.NoColor, core.NoColor)
	dst.DrawTextCentered(y+2, "Resize to continue", core.NoColor, core.NoColor)
}
