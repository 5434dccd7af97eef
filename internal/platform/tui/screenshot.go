package tui

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/grass-snake/internal/core"
	"github.com/vovakirdan/grass-snake/internal/snake"
)

// Canvas drawing metrics, in pixels for the default 40px cell.
const (
	headRadius  = 12
	bodyRadius  = 8
	eyeOffset   = 10
	eyeRadius   = 6
	pupilRadius = 3
	crossInset  = 8
	crossWidth  = 4
)

func setColor(dc *gg.Context, c core.Color) {
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}

// DrawBoard renders a snapshot at full canvas resolution.
func DrawBoard(snap snake.Snapshot) image.Image {
	b := snap.Board
	cs := float64(b.CellSize)
	dc := gg.NewContext(b.Width, b.Height)

	for row := range b.Rows() {
		for col := range b.Cols() {
			if (row+col)%2 == 0 {
				setColor(dc, snap.Palette.LightGrass)
			} else {
				setColor(dc, snap.Palette.DarkGrass)
			}
			dc.DrawRectangle(float64(col)*cs, float64(row)*cs, cs, cs)
			dc.Fill()
		}
	}

	for i, p := range snap.Snake {
		x, y := float64(p.X), float64(p.Y)
		if i > 0 {
			setColor(dc, snap.Palette.SnakeBody)
			dc.DrawRoundedRectangle(x, y, cs, cs, bodyRadius)
			dc.Fill()
			continue
		}
		setColor(dc, snap.Palette.SnakeHead)
		dc.DrawRoundedRectangle(x, y, cs, cs, headRadius)
		dc.Fill()
		for _, ex := range []float64{x + eyeOffset, x + cs - eyeOffset} {
			setColor(dc, core.ColorWhite)
			dc.DrawCircle(ex, y+eyeOffset, eyeRadius)
			dc.Fill()
			setColor(dc, core.ColorBlack)
			dc.DrawCircle(ex, y+eyeOffset, pupilRadius)
			dc.Fill()
		}
	}

	for _, f := range snap.Foods {
		x, y := float64(f.Pos.X), float64(f.Pos.Y)
		setColor(dc, f.Color)
		dc.DrawRoundedRectangle(x, y, cs, cs, headRadius)
		dc.Fill()
		if f.Kind == snake.KindPoison {
			setColor(dc, core.ColorWhite)
			dc.SetLineWidth(crossWidth)
			dc.DrawLine(x+crossInset, y+crossInset, x+cs-crossInset, y+cs-crossInset)
			dc.Stroke()
			dc.DrawLine(x+cs-crossInset, y+crossInset, x+crossInset, y+cs-crossInset)
			dc.Stroke()
		}
	}

	setColor(dc, core.ColorBlack)
	dc.DrawString(fmt.Sprintf("Score: %d", snap.Score), 20, 30)
	dc.DrawString(fmt.Sprintf("High Score: %d", snap.HighScore), 20, 50)

	if snap.Paused {
		setColor(dc, core.ColorPause)
		dc.DrawStringAnchored("PAUSED", float64(b.Width)/2, float64(b.Height)/2, 0.5, 0.5)
	}
	return dc.Image()
}

// SaveScreenshot writes the snapshot as a PNG into dir and returns the
// file path.
func SaveScreenshot(snap snake.Snapshot, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.png", now.Format("20060102_150405")))
	if err := gg.SavePNG(path, DrawBoard(snap)); err != nil {
		return "", fmt.Errorf("screenshot: write %s: %w", path, err)
	}
	return path, nil
}
