package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/grass-snake/internal/core"
)

// styleKey identifies a foreground/background combination.
type styleKey struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair; a game only uses a
// handful of them.
var styleCache = struct {
	sync.Mutex
	styles map[styleKey]lipgloss.Style
}{styles: make(map[styleKey]lipgloss.Style)}

// styleFor returns the lipgloss style for a color pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}

	styleCache.Lock()
	defer styleCache.Unlock()

	if s, ok := styleCache.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg.Valid {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.Valid {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache.styles[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !cell.FG.Same(first.FG) || !cell.BG.Same(first.BG) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !first.FG.Valid && !first.BG.Valid {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(first.FG, first.BG).Render(run.String()))
		}
	}
	return sb.String()
}
