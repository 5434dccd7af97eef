package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/grass-snake/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")

	if got := RenderScreen(s); got != "hello\n     " {
		t.Errorf("RenderScreen() = %q", got)
	}
}

func TestRenderScreenStyledRuns(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawTextStyled(0, 0, "ab", core.ColorWhite, core.ColorBlack)
	s.DrawTextStyled(2, 0, "cd", core.ColorWhite, core.ColorAlert)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing run %q", out, want)
		}
	}
}

func TestStyleCacheReuse(t *testing.T) {
	a := styleFor(core.ColorWhite, core.ColorPause)
	b := styleFor(core.ColorWhite, core.ColorPause)
	if a.Render("x") != b.Render("x") {
		t.Error("cached style should render identically")
	}
}

func TestBlend(t *testing.T) {
	c := core.RGB(100, 150, 200)
	if got := blend(c, core.ColorBlack, 0); !got.Same(c) {
		t.Errorf("blend at 0 = %s, expected %s", got.Hex(), c.Hex())
	}
	if got := blend(c, core.ColorBlack, 1); !got.Same(core.ColorBlack) {
		t.Errorf("blend at 1 = %s, expected black", got.Hex())
	}
	mid := blend(c, core.ColorBlack, 0.5)
	if mid.R >= c.R || mid.G >= c.G || mid.B >= c.B {
		t.Errorf("blend toward black should darken, got %s", mid.Hex())
	}
}
