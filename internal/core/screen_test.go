package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.FG.Valid || c.BG.Valid {
				t.Fatalf("new screen should hold unstyled spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetKeepsBackground(t *testing.T) {
	s := NewScreen(4, 1)
	grass := RGB(170, 215, 81)
	s.Paint(NewRect(0, 0, 4, 1), grass)
	s.Set(1, 0, 'o')

	c := s.GetCell(1, 0)
	if c.Rune != 'o' || !c.BG.Same(grass) {
		t.Errorf("Set should keep painted background, got %+v", c)
	}
}

func TestScreenPaint(t *testing.T) {
	s := NewScreen(10, 10)
	bg := RGB(1, 2, 3)
	s.Paint(NewRect(2, 2, 3, 3), bg)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if !s.GetCell(x, y).BG.Same(bg) {
				t.Errorf("Paint: expected background at (%d, %d)", x, y)
			}
		}
	}
	if s.GetCell(1, 1).BG.Valid || s.GetCell(5, 5).BG.Valid {
		t.Error("Paint should not affect outside area")
	}
}

func TestScreenDrawTextStyled(t *testing.T) {
	s := NewScreen(20, 2)
	under := RGB(9, 9, 9)
	s.Paint(NewRect(0, 0, 20, 1), under)
	s.DrawTextStyled(2, 0, "Score", ColorBlack, NoColor)

	c := s.GetCell(2, 0)
	if c.Rune != 'S' || !c.FG.Same(ColorBlack) || !c.BG.Same(under) {
		t.Errorf("styled text with NoColor background should keep paint, got %+v", c)
	}

	s.DrawTextStyled(18, 1, "Hello", ColorWhite, ColorPause)
	if s.Get(18, 1) != 'H' || s.Get(19, 1) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", NoColor, NoColor)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("Out of bounds row should be spaces")
	}
}
