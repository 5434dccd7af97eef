package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grass-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"pause", runeKey('p'), core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit", runeKey('q'), core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %s, expected %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameKeepsTurnOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(runeKey('a'), &frame)

	if len(frame.Turns) != 2 || frame.Turns[0] != core.ActionUp || frame.Turns[1] != core.ActionLeft {
		t.Errorf("Turns = %v, expected [Up Left]", frame.Turns)
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{5, 200 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{0, time.Second},
		{-3, time.Second},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
