package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grass-snake/internal/core"
)

// KeyMap holds every key binding of the game.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Start      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
	Scores     key.Binding
	Back       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/click", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Scores: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "top runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// helpKeys adapts a fixed list of bindings to help.KeyMap.
type helpKeys []key.Binding

// ShortHelp returns key bindings for the short help view.
func (h helpKeys) ShortHelp() []key.Binding {
	return h
}

// FullHelp returns key bindings for the full help view.
func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. Keys that have no game
// meaning map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Start):
		return core.ActionConfirm
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// MapKeyToFrame records the action of a key message in an input frame.
// Returns the mapped action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action
}
