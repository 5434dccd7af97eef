// Package config provides YAML-based game configuration loading for the
// snake game. The embedded defaults are the game's compiled-in constants.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/grass-snake/internal/core"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   SnakeStart    `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Palette PaletteConfig `yaml:"palette"`
}

// BoardConfig defines the canvas in pixels. Cells are CellSize squares.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// CellPos is a cell origin in canvas pixels.
type CellPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeStart defines the snake at the beginning of every session.
type SnakeStart struct {
	Body         []CellPos `yaml:"body"` // head first
	Direction    string    `yaml:"direction"`
	InitialSpeed float64   `yaml:"initial_speed"` // ticks per second
}

// FoodConfig defines spawning, expiry and the per-kind effect table.
type FoodConfig struct {
	MaxLive          int           `yaml:"max_live"`
	SpawnChance      float64       `yaml:"spawn_chance"` // per tick, while under MaxLive
	Lifetime         time.Duration `yaml:"lifetime"`
	NormalChannelMin int           `yaml:"normal_channel_min"`
	Timer            FoodKind      `yaml:"timer"`
	Gold             FoodKind      `yaml:"gold"`
	Poison           FoodKind      `yaml:"poison"`
	Normal           FoodKind      `yaml:"normal"`
}

// FoodKind holds the spawn weight, color and effect of one food category.
// Normal food ignores Weight (it takes the remainder) and Color (random).
type FoodKind struct {
	Weight      float64 `yaml:"weight,omitempty"`
	Color       string  `yaml:"color,omitempty"`
	Score       int     `yaml:"score"`
	Speed       float64 `yaml:"speed,omitempty"`
	Grow        int     `yaml:"grow,omitempty"`
	Shrink      int     `yaml:"shrink,omitempty"`
	ShrinkAbove int     `yaml:"shrink_above,omitempty"`
}

// PaletteConfig holds the reserved colors as #rrggbb strings.
type PaletteConfig struct {
	LightGrass  string `yaml:"light_grass"`
	DarkGrass   string `yaml:"dark_grass"`
	SnakeHead   string `yaml:"snake_head"`
	SnakeBody   string `yaml:"snake_body"`
	Button      string `yaml:"button"`
	ButtonHover string `yaml:"button_hover"`
}

// Cols returns the board width in cells.
func (b BoardConfig) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the board height in cells.
func (b BoardConfig) Rows() int {
	return b.Height / b.CellSize
}

// ParseColor converts a #rrggbb (or #rgb) string to a core.Color.
func ParseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.NoColor, fmt.Errorf("config: invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}

// Validate reports the first impossible value in the configuration.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.CellSize <= 0 || b.Width <= 0 || b.Height <= 0 {
		return errors.New("config: board dimensions must be positive")
	}
	if b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0 {
		return fmt.Errorf("config: board %dx%d is not a multiple of cell size %d", b.Width, b.Height, b.CellSize)
	}
	if len(c.Snake.Body) == 0 {
		return errors.New("config: snake body must have at least one cell")
	}
	for _, p := range c.Snake.Body {
		if p.X < 0 || p.Y < 0 || p.X >= b.Width || p.Y >= b.Height || p.X%b.CellSize != 0 || p.Y%b.CellSize != 0 {
			return fmt.Errorf("config: snake cell (%d,%d) is not on the board grid", p.X, p.Y)
		}
	}
	switch c.Snake.Direction {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("config: unknown direction %q", c.Snake.Direction)
	}
	if c.Snake.InitialSpeed < 1 {
		return errors.New("config: initial_speed must be at least 1 tick per second")
	}

	f := c.Food
	if f.MaxLive < 0 {
		return errors.New("config: food.max_live must not be negative")
	}
	if f.SpawnChance < 0 || f.SpawnChance > 1 {
		return errors.New("config: food.spawn_chance must be within [0, 1]")
	}
	if f.Lifetime <= 0 {
		return errors.New("config: food.lifetime must be positive")
	}
	if f.NormalChannelMin < 0 || f.NormalChannelMin > 255 {
		return errors.New("config: food.normal_channel_min must be within [0, 255]")
	}
	total := f.Timer.Weight + f.Gold.Weight + f.Poison.Weight
	if f.Timer.Weight < 0 || f.Gold.Weight < 0 || f.Poison.Weight < 0 || total > 1 {
		return errors.New("config: special food weights must be non-negative and sum to at most 1")
	}
	for _, kind := range []FoodKind{f.Timer, f.Gold, f.Poison, f.Normal} {
		if kind.Speed < 0 {
			return errors.New("config: food speed effects must not be negative")
		}
		if kind.Grow < 0 || kind.Shrink < 0 {
			return errors.New("config: food grow/shrink must not be negative")
		}
	}
	for _, hex := range []string{f.Timer.Color, f.Gold.Color, f.Poison.Color} {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}

	p := c.Palette
	for _, hex := range []string{p.LightGrass, p.DarkGrass, p.SnakeHead, p.SnakeBody, p.Button, p.ButtonHover} {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	return c.validateNormalColors()
}

// validateNormalColors checks that normal food has at least one color to
// draw that is not reserved for the grass or the snake.
func (c SnakeConfig) validateNormalColors() error {
	lo := c.Food.NormalChannelMin
	span := 256 - lo
	p := c.Palette

	reserved := make(map[core.Color]struct{})
	for _, hex := range []string{p.LightGrass, p.DarkGrass, p.SnakeHead, p.SnakeBody} {
		rc, err := ParseColor(hex)
		if err != nil {
			return err
		}
		if int(rc.R) >= lo && int(rc.G) >= lo && int(rc.B) >= lo {
			reserved[rc] = struct{}{}
		}
	}
	if len(reserved) >= span*span*span {
		return fmt.Errorf("config: food.normal_channel_min %d leaves no color free of the palette", lo)
	}
	return nil
}
