package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    1200,
			Height:   800,
			CellSize: 40,
		},
		Snake: SnakeStart{
			Body:         []CellPos{{X: 200, Y: 200}, {X: 160, Y: 200}, {X: 120, Y: 200}},
			Direction:    "right",
			InitialSpeed: 5,
		},
		Food: FoodConfig{
			MaxLive:          2,
			SpawnChance:      0.05,
			Lifetime:         7 * time.Second,
			NormalChannelMin: 50,
			Timer:            FoodKind{Weight: 0.05, Color: "#dc143c", Score: 3, Speed: 1},
			Gold:             FoodKind{Weight: 0.10, Color: "#ffd700", Score: 5, Speed: 1.5, Grow: 3},
			Poison:           FoodKind{Weight: 0.10, Color: "#8a2be2", Score: -3, Shrink: 3, ShrinkAbove: 5},
			Normal:           FoodKind{Score: 1, Speed: 0.5},
		},
		Palette: PaletteConfig{
			LightGrass:  "#aad751",
			DarkGrass:   "#a2d149",
			SnakeHead:   "#6a5acd",
			SnakeBody:   "#b0c4de",
			Button:      "#6495ed",
			ButtonHover: "#4169e1",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
