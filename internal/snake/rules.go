package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/grass-snake/internal/config"
	"github.com/vovakirdan/grass-snake/internal/core"
)

// Palette holds the colors shared by the board, the snake and the menus.
type Palette struct {
	LightGrass  core.Color
	DarkGrass   core.Color
	SnakeHead   core.Color
	SnakeBody   core.Color
	Button      core.Color
	ButtonHover core.Color
}

// Rules are the resolved constants of a game session.
type Rules struct {
	Board            Board
	Start            []Point
	StartDirection   Direction
	InitialSpeed     float64
	MaxFoods         int
	SpawnChance      float64
	FoodLifetime     time.Duration
	NormalChannelMin int
	Weights          [kindCount]float64
	FoodColors       [kindCount]core.Color
	Effects          Effects
	Palette          Palette
}

// NewRules resolves a configuration into game rules.
func NewRules(cfg config.SnakeConfig) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, err
	}

	dir, err := ParseDirection(cfg.Snake.Direction)
	if err != nil {
		return Rules{}, err
	}

	r := Rules{
		Board: Board{
			Width:    cfg.Board.Width,
			Height:   cfg.Board.Height,
			CellSize: cfg.Board.CellSize,
		},
		StartDirection:   dir,
		InitialSpeed:     cfg.Snake.InitialSpeed,
		MaxFoods:         cfg.Food.MaxLive,
		SpawnChance:      cfg.Food.SpawnChance,
		FoodLifetime:     cfg.Food.Lifetime,
		NormalChannelMin: cfg.Food.NormalChannelMin,
	}
	for _, p := range cfg.Snake.Body {
		r.Start = append(r.Start, Point{X: p.X, Y: p.Y})
	}

	var kinds [kindCount]config.FoodKind
	kinds[KindNormal] = cfg.Food.Normal
	kinds[KindGold] = cfg.Food.Gold
	kinds[KindPoison] = cfg.Food.Poison
	kinds[KindTimer] = cfg.Food.Timer
	for i, fk := range kinds {
		kind := Kind(i)
		r.Effects[kind] = Effect{
			Score:       fk.Score,
			Speed:       fk.Speed,
			Grow:        fk.Grow,
			Shrink:      fk.Shrink,
			ShrinkAbove: fk.ShrinkAbove,
		}
		if kind == KindNormal {
			continue
		}
		r.Weights[kind] = fk.Weight
		if r.FoodColors[kind], err = config.ParseColor(fk.Color); err != nil {
			return Rules{}, fmt.Errorf("snake: %s food: %w", kind, err)
		}
	}

	p := cfg.Palette
	colors := []struct {
		dst *core.Color
		hex string
	}{
		{&r.Palette.LightGrass, p.LightGrass},
		{&r.Palette.DarkGrass, p.DarkGrass},
		{&r.Palette.SnakeHead, p.SnakeHead},
		{&r.Palette.SnakeBody, p.SnakeBody},
		{&r.Palette.Button, p.Button},
		{&r.Palette.ButtonHover, p.ButtonHover},
	}
	for _, c := range colors {
		if *c.dst, err = config.ParseColor(c.hex); err != nil {
			return Rules{}, fmt.Errorf("snake: palette: %w", err)
		}
	}
	return r, nil
}

// DefaultRules returns the built-in rules. It panics if the compiled-in
// defaults are invalid, which the config tests rule out.
func DefaultRules() Rules {
	r, err := NewRules(config.DefaultSnakeConfig())
	if err != nil {
		panic(err)
	}
	return r
}
