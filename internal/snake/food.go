package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/grass-snake/internal/core"
)

// Kind is the category of a food. The set is closed.
type Kind int

const (
	KindNormal Kind = iota
	KindGold
	KindPoison
	KindTimer
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindGold:
		return "gold"
	case KindPoison:
		return "poison"
	case KindTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// Kinds lists every food category in display order.
func Kinds() []Kind {
	return []Kind{KindNormal, KindGold, KindPoison, KindTimer}
}

// Food is one edible item on the board.
type Food struct {
	Pos       Point
	Color     core.Color
	Kind      Kind
	SpawnedAt time.Time
}

// Expired reports whether the food has outlived its lifetime at now.
// A food exactly lifetime old is still live.
func (f Food) Expired(now time.Time, lifetime time.Duration) bool {
	return now.Sub(f.SpawnedAt) > lifetime
}

// Generator produces foods at random grid cells.
type Generator struct {
	rng        *rand.Rand
	board      Board
	odds       []kindOdds
	colors     [kindCount]core.Color
	reserved   []core.Color
	channelMin int
}

// kindOdds is one step of the cumulative category table.
type kindOdds struct {
	kind Kind
	upto float64
}

// NewGenerator creates a generator drawing from rng. The special kinds are
// tried in the order timer, gold, poison; normal takes the remainder.
func NewGenerator(rng *rand.Rand, rules Rules) *Generator {
	g := &Generator{
		rng:        rng,
		board:      rules.Board,
		colors:     rules.FoodColors,
		channelMin: rules.NormalChannelMin,
	}
	g.reserved = []core.Color{
		rules.Palette.LightGrass,
		rules.Palette.DarkGrass,
		rules.Palette.SnakeHead,
		rules.Palette.SnakeBody,
	}
	cumulative := 0.0
	for _, k := range []Kind{KindTimer, KindGold, KindPoison} {
		cumulative += rules.Weights[k]
		g.odds = append(g.odds, kindOdds{kind: k, upto: cumulative})
	}
	return g
}

// Generate creates a food stamped with now. The cell is uniform over the
// whole grid and may overlap the snake or another food.
func (g *Generator) Generate(now time.Time) Food {
	kind := g.pickKind(g.rng.Float64())
	pos := g.board.Cell(g.rng.Intn(g.board.Cols()), g.rng.Intn(g.board.Rows()))

	color := g.colors[kind]
	if kind == KindNormal {
		color = g.normalColor()
	}
	return Food{Pos: pos, Color: color, Kind: kind, SpawnedAt: now}
}

// pickKind maps a roll in [0, 1) onto the cumulative category table.
func (g *Generator) pickKind(roll float64) Kind {
	for _, o := range g.odds {
		if roll < o.upto {
			return o.kind
		}
	}
	return KindNormal
}

// normalColor draws a random color that cannot be mistaken for the grass
// or the snake.
func (g *Generator) normalColor() core.Color {
	span := 256 - g.channelMin
	for {
		c := core.RGB(
			uint8(g.channelMin+g.rng.Intn(span)), //#nosec G115 -- bounded to [min, 255]
			uint8(g.channelMin+g.rng.Intn(span)), //#nosec G115 -- bounded to [min, 255]
			uint8(g.channelMin+g.rng.Intn(span)), //#nosec G115 -- bounded to [min, 255]
		)
		if !g.isReserved(c) {
			return c
		}
	}
}

func (g *Generator) isReserved(c core.Color) bool {
	for _, r := range g.reserved {
		if r.Same(c) {
			return true
		}
	}
	return false
}
