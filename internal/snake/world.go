package snake

import (
	"math/rand"
	"time"
)

// Outcome reports what happened during one Advance.
type Outcome struct {
	Ate      bool
	Eaten    Kind // valid only when Ate is set
	Spawned  bool
	Expired  int
	GameOver bool
}

// World is the mutable state of one session: snake, live foods, score
// and speed. It knows nothing about input or rendering.
type World struct {
	rules Rules
	rng   *rand.Rand
	gen   *Generator

	body  *Body
	foods []Food
	score int
	speed float64
}

// NewWorld creates a world and starts its first session at now.
func NewWorld(rules Rules, rng *rand.Rand, now time.Time) *World {
	w := &World{
		rules: rules,
		rng:   rng,
		gen:   NewGenerator(rng, rules),
	}
	w.Reset(now)
	return w
}

// Reset puts the snake back at its start position, restores the initial
// speed and seeds the board with one food.
func (w *World) Reset(now time.Time) {
	w.body = NewBody(w.rules.Start)
	w.score = 0
	w.speed = w.rules.InitialSpeed
	w.foods = w.foods[:0]
	if w.rules.MaxFoods > 0 {
		w.foods = append(w.foods, w.gen.Generate(now))
	}
}

// Advance moves the snake one cell in dir and resolves food, spawning,
// expiry and self collision, in that order.
func (w *World) Advance(dir Direction, now time.Time) Outcome {
	var out Outcome

	head := w.rules.Board.Step(w.body.Head(), dir)
	w.body.PushHead(head)

	if i := w.foodAt(head); i >= 0 {
		food := w.foods[i]
		w.foods = append(w.foods[:i], w.foods[i+1:]...)
		w.score, w.speed = w.rules.Effects[food.Kind].apply(w.body, w.score, w.speed)
		out.Ate = true
		out.Eaten = food.Kind
	} else {
		w.body.Trim(1)
	}

	if len(w.foods) < w.rules.MaxFoods && w.rng.Float64() < w.rules.SpawnChance {
		w.foods = append(w.foods, w.gen.Generate(now))
		out.Spawned = true
	}

	live := w.foods[:0]
	for _, f := range w.foods {
		if f.Expired(now, w.rules.FoodLifetime) {
			out.Expired++
			continue
		}
		live = append(live, f)
	}
	w.foods = live

	out.GameOver = w.body.BitesItself()
	return out
}

// foodAt returns the index of the first food on p, or -1.
func (w *World) foodAt(p Point) int {
	for i, f := range w.foods {
		if f.Pos == p {
			return i
		}
	}
	return -1
}

// Body returns the snake.
func (w *World) Body() *Body {
	return w.body
}

// Foods returns a copy of the live foods.
func (w *World) Foods() []Food {
	out := make([]Food, len(w.foods))
	copy(out, w.foods)
	return out
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Speed returns the current tick rate in ticks per second.
func (w *World) Speed() float64 {
	return w.speed
}
