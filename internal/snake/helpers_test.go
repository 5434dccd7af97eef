package snake

import (
	"math/rand"
	"time"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// quietRules are the default rules without random spawning.
func quietRules() Rules {
	r := DefaultRules()
	r.SpawnChance = 0
	return r
}

// newTestWorld returns a world at the default start with exactly the
// given foods on the board.
func newTestWorld(rules Rules, foods ...Food) *World {
	w := NewWorld(rules, rand.New(rand.NewSource(1)), t0)
	w.foods = append(w.foods[:0], foods...)
	return w
}

func food(kind Kind, x, y int) Food {
	return Food{Pos: Point{X: x, Y: y}, Kind: kind, SpawnedAt: t0}
}

func samePoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
