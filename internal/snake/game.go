package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/grass-snake/internal/core"
)

// Game wraps a World with steering, pausing and session bookkeeping.
// It is driven one tick at a time by the platform layer.
type Game struct {
	rules Rules
	rng   *rand.Rand
	world *World
	now   func() time.Time

	tick      uint64
	direction Direction // last applied move
	nextDir   Direction // buffered turn for the next move
	paused    bool
	gameOver  bool
	tooSmall  bool
	highScore int

	screenW int
	screenH int

	eaten     [kindCount]int
	startedAt time.Time
	endedAt   time.Time
}

// Summary describes a finished (or running) session.
type Summary struct {
	Score    int
	Length   int
	TopSpeed float64
	Eaten    [kindCount]int
	Duration time.Duration
}

// New creates a game using the given rules. Call Reset before Step.
func New(rules Rules) *Game {
	return &Game{
		rules: rules,
		now:   time.Now,
	}
}

// SetClock replaces the wall clock used for food spawn and expiry times.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// SetHighScore sets the record shown next to the score.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the record shown next to the score.
func (g *Game) HighScore() int {
	return g.highScore
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Reset starts a new session: initial snake, initial speed, one food.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- game randomness, not security
	now := g.now()
	if g.world == nil {
		g.world = NewWorld(g.rules, g.rng, now)
	} else {
		g.world.rng = g.rng
		g.world.gen = NewGenerator(g.rng, g.rules)
		g.world.Reset(now)
	}

	g.tick = 0
	g.direction = g.rules.StartDirection
	g.nextDir = g.rules.StartDirection
	g.paused = false
	g.gameOver = false
	g.eaten = [kindCount]int{}
	g.startedAt = now
	g.endedAt = time.Time{}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the terminal size and freezes play while the board
// does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinScreen()
	g.tooSmall = !core.CenteredRect(minW, minH, w, h).Fits(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.steer(input)

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.direction = g.nextDir
	now := g.now()
	out := g.world.Advance(g.direction, now)
	if out.Ate {
		g.eaten[out.Eaten]++
	}
	if out.GameOver {
		g.gameOver = true
		g.endedAt = now
	}

	return core.StepResult{State: g.State(), Ate: out.Ate}
}

// steer buffers the last acceptable turn of the frame. A turn is
// acceptable when it leaves the axis of the last applied move, so the
// snake can never fold back onto its neck within one tick.
func (g *Game) steer(input core.InputFrame) {
	for _, a := range input.Turns {
		d, ok := directionFor(a)
		if !ok || d.SameAxis(g.direction) {
			continue
		}
		g.nextDir = d
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
		TickRate: max(1, int(g.world.Speed())),
	}
}

// Summary returns the statistics of the current session.
func (g *Game) Summary() Summary {
	end := g.endedAt
	if end.IsZero() {
		end = g.now()
	}
	return Summary{
		Score:    g.world.Score(),
		Length:   g.world.Body().Len(),
		TopSpeed: g.world.Speed(),
		Eaten:    g.eaten,
		Duration: end.Sub(g.startedAt),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Speed: %.1f\n", g.tick, g.world.Score(), g.world.Speed()))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", g.world.Body().Len(), g.direction))
	head := g.world.Body().Head()
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Foods: %d\n", head.X, head.Y, len(g.world.foods)))
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.gameOver, g.paused))
	return b.String()
}
