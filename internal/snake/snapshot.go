package snake

// Snapshot is a read-only copy of everything needed to draw one tick.
// The platform layer renders from it without touching game logic.
type Snapshot struct {
	Tick      uint64
	Snake     []Point // head first
	Foods     []Food
	Score     int
	HighScore int
	Speed     float64
	Direction Direction
	Paused    bool
	GameOver  bool
	TooSmall  bool
	Board     Board
	Palette   Palette
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Snake:     g.world.Body().Cells(),
		Foods:     g.world.Foods(),
		Score:     g.world.Score(),
		HighScore: g.highScore,
		Speed:     g.world.Speed(),
		Direction: g.direction,
		Paused:    g.paused,
		GameOver:  g.gameOver,
		TooSmall:  g.tooSmall,
		Board:     g.rules.Board,
		Palette:   g.rules.Palette,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Spawn times are left out since they come from the wall clock.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed*10)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction.X+1)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction.Y+1)       //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Snake))          //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Foods))          //#nosec G115 -- hash computation
	h = h*31 + uint64(boolToInt(snap.GameOver)) //#nosec G115 -- hash computation
	h = h*31 + uint64(boolToInt(snap.Paused))   //#nosec G115 -- hash computation
	h = h*31 + uint64(boolToInt(snap.TooSmall)) //#nosec G115 -- hash computation

	for _, p := range snap.Snake {
		h = h*31 + uint64(p.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(p.Y) //#nosec G115 -- hash computation
	}
	for _, f := range snap.Foods {
		h = h*31 + uint64(f.Pos.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(f.Pos.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(f.Kind)  //#nosec G115 -- hash computation
		h = h*31 + (uint64(f.Color.R)<<16 | uint64(f.Color.G)<<8 | uint64(f.Color.B))
	}
	return h
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
