package snake

// Effect is the change applied when a food is eaten.
type Effect struct {
	Score       int     // added to the score, which never drops below zero
	Speed       float64 // added to the tick rate, never negative
	Grow        int     // tail cells duplicated
	Shrink      int     // tail cells removed
	ShrinkAbove int     // shrink only when the snake is longer than this
}

// Effects is the effect table indexed by food kind.
type Effects [kindCount]Effect

// apply changes the body in place and returns the new score and speed.
func (e Effect) apply(body *Body, score int, speed float64) (int, float64) {
	score = max(0, score+e.Score)
	speed += e.Speed
	if e.Grow > 0 {
		body.Grow(e.Grow)
	}
	if e.Shrink > 0 && body.Len() > e.ShrinkAbove {
		body.Trim(e.Shrink)
	}
	return score, speed
}
