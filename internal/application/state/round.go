package state

import "math/rand"

// Round is the state of one playthrough: the fixed pattern the player must
// memorize, the phase flag, and the two cursors into the pattern.
//
// Idx is the replay cursor during playback and the validation cursor while
// interactive. MaxIdx is the longest correctly reproduced prefix length so
// far and doubles as the final score.
type Round struct {
	Pattern     []uint8
	Interactive bool
	MaxIdx      int
	Idx         int
}

// NewRound generates a fresh round with a pattern of the given length,
// each symbol drawn uniformly from [0, symbols).
func NewRound(rng *rand.Rand, length, symbols int) Round {
	pattern := make([]uint8, length)
	for i := range pattern {
		pattern[i] = uint8(rng.Intn(symbols))
	}
	return Round{Pattern: pattern}
}

// Expected returns the symbol the player must press next.
func (r *Round) Expected() uint8 {
	return r.Pattern[r.Idx]
}

// EnterInput switches the round from playback to the input phase.
func (r *Round) EnterInput() {
	r.Interactive = true
	r.Idx = 0
}

// AdvanceDifficulty records a fully reproduced prefix and loops the round
// back into the playback phase one symbol longer. Growth is capped by the
// pattern length; at the cap the round keeps replaying at full length.
func (r *Round) AdvanceDifficulty() {
	r.Idx = 0
	if r.MaxIdx < len(r.Pattern)-1 {
		r.MaxIdx++
	}
	r.Interactive = false
}

// Score returns the final score of the round.
func (r *Round) Score() int {
	return r.MaxIdx
}
