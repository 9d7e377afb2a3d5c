package game

import "math/rand/v2"

// rechargeState tracks passive fuel recovery while stranded. The ether
// trickle-charges the cells: after every few fuel-free moves a point or
// two comes back. The threshold alternates between 3 and 4 moves so the
// recovery rate isn't perfectly regular.
type rechargeState struct {
	counter   int
	threshold int
}

func newRechargeState() rechargeState {
	return rechargeState{threshold: 3}
}

// step records one stranded move and returns the fuel credited, zero
// until the threshold is reached.
func (r *rechargeState) step(rng *rand.Rand) int {
	r.counter++
	if r.counter < r.threshold {
		return 0
	}
	r.counter = 0
	if r.threshold == 3 {
		r.threshold = 4
	} else {
		r.threshold = 3
	}
	return 1 + rng.IntN(2)
}

// reset clears progress, called when the ship is no longer stranded.
func (r *rechargeState) reset() {
	r.counter = 0
	r.threshold = 3
}
