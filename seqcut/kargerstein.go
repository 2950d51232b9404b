package seqcut

import (
	"math/rand"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/rng"
)

// prPass applies the Padberg-Rinaldi reduction: any edge whose weight reaches
// the current upper bound on the minimum cut can be contracted safely, since
// no cut containing it can beat the bound. Repeats until no such edge remains
// or only two vertices are left.
func prPass(s *contractState, upper core.Weight) {
	for s.n > 2 {
		contracted := false
		for r := 0; r < s.n && !contracted; r++ {
			for c := r + 1; c < s.n; c++ {
				if s.at(r, c) >= upper {
					s.contract(r, c)
					contracted = true
					break
				}
			}
		}
		if !contracted {
			return
		}
	}
}

// deterministicCut finishes a contraction state exactly: Padberg-Rinaldi
// preprocessing against the upper bound, then Stoer-Wagner on the remainder.
func deterministicCut(s *contractState, upper core.Weight) (core.Weight, error) {
	prPass(s, upper)
	if s.n < 2 {
		// Everything merged; the bound itself is the answer.
		return upper, nil
	}

	cut, err := StoerWagner(s.dense())
	if err != nil {
		return 0, err
	}
	if cut < upper {
		upper = cut
	}

	return upper, nil
}

// recursiveContraction performs one Karger-Stein execution on the state:
// randomly contract to TargetVertices(n) vertices (⌈n/√2⌉+1, never below
// BaseCaseSize), then recurse twice on independent
// copies, keeping the best bound seen. Graphs that run out of weight before
// reaching the target are disconnected and have a zero cut.
func recursiveContraction(s *contractState, r *rand.Rand, upper core.Weight) (core.Weight, error) {
	if s.n <= BaseCaseSize {
		return deterministicCut(s, upper)
	}

	target := TargetVertices(s.n)
	for s.n > target {
		if s.totalWeight() == 0 {
			return 0, nil
		}
		u, v := s.randomEdge(r)
		s.contract(u, v)
	}

	for i := 0; i < RecursiveFanout; i++ {
		cut, err := recursiveContraction(s.clone(), r, upper)
		if err != nil {
			return 0, err
		}
		if cut < upper {
			upper = cut
		}
	}

	return upper, nil
}

// MinimumCutTry performs a single recursive-contraction trial on a dense
// graph. The result is an upper bound on the minimum cut; use NumberOfTrials
// to schedule enough trials for a desired success probability.
func MinimumCutTry(m *Matrix, seed int64) (core.Weight, error) {
	if m.N() < 2 {
		return 0, ErrTooFewVertices
	}

	state, err := newContractState(m)
	if err != nil {
		return 0, err
	}

	return recursiveContraction(state, rng.FromSeed(seed), core.MaxWeight)
}

// MinimumCut computes the minimum cut of a dense graph with at least the
// requested success probability, by running independently seeded trials and
// carrying the running bound through them.
func MinimumCut(m *Matrix, successProbability float64, seed int64) (core.Weight, error) {
	if m.N() < 2 {
		return 0, ErrTooFewVertices
	}

	r := rng.FromSeed(seed)
	trials := NumberOfTrials(m.N(), successProbability)

	best := core.MaxWeight
	for i := 0; i < trials; i++ {
		state, err := newContractState(m)
		if err != nil {
			return 0, err
		}
		cut, err := recursiveContraction(state, r, best)
		if err != nil {
			return 0, err
		}
		if cut < best {
			best = cut
		}
	}

	return best, nil
}
