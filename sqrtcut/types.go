package sqrtcut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Sentinel errors for orchestrator configuration and sizing.
var (
	// ErrNilInput indicates a nil input.
	ErrNilInput = errors.New("sqrtcut: nil input")

	// ErrSuccessProbability indicates a success probability outside (0, 1).
	ErrSuccessProbability = errors.New("sqrtcut: success probability must lie in (0, 1)")

	// ErrWorkers indicates a non-positive worker count.
	ErrWorkers = errors.New("sqrtcut: worker count must be positive")

	// ErrMultiplier indicates a non-positive base-case multiplier.
	ErrMultiplier = errors.New("sqrtcut: base-case multiplier must be positive")

	// ErrInputTooSmall indicates an input without a non-trivial bipartition.
	ErrInputTooSmall = errors.New("sqrtcut: input needs at least two vertices and one edge")

	// ErrTrialOverflow indicates that the trial-count formula exceeded the
	// representable range; lower the success probability or the input size.
	ErrTrialOverflow = errors.New("sqrtcut: trial count overflow")
)

// Variant tags the execution mode of a run.
type Variant int

const (
	// LowConcurrency replicates the graph and runs sequential trials on
	// every worker.
	LowConcurrency Variant = iota

	// HighConcurrency partitions workers into groups, one distributed trial
	// pipeline per group.
	HighConcurrency
)

// String returns the result-line tag of the variant.
func (v Variant) String() string {
	if v == HighConcurrency {
		return "high"
	}

	return "low"
}

// Input is the graph source contract the orchestrator consumes: global
// counts plus contiguous slice extraction for distributed loading. The seed
// allows synthetic inputs to generate their slice deterministically; file
// inputs ignore it.
type Input interface {
	Name() string
	VertexCount() int
	EdgeCount() int
	LoadSlice(rank, groupSize int, seed int64) []core.Edge
}

// Default configuration values.
const (
	// DefaultSuccessProbability is the success probability used when the
	// caller does not choose one.
	DefaultSuccessProbability = 0.9

	// DefaultBaseCaseMultiplier is the shrinking constant c in the
	// intermediate size ⌈c·√m+1⌉.
	DefaultBaseCaseMultiplier = 2

	// MinGroupSize is the smallest high-concurrency group; the recursive
	// contraction's halving step requires powers of two.
	MinGroupSize = 2
)

// Options configures a run. Zero value is not meaningful; start from
// DefaultOptions.
type Options struct {
	// SuccessProbability is the probability with which the returned weight
	// equals the true minimum cut. Must lie in (0, 1).
	SuccessProbability float64

	// Seed drives all randomness; workers derive their streams from
	// Seed + rank. Zero selects a fixed default stream.
	Seed int64

	// Workers is the number of cooperating worker processes.
	Workers int

	// BaseCaseMultiplier is the shrinking constant c.
	BaseCaseMultiplier float64
}

// DefaultOptions returns production defaults: 0.9 success probability, one
// worker, multiplier 2, deterministic seed.
func DefaultOptions() Options {
	return Options{
		SuccessProbability: DefaultSuccessProbability,
		Seed:               0,
		Workers:            1,
		BaseCaseMultiplier: DefaultBaseCaseMultiplier,
	}
}

func (o Options) validate() error {
	if o.SuccessProbability <= 0 || o.SuccessProbability >= 1 {
		return ErrSuccessProbability
	}
	if o.Workers < 1 {
		return ErrWorkers
	}
	if o.BaseCaseMultiplier <= 0 {
		return ErrMultiplier
	}

	return nil
}

// Result describes one finished run.
type Result struct {
	// Weight is the best cut candidate found: an upper bound on the true
	// minimum cut, equal to it with the requested probability.
	Weight core.Weight

	// Variant records the execution mode.
	Variant Variant

	// Trials is the number of trials per worker (low concurrency) or per
	// group (high concurrency).
	Trials int

	// Input, Seed, Processors, Vertices and Edges echo the run parameters.
	Input      string
	Seed       int64
	Processors int
	Vertices   int
	Edges      int

	// CuttingSeconds is the wall-clock time of the cut computation measured
	// at the lead worker; CommSeconds is the maximum time any worker spent
	// inside collectives.
	CuttingSeconds float64
	CommSeconds    float64
}

// CSV renders the result as the comma-separated report line:
// input,seed,processors,vertices,edges,cutting,comm,trials,variant,weight.
func (r Result) CSV() string {
	return fmt.Sprintf("%s,%d,%d,%d,%d,%f,%f,%d,%s,%d",
		r.Input, r.Seed, r.Processors, r.Vertices, r.Edges,
		r.CuttingSeconds, r.CommSeconds, r.Trials, r.Variant, r.Weight)
}
