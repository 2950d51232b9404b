package sqrtcut

import (
	"math"
	"time"

	"github.com/katalvlaran/mincut/comm"
	"github.com/katalvlaran/mincut/contract"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/iss"
	"github.com/katalvlaran/mincut/rng"
	"github.com/katalvlaran/mincut/seqcut"
)

// oddColor marks workers left over by the power-of-two grouping.
const oddColor = math.MaxInt32

// rcTrialsPerGroup is the number of recursive-contract executions each
// high-concurrency group performs on its reduced matrix.
const rcTrialsPerGroup = 2

// NumberOfTrials returns the total Monte-Carlo trial count for a graph with
// n vertices and m edges at the given success probability and shrinking
// multiplier: ⌈n²·ln(1/(1-p)) / (c²·m·p_base(T))⌉, where p_base is the
// success lower bound of a single trial at the intermediate size T.
func NumberOfTrials(n, m int, successProbability, multiplier float64) (int, error) {
	t := seqcut.IntermediateSize(n, m, multiplier)
	pBase := seqcut.MinSuccessInOneTrial(t)

	raw := float64(n) * float64(n) * math.Log(1/(1-successProbability)) /
		(multiplier * multiplier * float64(m) * pBase)
	if math.IsNaN(raw) || raw > math.MaxInt32 {
		return 0, ErrTrialOverflow
	}

	trials := int(math.Ceil(raw))
	if trials < 1 {
		trials = 1
	}

	return trials, nil
}

// lowConcurrency reports whether the trial count forces the replicated
// sequential mode: there are not enough workers to give every trial even the
// minimum group.
func lowConcurrency(workers, totalTrials int) bool {
	return workers < MinGroupSize*totalTrials
}

func minWeight(a, b core.Weight) core.Weight {
	if a < b {
		return a
	}

	return b
}

func maxSeconds(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

// Run computes an upper bound on the minimum cut of input with the requested
// success probability, spawning opts.Workers cooperating workers.
func Run(input Input, opts Options) (Result, error) {
	if input == nil {
		return Result{}, ErrNilInput
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	n, m := input.VertexCount(), input.EdgeCount()
	if n < 2 || m < 1 {
		return Result{}, ErrInputTooSmall
	}

	totalTrials, err := NumberOfTrials(n, m, opts.SuccessProbability, opts.BaseCaseMultiplier)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Input:      input.Name(),
		Seed:       opts.Seed,
		Processors: opts.Workers,
		Vertices:   n,
		Edges:      m,
	}

	runErr := comm.Run(opts.Workers, func(c *comm.Comm) error {
		if lowConcurrency(opts.Workers, totalTrials) {
			return runLowConcurrency(c, input, opts, totalTrials, &result)
		}

		return runHighConcurrency(c, input, opts, totalTrials, &result)
	})
	if runErr != nil {
		return Result{}, runErr
	}

	return result, nil
}

// runLowConcurrency broadcasts the whole edge list and runs ⌈T/p⌉ sequential
// square-root trials per worker. Only rank 0 fills the shared result.
func runLowConcurrency(c *comm.Comm, input Input, opts Options, totalTrials int, result *Result) error {
	trials := (totalTrials + c.Size() - 1) / c.Size()

	var edges []core.Edge
	if c.Rank() == 0 {
		edges = input.LoadSlice(0, 1, opts.Seed)
	}

	comm.Barrier(c)
	start := time.Now()

	// Broadcast payloads are shared read-only memory; the copy-on-write
	// graph views below never touch it.
	edges = comm.Bcast(c, 0, edges)

	n := input.VertexCount()
	m := input.EdgeCount()
	target := seqcut.IntermediateSize(n, m, opts.BaseCaseMultiplier)
	r := rng.FromSeed(opts.Seed + int64(c.Rank()))

	local := core.MaxWeight
	for i := 0; i < trials; i++ {
		cut, err := seqcut.SquareRootTrial(core.GraphFromEdges(n, edges), r, target)
		if err != nil {
			return err
		}
		local = minWeight(local, cut)
	}

	weight, isRoot := comm.Reduce(c, 0, local, minWeight)
	cutting := time.Since(start).Seconds()
	commSeconds, _ := comm.Reduce(c, 0, c.CollectiveSeconds(), maxSeconds)

	if isRoot {
		result.Weight = weight
		result.Variant = LowConcurrency
		result.Trials = trials
		result.CuttingSeconds = cutting
		result.CommSeconds = commSeconds
	}

	return nil
}

// runHighConcurrency arranges workers into power-of-two groups, one trial
// pipeline per group, and min-reduces the group candidates across the world.
func runHighConcurrency(c *comm.Comm, input Input, opts Options, totalTrials int, result *Result) error {
	world := c
	p := world.Size()
	rank := world.Rank()

	processorsPerTrial := p / totalTrials
	groupSize := 1
	for groupSize*2 <= processorsPerTrial {
		groupSize *= 2
	}
	groupCount := p / groupSize

	// Up to groupSize-1 workers do not fit the grouping; they join the odd
	// communicator and only participate in the final world reductions.
	if rank >= groupSize*groupCount {
		world.Split(oddColor, 0)
		world.Split(oddColor, 0)
		comm.Barrier(world)

		if _, err := finishWorld(world, core.MaxWeight, time.Now(), result); err != nil {
			return err
		}

		return nil
	}

	r := rng.FromSeed(opts.Seed + int64(rank))
	samplingSeed := r.Int63()
	contractSeed := r.Int63()

	groupColor := rank % groupCount
	group := world.Split(groupColor, 0)
	equivalence := world.Split(group.Rank(), 0)

	n, m := input.VertexCount(), input.EdgeCount()
	target := seqcut.IntermediateSize(n, m, opts.BaseCaseMultiplier)

	sampler, err := iss.NewWeighted(group, iss.Config{
		Seed:        samplingSeed,
		TargetSize:  target,
		VertexCount: n,
		EdgeCount:   m,
	})
	if err != nil {
		return err
	}

	// Group 0 loads from the input; its workers then share their slices with
	// the equal-rank workers of every other group.
	if groupColor == 0 {
		sampler.SetSlice(input.LoadSlice(group.Rank(), groupSize, samplingSeed))
	}
	comm.Barrier(world)
	start := time.Now()
	if groupColor == 0 {
		sampler.BroadcastSlice(equivalence)
	} else {
		sampler.ReceiveSlice(equivalence)
	}

	if err = sampler.Shrink(); err != nil {
		return err
	}
	matrix, err := sampler.Reduce()
	if err != nil {
		return err
	}

	candidate, err := contract.ParallelCut(group, matrix, rcTrialsPerGroup, contractSeed)
	if err != nil {
		return err
	}

	isRoot, err := finishWorld(world, candidate, start, result)
	if err != nil {
		return err
	}
	if isRoot {
		result.Variant = HighConcurrency
		result.Trials = rcTrialsPerGroup
	}

	return nil
}

// finishWorld performs the world-wide reductions every worker participates
// in: the minimum over cut candidates and the maximum over collective time.
// The world root fills the shared result.
func finishWorld(world *comm.Comm, candidate core.Weight, start time.Time, result *Result) (bool, error) {
	weight, isRoot := comm.Reduce(world, 0, candidate, minWeight)
	cutting := time.Since(start).Seconds()
	commSeconds, _ := comm.Reduce(world, 0, world.CollectiveSeconds(), maxSeconds)

	if isRoot {
		result.Weight = weight
		result.CuttingSeconds = cutting
		result.CommSeconds = commSeconds
	}

	return isRoot, nil
}
