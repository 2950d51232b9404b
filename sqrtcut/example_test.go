package sqrtcut_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/graphio"
	"github.com/katalvlaran/mincut/sqrtcut"
)

// ExampleRun cuts a tiny bridged graph: two triangles connected by a single
// light edge. The bridge is the minimum cut.
func ExampleRun() {
	edges := []core.Edge{
		{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: 4}, {From: 0, To: 2, Weight: 4},
		{From: 3, To: 4, Weight: 4}, {From: 4, To: 5, Weight: 4}, {From: 3, To: 5, Weight: 4},
		{From: 2, To: 3, Weight: 1},
	}
	input := graphio.NewMemory("bridged", 6, edges)

	opts := sqrtcut.DefaultOptions()
	opts.Workers = 2
	opts.Seed = 42

	result, err := sqrtcut.Run(input, opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(result.Weight)
	// Output: 1
}
