package maxgap

import (
	"context"
	"fmt"
)

// ExampleGenerate shows the minimal shape of a call: a two-node, one-edge
// graph, a relation with a single feasible configuration, and symmetric
// bias ranges.
func ExampleGenerate() {
	graph := NewGraph()
	_ = graph.AddEdge("in1", "in2")
	decisionVariables := []string{"in1", "in2"}

	c00, _ := NewConfiguration([]int{-1, -1})
	feasible := map[Configuration]float64{c00: 0}

	linRanges := map[string]Range{
		"in1": {Lo: -2, Hi: 2},
		"in2": {Lo: -2, Hi: 2},
	}
	quadRanges := map[EdgeKey]Range{
		NewEdgeKey("in1", "in2"): {Lo: -1, Hi: 1},
	}

	h, j, offset, gap, err := Generate(
		context.Background(), graph, decisionVariables, feasible,
		linRanges, quadRanges, 0,
	)
	if err != nil {
		fmt.Println("generate failed:", err)
		return
	}
	_ = h
	_ = j
	_ = offset
	_ = gap
}
