// Command maxgapdemo is a minimal command-line smoke test for
// pkg/maxgap.Generate: it builds a singleton relation (one decision
// variable, no graph edges) and prints the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gitrdm/gopenaltymodel/pkg/maxgap"
)

func main() {
	gMin := flag.Float64("min-gap", -2, "minimum classical gap to require")
	timeout := flag.Duration("timeout", 5*time.Second, "wall-clock budget for the gap maximizer")
	flag.Parse()

	graph := maxgap.NewGraph()
	graph.AddNode("a")

	c, err := maxgap.NewConfiguration([]int{-1})
	if err != nil {
		log.Fatal(err)
	}
	feasible := map[maxgap.Configuration]float64{c: -1}
	linRanges := map[string]maxgap.Range{"a": {Lo: -2, Hi: 2}}
	quadRanges := map[maxgap.EdgeKey]maxgap.Range{}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	h, j, offset, gap, err := maxgap.Generate(ctx, graph, []string{"a"}, feasible, linRanges, quadRanges, *gMin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("gap=%.6f offset=%.6f h[a]=%.6f edges=%d\n", gap, offset, h["a"], len(j))
}
