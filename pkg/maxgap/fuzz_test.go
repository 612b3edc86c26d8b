package maxgap

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGenerate_FuzzConsistency generates small random relations (kept
// small so the corroborating brute-force grid search below stays cheap):
// Generate must either return a model satisfying every universal
// property, or report ErrImpossiblePenaltyModel — and when it does, an
// exhaustive search over a coarse bias grid must also fail to find a
// witness. This is a seeded, table-driven consistency spot-check, not a
// proof of correctness.
func TestGenerate_FuzzConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(20240417))

	const trials = 16
	for trial := 0; trial < trials; trial++ {
		numNodes := 3 + rng.Intn(2) // 3 or 4 nodes
		graph := NewGraph()
		for i := 0; i < numNodes; i++ {
			graph.AddNode(fmt.Sprint(i))
		}

		type pair struct{ a, b int }
		var pairs []pair
		for i := 0; i < numNodes; i++ {
			for k := i + 1; k < numNodes; k++ {
				pairs = append(pairs, pair{i, k})
			}
		}
		rng.Shuffle(len(pairs), func(i, k int) { pairs[i], pairs[k] = pairs[k], pairs[i] })
		numEdges := 1 + rng.Intn(min(3, len(pairs)))
		for i := 0; i < numEdges; i++ {
			require.NoError(t, graph.AddEdge(fmt.Sprint(pairs[i].a), fmt.Sprint(pairs[i].b)))
		}

		k := 1 + rng.Intn(min(3, numNodes))
		decisionVariables := make([]string, k)
		for i := 0; i < k; i++ {
			decisionVariables[i] = fmt.Sprint(i)
		}

		feasible := make(map[Configuration]float64)
		for mask := 0; mask < 1<<uint(k); mask++ {
			if rng.Float64() < 0.5 {
				spins := make([]int, k)
				for i := 0; i < k; i++ {
					if mask&(1<<uint(i)) != 0 {
						spins[i] = 1
					} else {
						spins[i] = -1
					}
				}
				c, err := NewConfiguration(spins)
				require.NoError(t, err)
				feasible[c] = 0
			}
		}
		if len(feasible) == 0 {
			spins := make([]int, k)
			for i := range spins {
				spins[i] = -1
			}
			c, err := NewConfiguration(spins)
			require.NoError(t, err)
			feasible[c] = 0
		}

		linRanges := uniformLinRanges(graph, -2, 2)
		quadRanges := uniformQuadRanges(graph, -1, 1)
		gMin := 0.25 * float64(rng.Intn(3)) // 0, 0.25, 0.5

		h, j, offset, gap, err := Generate(
			context.Background(), graph, decisionVariables, feasible,
			linRanges, quadRanges, gMin, WithEpsilon(1e-3),
		)
		if err == nil {
			checkLinRanges(t, h, linRanges)
			checkQuadRanges(t, j, quadRanges)
			verifyIsingModel(t, graph, feasible, decisionVariables, h, j, offset, gap)
			continue
		}

		require.Truef(t, errors.Is(err, ErrImpossiblePenaltyModel), "trial %d: unexpected error %v", trial, err)
		require.Falsef(t, bruteForceFeasible(graph, decisionVariables, feasible, linRanges, quadRanges, gMin),
			"trial %d: Generate reported impossible but a coarse grid search found a witness", trial)
	}
}

// bruteForceFeasible runs a coarse-grid consistency check: a small fixed
// resolution over every node's and edge's range (plus the
// offset), checked against every spin assignment of the graph. It is a
// spot-check corroborating Generate's verdict, not an independent
// decision procedure.
func bruteForceFeasible(graph *Graph, decisionVariables []string, feasible map[Configuration]float64, linRanges map[string]Range, quadRanges map[EdgeKey]Range, gMin float64) bool {
	nodes := graph.Nodes()
	edges := graph.Edges()
	const resolution = 3

	grids := make([][]float64, 0, len(nodes)+len(edges)+1)
	for _, v := range nodes {
		grids = append(grids, gridValues(linRanges[v], resolution))
	}
	for _, e := range edges {
		grids = append(grids, gridValues(quadRanges[e], resolution))
	}
	grids = append(grids, gridValues(Range{Lo: -4, Hi: 4}, resolution))

	allSpins := enumerateSpins(len(nodes))
	idx := make([]int, len(grids))

	var search func(pos int) bool
	search = func(pos int) bool {
		if pos == len(grids) {
			h := make(map[string]float64, len(nodes))
			for i, v := range nodes {
				h[v] = grids[i][idx[i]]
			}
			j := make(map[EdgeKey]float64, len(edges))
			for i, e := range edges {
				j[e] = grids[len(nodes)+i][idx[len(nodes)+i]]
			}
			offset := grids[len(nodes)+len(edges)][idx[len(nodes)+len(edges)]]
			return checkWitness(graph, nodes, allSpins, decisionVariables, feasible, h, j, offset, gMin)
		}
		for i := range grids[pos] {
			idx[pos] = i
			if search(pos + 1) {
				return true
			}
		}
		return false
	}
	return search(0)
}

func gridValues(r Range, resolution int) []float64 {
	if resolution <= 1 {
		return []float64{(r.Lo + r.Hi) / 2}
	}
	out := make([]float64, resolution)
	step := (r.Hi - r.Lo) / float64(resolution-1)
	for i := 0; i < resolution; i++ {
		out[i] = r.Lo + step*float64(i)
	}
	return out
}

func enumerateSpins(n int) [][]int {
	out := make([][]int, 1<<uint(n))
	for mask := range out {
		spins := make([]int, n)
		for i := range spins {
			if mask&(1<<uint(i)) != 0 {
				spins[i] = 1
			} else {
				spins[i] = -1
			}
		}
		out[mask] = spins
	}
	return out
}

// checkWitness reports whether the concrete (h, J, offset) realizes every
// feasible configuration at a common ground energy and clears gMin
// against every infeasible one.
func checkWitness(graph *Graph, nodes []string, allSpins [][]int, decisionVariables []string, feasible map[Configuration]float64, h map[string]float64, j map[EdgeKey]float64, offset, gMin float64) bool {
	const tol = 1e-6
	bestPerConfig := make(map[Configuration]float64)
	minEnergy := math.Inf(1)

	for _, spins := range allSpins {
		spinMap := make(map[string]int, len(nodes))
		for i, v := range nodes {
			spinMap[v] = spins[i]
		}
		e := classicalEnergy(graph, h, j, offset, spinMap)
		if e < minEnergy {
			minEnergy = e
		}

		dSpins := make([]int, len(decisionVariables))
		for i, d := range decisionVariables {
			dSpins[i] = spinMap[d]
		}
		c, err := NewConfiguration(dSpins)
		if err != nil {
			continue
		}
		if cur, ok := bestPerConfig[c]; !ok || e < cur {
			bestPerConfig[c] = e
		}
	}

	for c, target := range feasible {
		got, ok := bestPerConfig[c]
		if !ok || math.Abs(got-(minEnergy+target)) > tol {
			return false
		}
	}
	for c, got := range bestPerConfig {
		if _, ok := feasible[c]; ok {
			continue
		}
		if got < minEnergy+gMin-tol {
			return false
		}
	}
	return true
}
