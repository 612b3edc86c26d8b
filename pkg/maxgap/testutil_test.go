package maxgap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chimeraUnitCell builds the complete bipartite graph a (1,1,t) chimera
// tile reduces to: shore A = {0..t-1}, shore B = {t..2t-1}, every A-B
// pair an edge.
func chimeraUnitCell(tShore int) *Graph {
	g := NewGraph()
	for a := 0; a < tShore; a++ {
		for b := tShore; b < 2*tShore; b++ {
			_ = g.AddEdge(strconv.Itoa(a), strconv.Itoa(b))
		}
	}
	return g
}

func completeGraph(n int) *Graph {
	g := NewGraph()
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			_ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(k))
		}
	}
	return g
}

func uniformLinRanges(g *Graph, lo, hi float64) map[string]Range {
	out := make(map[string]Range)
	for _, v := range g.Nodes() {
		out[v] = Range{Lo: lo, Hi: hi}
	}
	return out
}

func uniformQuadRanges(g *Graph, lo, hi float64) map[EdgeKey]Range {
	out := make(map[EdgeKey]Range)
	for _, e := range g.Edges() {
		out[e] = Range{Lo: lo, Hi: hi}
	}
	return out
}

func cfg(t *testing.T, spins ...int) Configuration {
	t.Helper()
	c, err := NewConfiguration(spins)
	require.NoError(t, err)
	return c
}

// verifyIsingModel brute-forces ground/gap behavior over every spin
// assignment of the graph, the same consistency check the original
// Python suite runs with dimod.ExactSolver (test_generation.py's
// check_generated_ising_model), adapted to this package's Go types.
// Ground is 0 in every returned model, so each feasible configuration
// must sit exactly at its target energy and every infeasible one at or
// above gap.
func verifyIsingModel(t *testing.T, graph *Graph, feasible map[Configuration]float64, decisionVariables []string, h map[string]float64, j map[EdgeKey]float64, offset, gap float64) {
	t.Helper()

	nodes := graph.Nodes()
	n := len(nodes)
	require.LessOrEqual(t, n, 16, "brute force verification only scales to small test graphs")

	bestPerConfig := make(map[Configuration]float64)

	for mask := 0; mask < 1<<uint(n); mask++ {
		spins := make(map[string]int, n)
		for i, v := range nodes {
			if mask&(1<<uint(i)) != 0 {
				spins[v] = 1
			} else {
				spins[v] = -1
			}
		}
		e := classicalEnergy(graph, h, j, offset, spins)

		dSpins := make([]int, len(decisionVariables))
		for i, d := range decisionVariables {
			dSpins[i] = spins[d]
		}
		c, err := NewConfiguration(dSpins)
		require.NoError(t, err)
		if cur, ok := bestPerConfig[c]; !ok || e < cur {
			bestPerConfig[c] = e
		}
	}

	const tol = 1e-4
	for c, target := range feasible {
		got, ok := bestPerConfig[c]
		require.Truef(t, ok, "configuration %q never observed", string(c))
		assert.InDelta(t, target, got, tol, "feasible configuration %q should sit at ground+offset", string(c))
	}
	for c, got := range bestPerConfig {
		if _, ok := feasible[c]; ok {
			continue
		}
		assert.GreaterOrEqual(t, got, gap-tol, "infeasible configuration %q should clear the gap", string(c))
	}
}

func checkLinRanges(t *testing.T, h map[string]float64, ranges map[string]Range) {
	t.Helper()
	const tol = 1e-6
	for v, bias := range h {
		r := ranges[v]
		assert.GreaterOrEqual(t, bias, r.Lo-tol)
		assert.LessOrEqual(t, bias, r.Hi+tol)
	}
}

func checkQuadRanges(t *testing.T, j map[EdgeKey]float64, ranges map[EdgeKey]Range) {
	t.Helper()
	const tol = 1e-6
	for e, bias := range j {
		r := ranges[e]
		assert.GreaterOrEqual(t, bias, r.Lo-tol)
		assert.LessOrEqual(t, bias, r.Hi+tol)
	}
}
