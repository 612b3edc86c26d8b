package maxgap

import (
	"github.com/gitrdm/gopenaltymodel/internal/lra"
)

// auxAssignments enumerates every spin assignment over an ordered list
// of auxiliary variable names, as the 2^|aux| rows of a truth table:
// bit i of mask set means aux[i]=+1, clear means aux[i]=-1. Enumerating
// rather than leaving auxiliary spins symbolic keeps every asserted
// constraint linear: a symbolic spin multiplying a symbolic bias would
// push the encoding into nonlinear arithmetic this package's decision
// procedure cannot accept.
func auxAssignments(aux []string) [][]int {
	n := len(aux)
	count := 1 << uint(n)
	out := make([][]int, count)
	for mask := 0; mask < count; mask++ {
		spins := make([]int, n)
		for i := 0; i < n; i++ {
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

// fullSpins merges a decision tuple's spins and one auxiliary
// assignment into a single node -> spin map covering every node of the
// graph.
func fullSpins(decisionVariables []string, decisionSpins []int, aux []string, auxSpins []int) map[string]int {
	out := make(map[string]int, len(decisionVariables)+len(aux))
	for i, d := range decisionVariables {
		out[d] = decisionSpins[i]
	}
	for i, a := range aux {
		out[a] = auxSpins[i]
	}
	return out
}

// buildEnergyExpr builds, for one full spin assignment over every graph
// node, the symbolic classical energy
//
//	E(s) = Σ_v s_v * H_v + Σ_{(u,v) ∈ E} s_u*s_v * J_uv + Off
//
// as an internal/lra.LinExpr over the context's H/J/Off variables. The
// ground energy is fixed at the literal constant 0 by construction:
// every constraint this package asserts compares an energy expression
// against a literal target rather than against a symbolic ground
// variable, which is sound because ground can be fixed to 0 without
// loss of generality and Off absorbs the shift.
func buildEnergyExpr(graph *Graph, H map[string]*lra.Var, J map[EdgeKey]*lra.Var, off *lra.Var, spins map[string]int) *lra.LinExpr {
	e := lra.NewExpr()
	for v, s := range spins {
		e.Term(H[v], lra.R(int64(s), 1))
	}
	for _, edge := range graph.Edges() {
		s := spins[edge.U] * spins[edge.V]
		e.Term(J[edge], lra.R(int64(s), 1))
	}
	e.Term(off, lra.R(1, 1))
	return e
}
