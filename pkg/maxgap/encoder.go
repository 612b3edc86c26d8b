package maxgap

import (
	"context"

	"github.com/gitrdm/gopenaltymodel/internal/lra"
)

// feasibleEntry holds one feasible decision tuple's enumerated energy
// expressions (one per auxiliary assignment) and its target ground
// energy: some auxiliary assignment must reach the target exactly.
type feasibleEntry struct {
	config Configuration
	exprs  []*lra.LinExpr
	target *lra.Rational
}

// infeasibleEntry holds one infeasible decision tuple's enumerated
// energy expressions; every one of them must clear the current gap
// candidate.
type infeasibleEntry struct {
	config Configuration
	exprs  []*lra.LinExpr
}

// encoder owns the persistent half of the constraint system: the bias
// variables, their bound rows (folded into the Var bounds themselves,
// per internal/lra's design), and the "floor" constraints that never
// change across binary-search iterations. The gap-dependent
// constraints and the designation search are layered on top by trySat
// below, which maximizer.go's binary search calls.
type encoder struct {
	ctx   *lra.Context
	H     map[string]*lra.Var
	J     map[EdgeKey]*lra.Var
	off   *lra.Var
	graph *Graph

	decisionVariables []string
	aux               []string

	feasible   []feasibleEntry
	infeasible []infeasibleEntry
}

func newEncoder(
	graph *Graph,
	decisionVariables []string,
	linRanges map[string]Range,
	quadRanges map[EdgeKey]Range,
	feasibleConfigs map[Configuration]float64,
	offBound float64,
) *encoder {
	enc := &encoder{
		ctx:               lra.NewContext(),
		H:                 make(map[string]*lra.Var, graph.NumNodes()),
		J:                 make(map[EdgeKey]*lra.Var, len(graph.Edges())),
		graph:             graph,
		decisionVariables: decisionVariables,
		aux:               auxiliaryVariables(graph, decisionVariables),
	}

	for _, v := range graph.Nodes() {
		r := linRanges[v]
		enc.H[v] = enc.ctx.NewVar("H_"+v, lra.RFloat(r.Lo), lra.RFloat(r.Hi))
	}
	for _, e := range graph.Edges() {
		r := quadRanges[e]
		enc.J[e] = enc.ctx.NewVar("J_"+e.String(), lra.RFloat(r.Lo), lra.RFloat(r.Hi))
	}
	enc.off = enc.ctx.NewVar("Off", lra.RFloat(-offBound), lra.RFloat(offBound))

	auxRows := auxAssignments(enc.aux)

	for _, dTuple := range allSpinTuples(len(decisionVariables)) {
		cfg, _ := NewConfiguration(dTuple)
		exprs := make([]*lra.LinExpr, len(auxRows))
		for i, auxSpins := range auxRows {
			spins := fullSpins(decisionVariables, dTuple, enc.aux, auxSpins)
			exprs[i] = buildEnergyExpr(graph, enc.H, enc.J, enc.off, spins)
		}

		if target, ok := feasibleConfigs[cfg]; ok {
			targetR := lra.RFloat(target)
			for _, e := range exprs {
				enc.ctx.Assert(lra.GeqC(e, targetR))
			}
			enc.feasible = append(enc.feasible, feasibleEntry{config: cfg, exprs: exprs, target: targetR})
		} else {
			enc.infeasible = append(enc.infeasible, infeasibleEntry{config: cfg, exprs: exprs})
		}
	}

	return enc
}

// auxiliaryVariables returns the graph's nodes that are not decision
// variables, in graph insertion order, giving a stable bit-ordering for
// auxAssignments.
func auxiliaryVariables(graph *Graph, decisionVariables []string) []string {
	isDecision := make(map[string]bool, len(decisionVariables))
	for _, d := range decisionVariables {
		isDecision[d] = true
	}
	var aux []string
	for _, v := range graph.Nodes() {
		if !isDecision[v] {
			aux = append(aux, v)
		}
	}
	return aux
}

// allSpinTuples enumerates every +1/-1 tuple of the given arity, in the
// same bit-ordering convention as auxAssignments.
func allSpinTuples(k int) [][]int {
	return auxAssignments(make([]string, k))
}

// trySat asserts gap-dependent constraints for candidate g, searches
// for a consistent designation of each feasible tuple's responsible
// auxiliary assignment, and reports whether the whole system is
// satisfiable. All assertions made here are rolled back via Backtrack
// before returning, so repeated calls at different g never accumulate
// state across binary-search iterations against the same persistent
// floor constraints.
func (enc *encoder) trySat(goCtx context.Context, g *lra.Rational) (lra.Model, bool, error) {
	mark := enc.ctx.Mark()
	defer enc.ctx.Backtrack(mark)

	for _, inf := range enc.infeasible {
		for _, e := range inf.exprs {
			enc.ctx.Assert(lra.GeqC(e, g))
		}
	}

	return enc.designationSearch(goCtx, 0)
}

// designationSearch is the finite, sound-and-complete backtracking
// search needed to discharge "some auxiliary assignment reaches ground
// exactly" for each feasible tuple, since linear real arithmetic has no
// native disjunction. It is realized as plain recursion over a
// stack-of-choice-points pattern (Context.Mark/Backtrack): the
// recursion goes one level per feasible tuple, and each level tries up
// to 2^|A| candidates (the auxiliary-count cap of 20 bounds that
// branching factor).
func (enc *encoder) designationSearch(goCtx context.Context, idx int) (lra.Model, bool, error) {
	if idx == len(enc.feasible) {
		return enc.ctx.CheckSat(goCtx)
	}

	entry := enc.feasible[idx]
	for _, e := range entry.exprs {
		mark := enc.ctx.Mark()
		enc.ctx.Assert(lra.EqC(e, entry.target))

		if _, sat, err := enc.ctx.CheckSat(goCtx); err != nil {
			return nil, false, err
		} else if sat {
			if model, ok, err := enc.designationSearch(goCtx, idx+1); err != nil {
				return nil, false, err
			} else if ok {
				return model, true, nil
			}
		}

		enc.ctx.Backtrack(mark)
	}

	return nil, false, nil
}
