package maxgap

import (
	"github.com/gitrdm/gopenaltymodel/internal/lra"
)

// extractModel reads H_v and J_uv directly off the satisfying witness,
// reads offset as model(Off) (ground is fixed at the literal 0 by
// construction — see energy.go's doc comment — so there is no separate
// ground value to subtract off), and recomputes the classical gap from
// those extracted biases rather than trusting the search midpoint that
// happened to locate this model, so the reported gap is always
// reproducible from the reported biases alone.
func extractModel(model lra.Model, enc *encoder) (h map[string]float64, j map[EdgeKey]float64, offset, gap float64) {
	h = make(map[string]float64, len(enc.H))
	for v, vv := range enc.H {
		h[v] = model.Float(vv)
	}
	j = make(map[EdgeKey]float64, len(enc.J))
	for e, vv := range enc.J {
		j[e] = model.Float(vv)
	}
	offset = model.Float(enc.off)

	gap = classicalGap(enc, h, j, offset)
	return h, j, offset, gap
}

// classicalGap computes min over every infeasible decision tuple and
// every auxiliary assignment of that assignment's classical energy,
// using plain float64 arithmetic over the already-extracted biases
// rather than the LRA search variable that located the model. Ground
// is 0 by construction, so this value is already the gap, not
// ground+gap.
func classicalGap(enc *encoder, h map[string]float64, j map[EdgeKey]float64, offset float64) float64 {
	best := 0.0
	first := true
	aux := enc.aux
	auxRows := auxAssignments(aux)
	for _, inf := range enc.infeasible {
		dSpins := inf.config.Spins()
		for _, auxSpins := range auxRows {
			spins := fullSpins(enc.decisionVariables, dSpins, aux, auxSpins)
			e := classicalEnergy(enc.graph, h, j, offset, spins)
			if first || e < best {
				best = e
				first = false
			}
		}
	}
	return best
}

func classicalEnergy(graph *Graph, h map[string]float64, j map[EdgeKey]float64, offset float64, spins map[string]int) float64 {
	e := offset
	for v, s := range spins {
		e += float64(s) * h[v]
	}
	for _, edge := range graph.Edges() {
		e += float64(spins[edge.U]*spins[edge.V]) * j[edge]
	}
	return e
}
