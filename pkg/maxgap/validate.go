package maxgap

import "math"

// maxAuxiliaryVars caps |V|-|D|, the number of auxiliary spins. Each
// feasible decision tuple enumerates 2^|A| auxiliary assignments during
// both constraint encoding and designation search (energy.go,
// encoder.go), so this is the generator's dominant cost; beyond this
// cap a single Generate call stops being reasonable to serve
// synchronously.
const maxAuxiliaryVars = 20

func validateInputs(
	graph *Graph,
	decisionVariables []string,
	linRanges map[string]Range,
	quadRanges map[EdgeKey]Range,
	feasible map[Configuration]float64,
	minClassicalGap float64,
) error {
	if graph == nil {
		return newInvalidInput("graph", "must not be nil")
	}
	if len(decisionVariables) == 0 {
		return newInvalidInput("decision_variables", "must be non-empty")
	}

	seen := make(map[string]bool, len(decisionVariables))
	for i, d := range decisionVariables {
		if !graph.HasNode(d) {
			return newInvalidInput("decision_variables", "entry %d (%q) is not a node of graph", i, d)
		}
		if seen[d] {
			return newInvalidInput("decision_variables", "entry %d (%q) is duplicated", i, d)
		}
		seen[d] = true
	}

	numAux := graph.NumNodes() - len(decisionVariables)
	if numAux < 0 {
		return newInvalidInput("decision_variables", "names more variables than graph has nodes")
	}
	if numAux > maxAuxiliaryVars {
		return newInvalidInput("graph", "has %d auxiliary variables, exceeding the %d this generator will enumerate", numAux, maxAuxiliaryVars)
	}

	for _, v := range graph.Nodes() {
		r, ok := linRanges[v]
		if !ok {
			return newInvalidInput("linear_energy_ranges", "missing entry for node %q", v)
		}
		if !r.valid() {
			return newInvalidInput("linear_energy_ranges", "range for node %q is invalid (lo=%v hi=%v)", v, r.Lo, r.Hi)
		}
	}

	for _, e := range graph.Edges() {
		r, ok := quadRanges[e]
		if !ok {
			return newInvalidInput("quadratic_energy_ranges", "missing entry for edge %s", e)
		}
		if !r.valid() {
			return newInvalidInput("quadratic_energy_ranges", "range for edge %s is invalid (lo=%v hi=%v)", e, r.Lo, r.Hi)
		}
	}

	if len(feasible) == 0 {
		return newInvalidInput("feasible_configurations", "must be non-empty")
	}
	for cfg, energy := range feasible {
		if cfg.Arity() != len(decisionVariables) {
			return newInvalidInput("feasible_configurations", "configuration %q has arity %d, want %d", string(cfg), cfg.Arity(), len(decisionVariables))
		}
		if isNaNOrInf(energy) {
			return newInvalidInput("feasible_configurations", "configuration %q has non-finite target energy", string(cfg))
		}
	}

	if isNaNOrInf(minClassicalGap) {
		return newInvalidInput("min_classical_gap", "must be finite")
	}

	return nil
}

func maxAbs(r Range) float64 {
	return math.Max(math.Abs(r.Lo), math.Abs(r.Hi))
}
