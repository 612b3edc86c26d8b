package maxgap

import (
	"context"
)

// Generate builds a maximum-gap penalty model for a relation over the
// given interaction graph.
//
//   - graph fixes the allowed quadratic couplings; its nodes are every
//     spin variable the model covers (decision variables plus, if
//     present, auxiliary variables).
//   - decisionVariables names, in order, the k nodes of graph whose
//     spin values the relation constrains; every other node of graph is
//     treated as an auxiliary variable.
//   - feasibleConfigurations maps each feasible decision-variable spin
//     tuple to its required ground energy offset F[d] (commonly 0 for
//     every tuple, but per-tuple targets are allowed).
//   - linRanges and quadRanges bound each node's linear bias and each
//     edge's quadratic bias, respectively; every graph node and edge
//     must have an entry.
//   - minClassicalGap is the floor the maximized gap must clear; if no
//     model reaches it, Generate returns ErrImpossiblePenaltyModel.
//   - opts configures the solver backend name, convergence epsilon, and
//     optional time/node limits (maximizer.go).
//
// On success, Generate returns the linear bias of every graph node, the
// quadratic bias of every graph edge, and the constant offset, read from
// the witness model, and the maximized classical gap, recomputed
// classically from those biases rather than read back from an internal
// search variable, so the returned quadruple is always internally
// consistent.
func Generate(
	ctx context.Context,
	graph *Graph,
	decisionVariables []string,
	feasibleConfigurations map[Configuration]float64,
	linRanges map[string]Range,
	quadRanges map[EdgeKey]Range,
	minClassicalGap float64,
	opts ...Option,
) (h map[string]float64, j map[EdgeKey]float64, offset float64, gap float64, err error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateInputs(graph, decisionVariables, linRanges, quadRanges, feasibleConfigurations, minClassicalGap); err != nil {
		return nil, nil, 0, 0, err
	}

	backend, err := resolveBackend(cfg.solverName)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	cfg.solverName = backend

	_, gapUpperBound, offBound := energyBounds(graph, linRanges, quadRanges, feasibleConfigurations, minClassicalGap)

	enc := newEncoder(graph, decisionVariables, linRanges, quadRanges, feasibleConfigurations, offBound)

	model, err := maximizeGap(ctx, enc, minClassicalGap, gapUpperBound, cfg)
	if model == nil {
		return nil, nil, 0, 0, err
	}

	h, j, offset, gap = extractModel(model, enc)
	return h, j, offset, gap, err
}
