package maxgap

import "math"

// energyBounds derives the finite bounds every internal/lra.Var needs
// (the decision procedure has no notion of an unbounded variable) from
// the caller's linear/quadratic ranges alone:
//
//   - biasBound is the largest magnitude any single assignment's
//     energy contribution can reach: Σ max(|lo_v|,|hi_v|) over nodes
//     plus the same over edges. Any classical energy, for any spin
//     assignment and any in-range choice of H/J, lies in
//     [-biasBound, biasBound] before Off is added.
//   - gapUpperBound is the loose-but-sound ceiling the binary search
//     starts from: no classical gap can exceed twice biasBound, since
//     ground and every infeasible energy both lie within
//     [-biasBound, biasBound] relative to a common Off.
//   - offBound is how far Off itself may need to range to let some
//     feasible tuple's energy land exactly on its target while H, J
//     range freely inside their own bounds; biasBound plus a margin
//     covering the requested gap and target energies is sound.
func energyBounds(graph *Graph, linRanges map[string]Range, quadRanges map[EdgeKey]Range, targets map[Configuration]float64, minClassicalGap float64) (biasBound, gapUpperBound, offBound float64) {
	for _, v := range graph.Nodes() {
		biasBound += maxAbs(linRanges[v])
	}
	for _, e := range graph.Edges() {
		biasBound += maxAbs(quadRanges[e])
	}

	maxTarget := 0.0
	for _, f := range targets {
		if a := math.Abs(f); a > maxTarget {
			maxTarget = a
		}
	}

	gapUpperBound = 2 * biasBound
	offBound = biasBound + maxTarget + math.Max(0, minClassicalGap) + 1
	return biasBound, gapUpperBound, offBound
}
