// Package lra implements a small, exact quantifier-free linear real
// arithmetic (QF_LRA) decision procedure: given a set of bounded real
// variables and linear equality/inequality constraints over them,
// decide satisfiability and, if satisfiable, produce a witness model.
//
// Rather than shelling out to or linking an external solver, the engine
// is hand-rolled: a two-phase primal simplex over exact rationals.
//
// All arithmetic is performed with math/big.Rat so that satisfiability
// verdicts are exact: no floating-point rounding can turn a feasible
// system infeasible (or vice versa) near a boundary, which matters a
// great deal when the caller is about to binary-search a gap value
// against this engine's verdicts.
package lra

import "math/big"

// Rational is a thin, named alias over *big.Rat used at this package's
// API boundary so callers never need to import math/big directly to
// build a Context.
type Rational = big.Rat

// R builds a Rational from a numerator and denominator.
func R(num, den int64) *Rational {
	return new(big.Rat).SetFrac64(num, den)
}

// RFloat builds a Rational approximating a float64. Used at the
// boundary where callers supply ranges and gap targets as plain
// float64 values.
func RFloat(f float64) *Rational {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		// SetFloat64 returns nil on NaN/Inf; callers validate those away
		// before reaching here, so this is defensive rather than
		// load-bearing.
		return new(big.Rat)
	}
	return r
}

// toFloat normalizes a Rational to a double-precision float64, the
// representation values are reported in at the package boundary.
func toFloat(r *Rational) float64 {
	f, _ := r.Float64()
	return f
}
