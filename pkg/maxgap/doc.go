// Package maxgap generates maximum-gap penalty models for Ising-style
// binary optimization hardware.
//
// Given a relation expressed as a set of feasible spin assignments over
// a handful of decision variables, embedded in an interaction graph
// that restricts which variable pairs may carry a quadratic coupling,
// Generate produces linear biases h, quadratic biases J, a constant
// offset, and the classical gap g such that every feasible assignment
// reaches the same ground energy, every infeasible assignment is at
// least ground+g above it, g is the largest value achievable subject to
// a caller-supplied floor, and every bias stays within caller-supplied
// per-node and per-edge ranges.
//
// The package is organized the way a constraint solver organizes
// itself: a model of symbolic variables and constraints
// (internal/lra's bounded linear-real-arithmetic Context), a constraint
// encoder (encoder.go), and an optimization loop layered on top of
// repeated satisfiability queries (maximizer.go, a binary search driving
// branch-and-bound-style backtracking).
//
// Generate is pure with respect to observable side effects: each call
// creates its own internal/lra.Context and discards it on return. There
// is no persistent state, no global solver registry, and no logging —
// callers that want to bound a long-running Generate call can pass a
// cancellable context.Context or the WithTimeLimit/WithNodeLimit options
// and inspect the returned ErrLimitReached case.
//
//go:generate go run ../../scripts/generate_examples_manifest -pkg . -out examples_index.json
package maxgap
