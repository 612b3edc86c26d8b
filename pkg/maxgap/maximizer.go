package maxgap

import (
	"context"
	"errors"
	"time"

	"github.com/gitrdm/gopenaltymodel/internal/lra"
)

// Option configures a Generate call, following the functional-options
// With... family convention.
type Option func(*genConfig)

type genConfig struct {
	solverName string
	epsilon    float64
	timeLimit  time.Duration
	nodeLimit  int
}

func defaultConfig() *genConfig {
	return &genConfig{
		solverName: "native",
		epsilon:    1e-6,
	}
}

// WithSolverName selects the backend the binary search's feasibility
// queries are dispatched to. "native" (the default) and the literal
// string "z3" both resolve to this module's own exact-rational engine.
// Any other name is rejected with a *SolverError.
func WithSolverName(name string) Option {
	return func(c *genConfig) { c.solverName = name }
}

// WithEpsilon sets the binary search's convergence tolerance on the
// classical gap: the search stops once its upper and lower bounds are
// within eps of each other. Defaults to 1e-6.
func WithEpsilon(eps float64) Option {
	return func(c *genConfig) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}

// WithTimeLimit bounds wall-clock time spent in the gap maximizer; on
// expiry Generate returns the best model found so far alongside
// ErrLimitReached.
func WithTimeLimit(d time.Duration) Option {
	return func(c *genConfig) { c.timeLimit = d }
}

// WithNodeLimit bounds the number of binary-search iterations (each
// iteration is one full designation search at a candidate gap value).
func WithNodeLimit(n int) Option {
	return func(c *genConfig) { c.nodeLimit = n }
}

func resolveBackend(name string) (string, error) {
	switch name {
	case "", "native", "z3":
		return "native", nil
	default:
		return "", &SolverError{Backend: name, Err: errUnsupportedBackend}
	}
}

var errUnsupportedBackend = errors.New("unrecognized smt_solver_name")

// maximizeGap binary-searches the classical gap G: L starts at
// max(minClassicalGap,0), U starts at the sound ceiling gapUpperBound,
// and each iteration asks the encoder whether some choice of biases
// reaches the midpoint gap. The search narrows until U-L<epsilon or a
// caller limit expires.
//
// It returns the best satisfying Model found (at the highest gap value
// proven reachable) — callers should not report the search's own
// midpoint value as the final answer; extractModel recomputes the true
// classical gap from the extracted biases, since the search's midpoint
// is an approximation vehicle, not the answer.
func maximizeGap(ctx context.Context, enc *encoder, minClassicalGap, gapUpperBound float64, cfg *genConfig) (lra.Model, error) {
	l := minClassicalGap
	if l < 0 {
		l = 0
	}
	u := gapUpperBound

	var deadline time.Time
	if cfg.timeLimit > 0 {
		deadline = time.Now().Add(cfg.timeLimit)
	}

	floorModel, ok, err := enc.trySat(ctx, lra.RFloat(l))
	if err != nil {
		return nil, &SolverError{Backend: cfg.solverName, Err: err}
	}
	if !ok {
		return nil, ErrImpossiblePenaltyModel
	}

	best := floorModel
	iterations := 0
	for u-l > cfg.epsilon {
		if cfg.nodeLimit > 0 && iterations >= cfg.nodeLimit {
			return best, ErrLimitReached
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return best, ErrLimitReached
		}
		select {
		case <-ctx.Done():
			return best, &SolverError{Backend: cfg.solverName, Err: ctx.Err()}
		default:
		}

		mid := l + (u-l)/2
		iterations++

		model, ok, err := enc.trySat(ctx, lra.RFloat(mid))
		if err != nil {
			return nil, &SolverError{Backend: cfg.solverName, Err: err}
		}
		if ok {
			l = mid
			best = model
		} else {
			u = mid
		}
	}

	return best, nil
}
