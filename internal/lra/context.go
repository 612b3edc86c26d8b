package lra

import (
	"context"
	"fmt"
	"math/big"
)

// Model maps variable IDs to the real value a satisfying assignment
// gives them: the witness a caller reads its biases back from.
type Model map[int]*big.Rat

// Value returns the value Model assigns to v, or nil if v was not part
// of the Context that produced this Model.
func (m Model) Value(v *Var) *big.Rat { return m[v.id] }

// Float returns the value Model assigns to v as a float64, rounded to
// the nearest double-precision value.
func (m Model) Float(v *Var) float64 {
	r := m[v.id]
	if r == nil {
		return 0
	}
	return toFloat(r)
}

// Context is a scoped linear-real-arithmetic decision context: a set of
// bounded variables and asserted constraints over them, checked for
// satisfiability by the simplex engine in simplex.go. A Context is
// created fresh per call and discarded once its caller is done with it.
//
// Context is not safe for concurrent use.
type Context struct {
	vars        []*Var
	constraints []Constraint
}

// NewContext returns an empty decision context.
func NewContext() *Context {
	return &Context{}
}

// NewVar declares a new bounded real variable. lo and hi must satisfy
// lo <= hi; callers validate this against their own ranges before
// reaching here.
func (c *Context) NewVar(name string, lo, hi *big.Rat) *Var {
	v := &Var{id: len(c.vars), name: name, lo: new(big.Rat).Set(lo), hi: new(big.Rat).Set(hi)}
	c.vars = append(c.vars, v)
	return v
}

// Assert adds constraints to the context. Constraints accumulate; there
// is no way to retract one individually except via Backtrack to an
// earlier Mark.
func (c *Context) Assert(cs ...Constraint) {
	c.constraints = append(c.constraints, cs...)
}

// Mark returns an opaque bookmark of the context's current constraint
// set, for later use with Backtrack. This is the push half of a
// push/pop incremental pattern: a caller can try a candidate constraint,
// check satisfiability, and cheaply discard it without rebuilding the
// whole constraint list.
func (c *Context) Mark() int { return len(c.constraints) }

// Backtrack discards every constraint asserted since mark, restoring
// the context to the state Mark returned mark from.
func (c *Context) Backtrack(mark int) {
	c.constraints = c.constraints[:mark]
}

// CheckSat decides satisfiability of the currently asserted constraints
// over the context's variables. It returns a witness Model when
// satisfiable. ctx is checked for cancellation/deadline before the call
// and every 2048 simplex iterations.
func (c *Context) CheckSat(ctx context.Context) (Model, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("lra: check-sat cancelled: %w", ctx.Err())
	default:
	}
	return solve(ctx, c.vars, c.constraints)
}
