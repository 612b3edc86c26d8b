package lra

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Var is a symbolic real variable bounded to a closed interval [Lo, Hi].
// Every variable must carry finite bounds so the simplex engine in
// simplex.go never needs to reason about unbounded variables.
type Var struct {
	id       int
	name     string
	lo, hi   *big.Rat
}

// ID returns the variable's identity within its owning Context.
func (v *Var) ID() int { return v.id }

// Name returns the variable's debug name (may be empty).
func (v *Var) Name() string { return v.name }

// Bounds returns the variable's lower and upper bound.
func (v *Var) Bounds() (*big.Rat, *big.Rat) { return v.lo, v.hi }

func (v *Var) String() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("v%d", v.id)
}

// LinExpr is a linear combination Σ coeff_i * var_i + constant over a
// Context's variables. Callers build a LinExpr, then hand it to
// Context.Assert as part of a Constraint.
type LinExpr struct {
	terms    map[int]*big.Rat // var id -> coefficient
	vars     map[int]*Var     // var id -> Var, kept so Constraint can report names
	constant *big.Rat
}

// NewExpr returns the zero expression (constant 0, no terms).
func NewExpr() *LinExpr {
	return &LinExpr{
		terms:    make(map[int]*big.Rat),
		vars:     make(map[int]*Var),
		constant: new(big.Rat),
	}
}

// Term adds coeff*v to the expression, accumulating into any existing
// coefficient for v. Returns the receiver for chaining.
func (e *LinExpr) Term(v *Var, coeff *big.Rat) *LinExpr {
	if existing, ok := e.terms[v.id]; ok {
		existing.Add(existing, coeff)
	} else {
		c := new(big.Rat).Set(coeff)
		e.terms[v.id] = c
		e.vars[v.id] = v
	}
	return e
}

// Plus adds the terms and constant of other into the receiver.
func (e *LinExpr) Plus(other *LinExpr) *LinExpr {
	for id, coeff := range other.terms {
		e.Term(other.vars[id], coeff)
	}
	e.constant.Add(e.constant, other.constant)
	return e
}

// AddConst adds a constant offset to the expression.
func (e *LinExpr) AddConst(c *big.Rat) *LinExpr {
	e.constant.Add(e.constant, c)
	return e
}

// Clone returns a deep copy of the expression.
func (e *LinExpr) Clone() *LinExpr {
	out := NewExpr()
	for id, coeff := range e.terms {
		out.terms[id] = new(big.Rat).Set(coeff)
		out.vars[id] = e.vars[id]
	}
	out.constant.Set(e.constant)
	return out
}

// Negate returns -e as a new expression (e is left unmodified).
func (e *LinExpr) Negate() *LinExpr {
	out := e.Clone()
	for _, c := range out.terms {
		c.Neg(c)
	}
	out.constant.Neg(out.constant)
	return out
}

// String renders the expression deterministically (terms sorted by var id)
// for reproducible diagnostics and tests.
func (e *LinExpr) String() string {
	ids := make([]int, 0, len(e.terms))
	for id := range e.terms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("(%s)*%s", e.terms[id].RatString(), e.vars[id]))
	}
	if e.constant.Sign() != 0 || len(parts) == 0 {
		parts = append(parts, e.constant.RatString())
	}
	return strings.Join(parts, " + ")
}

// Op identifies the relational operator of a Constraint.
type Op int

const (
	// OpEq is the equality relation: Expr = RHS.
	OpEq Op = iota
	// OpLeq is the at-most relation: Expr <= RHS.
	OpLeq
	// OpGeq is the at-least relation: Expr >= RHS.
	OpGeq
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpLeq:
		return "<="
	case OpGeq:
		return ">="
	default:
		return "?"
	}
}

// Constraint is a single linear relation Expr Op RHS asserted into a
// Context. Constraints are immutable once built.
type Constraint struct {
	Expr *LinExpr
	Op   Op
	RHS  *big.Rat
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s %s %s", c.Expr, c.Op, c.RHS.RatString())
}

// EqC builds an Expr = rhs constraint.
func EqC(e *LinExpr, rhs *big.Rat) Constraint { return Constraint{Expr: e, Op: OpEq, RHS: rhs} }

// LeqC builds an Expr <= rhs constraint.
func LeqC(e *LinExpr, rhs *big.Rat) Constraint { return Constraint{Expr: e, Op: OpLeq, RHS: rhs} }

// GeqC builds an Expr >= rhs constraint.
func GeqC(e *LinExpr, rhs *big.Rat) Constraint { return Constraint{Expr: e, Op: OpGeq, RHS: rhs} }
