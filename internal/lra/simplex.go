package lra

import (
	"context"
	"fmt"
	"math/big"
)

// solve decides feasibility of cs over vars using a two-phase primal
// simplex method in exact rational arithmetic.
//
// Every variable v is bounded ([v.lo, v.hi]); it is shifted to
// y = v - v.lo so that y ranges over [0, v.hi-v.lo], matching the
// nonnegativity convention plain simplex assumes. The shift's upper
// bound becomes an ordinary "<=" row (y <= v.hi-v.lo) rather than bound
// bookkeeping inside the tableau: this reuses the same row machinery
// every other constraint already needs, at the cost of one extra row
// per variable, which is immaterial at this problem's scale.
//
// Callers only ever need a feasibility verdict (a target value is
// asserted as a constraint and checked, never optimized for directly by
// this engine), so phase 2 (optimizing a real objective) is not
// implemented: phase 1's "minimize total artificial mass" is the whole
// algorithm.
func solve(ctx context.Context, vars []*Var, cs []Constraint) (Model, bool, error) {
	n := len(vars)
	colOfVar := make([]int, n) // vars[j].id -> column index of its shifted y
	for j, v := range vars {
		colOfVar[v.id] = j
	}

	// Column layout: [0,n) shifted vars y_j; [n,2n) bound slacks;
	// then, for each row beyond the n bound rows, its own slack/surplus
	// and/or artificial column(s).
	type rowKind int
	const (
		rowBound rowKind = iota
		rowUser
	)

	type row struct {
		coeffs    map[int]*big.Rat // column -> coeff, sparse input; densified below
		rhs       *big.Rat
		basisCol  int
		kind      rowKind
		userIndex int
	}

	rows := make([]row, 0, n+len(cs))

	// Bound rows: y_j <= hi_j - lo_j.
	for j, v := range vars {
		width := new(big.Rat).Sub(v.hi, v.lo)
		if width.Sign() < 0 {
			return nil, false, fmt.Errorf("lra: variable %s has lo > hi", v)
		}
		r := row{coeffs: map[int]*big.Rat{j: big.NewRat(1, 1)}, rhs: width, kind: rowBound}
		rows = append(rows, r)
	}

	nextCol := 2 * n // columns [n,2n) reserved for bound slacks, one per variable
	artificialCols := make(map[int]bool)

	for idx, c := range cs {
		// Substitute x_i = lo_i + y_i: adjustedRHS = RHS - expr.constant - Σ coeff_i*lo_i
		adj := new(big.Rat).Sub(c.RHS, c.Expr.constant)
		coeffs := make(map[int]*big.Rat, len(c.Expr.terms))
		for id, coeff := range c.Expr.terms {
			v := c.Expr.vars[id]
			j := colOfVar[id]
			coeffs[j] = new(big.Rat).Set(coeff)
			adj.Sub(adj, new(big.Rat).Mul(coeff, v.lo))
		}

		op := c.Op
		if adj.Sign() < 0 {
			// Flip the row so its RHS is nonnegative, per the standard
			// simplex preprocessing step.
			for j := range coeffs {
				coeffs[j].Neg(coeffs[j])
			}
			adj.Neg(adj)
			switch op {
			case OpLeq:
				op = OpGeq
			case OpGeq:
				op = OpLeq
			case OpEq:
				// stays Eq
			}
		}

		r := row{coeffs: coeffs, rhs: adj, kind: rowUser, userIndex: idx}
		switch op {
		case OpLeq:
			slackCol := nextCol
			nextCol++
			r.coeffs[slackCol] = big.NewRat(1, 1)
			r.basisCol = slackCol
		case OpGeq:
			surplusCol := nextCol
			artCol := nextCol + 1
			nextCol += 2
			r.coeffs[surplusCol] = big.NewRat(-1, 1)
			r.coeffs[artCol] = big.NewRat(1, 1)
			artificialCols[artCol] = true
			r.basisCol = artCol
		case OpEq:
			artCol := nextCol
			nextCol++
			r.coeffs[artCol] = big.NewRat(1, 1)
			artificialCols[artCol] = true
			r.basisCol = artCol
		}
		rows = append(rows, r)
	}

	// Assign basis columns for bound rows (their own slack, allocated
	// now that we know the final column count layout isn't needed for
	// them — bound-row slacks live at a fixed offset n+j).
	for j := 0; j < n; j++ {
		rows[j].coeffs[n+j] = big.NewRat(1, 1)
		rows[j].basisCol = n + j
	}

	numCols := nextCol
	numRows := len(rows)

	tab := make([][]*big.Rat, numRows)
	rhs := make([]*big.Rat, numRows)
	basis := make([]int, numRows)
	for i, r := range rows {
		tr := make([]*big.Rat, numCols)
		for k := range tr {
			tr[k] = new(big.Rat)
		}
		for col, coeff := range r.coeffs {
			tr[col] = new(big.Rat).Set(coeff)
		}
		tab[i] = tr
		rhs[i] = new(big.Rat).Set(r.rhs)
		basis[i] = r.basisCol
	}

	// Phase-1 cost row: 1 for artificial columns, 0 elsewhere, then
	// reduced by subtracting each basic artificial row (every row here
	// starts basic on its own slack/artificial, so this reduces exactly
	// the artificial-basic rows).
	obj := make([]*big.Rat, numCols)
	for j := range obj {
		obj[j] = new(big.Rat)
		if artificialCols[j] {
			obj[j].SetInt64(1)
		}
	}
	objVal := new(big.Rat)
	for i := 0; i < numRows; i++ {
		if artificialCols[basis[i]] {
			for j := 0; j < numCols; j++ {
				obj[j].Sub(obj[j], tab[i][j])
			}
			objVal.Sub(objVal, rhs[i])
		}
	}

	const maxIterations = 200000
	for iter := 0; ; iter++ {
		if iter%2048 == 0 {
			select {
			case <-ctx.Done():
				return nil, false, fmt.Errorf("lra: check-sat cancelled: %w", ctx.Err())
			default:
			}
		}
		if iter > maxIterations {
			return nil, false, fmt.Errorf("lra: simplex exceeded %d iterations without converging", maxIterations)
		}

		// Bland's rule: smallest-index column with a negative reduced cost.
		enter := -1
		for j := 0; j < numCols; j++ {
			if obj[j].Sign() < 0 {
				enter = j
				break
			}
		}
		if enter == -1 {
			break // phase 1 optimum reached
		}

		// Ratio test, ties broken by smallest basic-variable index (Bland's rule).
		leave := -1
		var bestRatio *big.Rat
		for i := 0; i < numRows; i++ {
			if tab[i][enter].Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(rhs[i], tab[i][enter])
			if leave == -1 || ratio.Cmp(bestRatio) < 0 || (ratio.Cmp(bestRatio) == 0 && basis[i] < basis[leave]) {
				leave = i
				bestRatio = ratio
			}
		}
		if leave == -1 {
			// Unbounded in the entering direction; cannot happen with every
			// structural variable bound-rowed, but guard against it rather
			// than looping forever.
			return nil, false, fmt.Errorf("lra: unexpected unbounded pivot column %d", enter)
		}

		pivot(tab, rhs, obj, &objVal, leave, enter)
		basis[leave] = enter
	}

	if objVal.Sign() != 0 {
		return Model{}, false, nil
	}

	// Drive out any degenerate basic artificials (value 0) so the final
	// basis contains no artificial columns where avoidable.
	for i := 0; i < numRows; i++ {
		if !artificialCols[basis[i]] {
			continue
		}
		pivoted := false
		for j := 0; j < numCols; j++ {
			if artificialCols[j] || tab[i][j].Sign() == 0 {
				continue
			}
			pivot(tab, rhs, obj, &objVal, i, j)
			basis[i] = j
			pivoted = true
			break
		}
		_ = pivoted // if false, row i is redundant (all-zero); harmless to leave.
	}

	values := make([]*big.Rat, numCols)
	for j := range values {
		values[j] = new(big.Rat)
	}
	for i := 0; i < numRows; i++ {
		values[basis[i]] = new(big.Rat).Set(rhs[i])
	}

	model := make(Model, n)
	for _, v := range vars {
		j := colOfVar[v.id]
		x := new(big.Rat).Add(v.lo, values[j])
		model[v.id] = x
	}
	return model, true, nil
}

// pivot performs a standard Gauss-Jordan elimination step around
// (leave, enter): normalize the pivot row, then eliminate the entering
// column from every other row and the objective row.
func pivot(tab [][]*big.Rat, rhs []*big.Rat, obj []*big.Rat, objVal **big.Rat, leave, enter int) {
	numCols := len(tab[leave])
	pv := tab[leave][enter]
	inv := new(big.Rat).Inv(pv)

	for j := 0; j < numCols; j++ {
		tab[leave][j].Mul(tab[leave][j], inv)
	}
	rhs[leave].Mul(rhs[leave], inv)

	for i := 0; i < len(tab); i++ {
		if i == leave {
			continue
		}
		factor := tab[i][enter]
		if factor.Sign() == 0 {
			continue
		}
		for j := 0; j < numCols; j++ {
			tmp := new(big.Rat).Mul(factor, tab[leave][j])
			tab[i][j].Sub(tab[i][j], tmp)
		}
		tmp := new(big.Rat).Mul(factor, rhs[leave])
		rhs[i].Sub(rhs[i], tmp)
	}

	factor := obj[enter]
	if factor.Sign() != 0 {
		for j := 0; j < numCols; j++ {
			tmp := new(big.Rat).Mul(factor, tab[leave][j])
			obj[j].Sub(obj[j], tmp)
		}
		tmp := new(big.Rat).Mul(factor, rhs[leave])
		(*objVal).Sub(*objVal, tmp)
	}
}
