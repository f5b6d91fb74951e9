// Package simplex implements a dense, bounded-variable primal simplex
// solver used as hadar's bundled LP backend.
//
// No third-party linear-programming library exists anywhere in the
// example corpus this module was built from (see DESIGN.md), so this
// package is the one deliberately stdlib-only component: a classic
// "upper-bounding technique" simplex (Dantzig) with a big-M phase-one,
// following Bland's rule throughout to guarantee termination without
// needing a separate anti-cycling fallback.
//
// Every adequacy LP hadar builds is an equality-constrained system with
// 0 <= x <= upper bounds on every variable, which this solver targets
// directly: no slack/surplus columns, only one artificial column per
// row to seed a feasible basis.
package simplex

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrInfeasible is returned when no feasible solution satisfies every
// equality constraint within bounds.
var ErrInfeasible = errors.New("simplex: infeasible")

// ErrDidNotConverge is returned when the iteration budget is exhausted
// before an optimal basis is found; this indicates a modeling bug (an
// unbounded direction should not occur since every real variable here
// carries a finite upper bound) rather than an expected outcome.
var ErrDidNotConverge = errors.New("simplex: exceeded iteration limit")

const epsilon = 1e-9

// Row is one equality constraint: sum(Coeffs[j]*x[j]) == RHS.
type Row struct {
	Coeffs map[int]float64
	RHS    float64
}

// Problem is a bounded-variable equality-constrained linear program:
//
//	minimize    sum(Cost[j]*x[j])
//	subject to  Rows[i].Coeffs . x == Rows[i].RHS   for every row
//	            Lower[j] <= x[j] <= Upper[j]
//
// Lower must be 0 for every variable hadar ever builds (§3: "Every
// decision variable x satisfies 0 <= x <= capacity"); Upper must be
// finite and non-negative.
type Problem struct {
	NumVars int
	Cost    []float64
	Lower   []float64
	Upper   []float64
	Rows    []Row
}

// Solution is the value of every decision variable at the optimum,
// plus the resulting objective (computed from the real variables only,
// never the phase-one artificials).
type Solution struct {
	Values    []float64
	Objective float64
}

// Solve runs the bounded simplex method to optimality, or returns
// ErrInfeasible / ErrDidNotConverge / ctx.Err().
func (p *Problem) Solve(ctx context.Context) (*Solution, error) {
	if len(p.Rows) == 0 {
		return &Solution{Values: make([]float64, p.NumVars)}, nil
	}
	t := newTableau(p)
	if err := t.run(ctx); err != nil {
		return nil, err
	}
	return t.solution(p), nil
}

// tableau holds the dense working state of the simplex method. tab and
// rhs are always the exact image of B^-1*A and B^-1*b (i.e. they never
// encode bound information); actual basic-variable values are derived
// on demand via actualRHS, which nets out the contribution of
// nonbasic-at-upper columns. This keeps pivoting identical to
// classic tableau simplex while bounds only affect the ratio test and
// the entering-variable sign test.
type tableau struct {
	m, n     int // rows, total columns (original vars + one artificial per row)
	n0       int // number of original (non-artificial) variables
	tab      [][]float64
	rhs      []float64
	basis    []int
	atUpper  []bool
	cost     []float64
	lower    []float64
	upper    []float64
	artifIdx []int
}

func newTableau(p *Problem) *tableau {
	m := len(p.Rows)
	n0 := p.NumVars
	n := n0 + m

	maxAbsCost := 0.0
	for _, c := range p.Cost {
		if a := abs(c); a > maxAbsCost {
			maxAbsCost = a
		}
	}
	bigM := maxAbsCost*1e3 + 1e9

	t := &tableau{
		m: m, n: n, n0: n0,
		tab:      make([][]float64, m),
		rhs:      make([]float64, m),
		basis:    make([]int, m),
		atUpper:  make([]bool, n),
		cost:     make([]float64, n),
		lower:    make([]float64, n),
		upper:    make([]float64, n),
		artifIdx: make([]int, m),
	}
	copy(t.cost, p.Cost)
	copy(t.lower, p.Lower)
	copy(t.upper, p.Upper)
	for i := 0; i < m; i++ {
		artCol := n0 + i
		t.artifIdx[i] = artCol
		t.cost[artCol] = bigM
		t.lower[artCol] = 0
		t.upper[artCol] = math.Inf(1)
	}

	for i, row := range p.Rows {
		t.tab[i] = make([]float64, n)
		rhs := row.RHS
		for j, coeff := range row.Coeffs {
			t.tab[i][j] = coeff
		}
		if rhs < 0 {
			for j := range t.tab[i] {
				t.tab[i][j] = -t.tab[i][j]
			}
			rhs = -rhs
		}
		t.tab[i][t.artifIdx[i]] = 1
		t.rhs[i] = rhs
		t.basis[i] = t.artifIdx[i]
	}
	return t
}

func (t *tableau) run(ctx context.Context) error {
	const maxIter = 200000
	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		q, dir, ok := t.choosePivotColumn()
		if !ok {
			return t.checkFeasible()
		}
		r, leavesAtUpper, flip, err := t.ratioTest(q, dir)
		if err != nil {
			return err
		}
		if flip {
			t.atUpper[q] = !t.atUpper[q]
			continue
		}
		t.pivot(r, q, leavesAtUpper)
	}
	return ErrDidNotConverge
}

// reducedCost computes cbar_j = cost[j] - sum_i cost[basis[i]]*tab[i][j].
func (t *tableau) reducedCost(j int) float64 {
	cb := t.cost[j]
	for i := 0; i < t.m; i++ {
		if v := t.tab[i][j]; v != 0 {
			cb -= t.cost[t.basis[i]] * v
		}
	}
	return cb
}

func (t *tableau) isBasic(j int) bool {
	for i := 0; i < t.m; i++ {
		if t.basis[i] == j {
			return true
		}
	}
	return false
}

// choosePivotColumn applies Bland's rule: the lowest-indexed nonbasic,
// non-artificial column whose reduced cost allows improvement.
func (t *tableau) choosePivotColumn() (col int, dir float64, ok bool) {
	for j := 0; j < t.n0; j++ {
		if t.isBasic(j) {
			continue
		}
		cb := t.reducedCost(j)
		if !t.atUpper[j] && cb < -epsilon {
			return j, 1, true
		}
		if t.atUpper[j] && cb > epsilon {
			return j, -1, true
		}
	}
	return 0, 0, false
}

// actualRHS returns the current value of every basic variable, netting
// out nonbasic-at-upper contributions from the bound-free tableau rhs.
func (t *tableau) actualRHS() []float64 {
	out := make([]float64, t.m)
	copy(out, t.rhs)
	for j := 0; j < t.n; j++ {
		if t.isBasic(j) || !t.atUpper[j] {
			continue
		}
		u := t.upper[j]
		if u == 0 {
			continue
		}
		for i := 0; i < t.m; i++ {
			if v := t.tab[i][j]; v != 0 {
				out[i] -= v * u
			}
		}
	}
	return out
}

// ratioTest determines how far the entering variable q can move in
// direction dir before some bound becomes binding. If the binding
// bound is q's own opposite bound, flip is true and no pivot occurs.
// Otherwise r is the leaving row and leavesAtUpper reports which bound
// the leaving basic variable settles on.
func (t *tableau) ratioTest(q int, dir float64) (r int, leavesAtUpper bool, flip bool, err error) {
	xB := t.actualRHS()
	tMax := math.Inf(1)
	if rng := t.upper[q] - t.lower[q]; !math.IsInf(rng, 1) {
		tMax = rng
	}
	r = -1
	for i := 0; i < t.m; i++ {
		alpha := t.tab[i][q]
		delta := -dir * alpha
		if abs(delta) <= epsilon {
			continue
		}
		bi := t.basis[i]
		var ti float64
		var atUpperCandidate bool
		if delta > 0 {
			if math.IsInf(t.upper[bi], 1) {
				continue
			}
			ti = (t.upper[bi] - xB[i]) / delta
			atUpperCandidate = true
		} else {
			ti = (t.lower[bi] - xB[i]) / delta
			atUpperCandidate = false
		}
		if ti < -1e-7 {
			ti = 0
		}
		switch {
		case ti < tMax-epsilon:
			// strictly tighter bound: this row becomes the new candidate.
			tMax, r, leavesAtUpper = ti, i, atUpperCandidate
		case ti < tMax+epsilon && (r == -1 || t.basis[i] < t.basis[r]):
			// tie: Bland's rule breaks it by lowest basic-variable index.
			r, leavesAtUpper = i, atUpperCandidate
		}
	}
	if r == -1 {
		if math.IsInf(tMax, 1) {
			return 0, false, false, fmt.Errorf("simplex: unbounded direction for column %d", q)
		}
		return 0, false, true, nil
	}
	return r, leavesAtUpper, false, nil
}

func (t *tableau) pivot(r, q int, leavesAtUpper bool) {
	leaving := t.basis[r]
	t.atUpper[leaving] = leavesAtUpper

	pv := t.tab[r][q]
	for j := 0; j < t.n; j++ {
		t.tab[r][j] /= pv
	}
	t.rhs[r] /= pv

	for i := 0; i < t.m; i++ {
		if i == r {
			continue
		}
		factor := t.tab[i][q]
		if factor == 0 {
			continue
		}
		for j := 0; j < t.n; j++ {
			t.tab[i][j] -= factor * t.tab[r][j]
		}
		t.rhs[i] -= factor * t.rhs[r]
	}
	t.basis[r] = q
	t.atUpper[q] = false
}

func (t *tableau) checkFeasible() error {
	xB := t.actualRHS()
	for i := 0; i < t.m; i++ {
		if isArtificial(t.basis[i], t.n0) && abs(xB[i]) > 1e-6 {
			return ErrInfeasible
		}
	}
	return nil
}

func isArtificial(col, n0 int) bool { return col >= n0 }

func (t *tableau) solution(p *Problem) *Solution {
	xB := t.actualRHS()
	values := make([]float64, p.NumVars)
	for j := 0; j < p.NumVars; j++ {
		if t.atUpper[j] {
			values[j] = t.upper[j]
		} else {
			values[j] = t.lower[j]
		}
	}
	for i := 0; i < t.m; i++ {
		if b := t.basis[i]; b < p.NumVars {
			values[b] = xB[i]
		}
	}
	obj := 0.0
	for j, v := range values {
		obj += p.Cost[j] * v
	}
	return &Solution{Values: values, Objective: obj}
}

func abs(f float64) float64 { return math.Abs(f) }
