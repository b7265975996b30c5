// SPDX-License-Identifier: MIT
// Package matrix - Gauss-Jordan inversion.
//
// Purpose:
//   - Inverse: Gauss-Jordan elimination on [A | I] with rows processed in
//     their natural order. A pivot that is exactly zero stops the
//     elimination with ErrSingular; rows are never exchanged.
//   - InversePivoted: the same elimination with partial pivoting, exposed
//     under its own name so the two contracts never mix.
//
// Determinism:
//   - Pivot loop i↑, row loop k↑, column loop j↑ over all 2n columns.
//   - Row normalization divides by the pivot (no reciprocal multiply), so
//     the rounding of every element matches a plain "row /= pivot".

package matrix

import (
	"fmt"
	"math"
)

// ZeroPivot is the exact value that marks a pivot as singular.
const ZeroPivot = 0.0

// augmented is the n×2n working buffer [A | I] used by Gauss-Jordan.
type augmented struct {
	n    int
	w    int       // row width, 2n
	data []float64 // row-major, len == n*2n
}

// newAugmented copies m into the left half and writes I_n into the right half.
// The operand is read only; the buffer is a private working copy.
func newAugmented(m Matrix, op string) (*augmented, error) {
	n := m.Rows()
	if n <= 0 || n > math.MaxInt/2/n {
		return nil, matrixErrorf(op, fmt.Errorf("order %d has no augmented buffer: %w", n, ErrInvalidDimensions))
	}
	aug := &augmented{n: n, w: 2 * n, data: make([]float64, 2*n*n)}

	var (
		i, j int
		v    float64
		err  error
	)
	d, isDense := m.(*Dense)
	for i = 0; i < n; i++ {
		base := i * aug.w
		for j = 0; j < n; j++ {
			if isDense {
				v = d.data[i*n+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			aug.data[base+j] = v
		}
		aug.data[base+n+i] = 1.0
	}

	return aug, nil
}

// row returns the 2n-wide slice of row i (shares storage).
func (a *augmented) row(i int) []float64 {
	return a.data[i*a.w : (i+1)*a.w]
}

// swapRows exchanges rows i and k across all 2n columns.
func (a *augmented) swapRows(i, k int) {
	ri, rk := a.row(i), a.row(k)
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// eliminate normalizes pivot row i and clears column i in every other row.
//   - row i: every element divided by the pivot value read before the loop.
//   - row k≠i: row k -= factor*row i with factor = aug(k,i) read before the loop.
func (a *augmented) eliminate(i int) {
	pr := a.row(i)
	diag := pr[i]
	for j := 0; j < a.w; j++ {
		pr[j] /= diag
	}

	var factor float64
	for k := 0; k < a.n; k++ {
		if k == i {
			continue
		}
		rk := a.row(k)
		factor = rk[i]
		for j := 0; j < a.w; j++ {
			rk[j] -= float64(factor * pr[j])
		}
	}
}

// extract copies the right half (columns n..2n-1) into a fresh n×n Dense.
func (a *augmented) extract() *Dense {
	inv := &Dense{r: a.n, c: a.n, data: make([]float64, a.n*a.n)}
	for i := 0; i < a.n; i++ {
		copy(inv.data[i*a.n:(i+1)*a.n], a.row(i)[a.n:])
	}

	return inv
}

// Inverse computes A⁻¹ by Gauss-Jordan elimination on the augmented matrix [A | I].
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); build the n×2n working copy [A | I].
//   - Stage 2: for pivot i = 0..n-1:
//     if aug(i,i) == 0 exactly → ErrSingular (no row exchange is attempted);
//     divide row i by aug(i,i); subtract aug(k,i)·row i from every row k≠i.
//   - Stage 3: copy the right half into a fresh n×n result.
//
// Behavior highlights:
//   - The singularity test is an exact comparison with ZeroPivot. A
//     near-singular input is inverted anyway and may yield huge or
//     inaccurate values instead of an error.
//   - An invertible matrix whose elimination reaches a zero diagonal, such as
//     [[0,1],[1,0]], is reported as ErrSingular. Use InversePivoted for those.
//   - The operand is never mutated, also on failure.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular; ErrInvalidDimensions when
//     the n×2n working buffer cannot be sized.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := newAugmented(m, opInverse)
	if err != nil {
		return nil, err
	}

	for i := 0; i < aug.n; i++ {
		if aug.data[i*aug.w+i] == ZeroPivot {
			return nil, matrixErrorf(opInverse, fmt.Errorf("zero pivot at row %d: %w", i, ErrSingular))
		}
		aug.eliminate(i)
	}

	return aug.extract(), nil
}

// InversePivoted computes A⁻¹ by Gauss-Jordan elimination with partial pivoting.
//
// Implementation:
//   - Same as Inverse, except that before eliminating column i the row
//     k ≥ i with the largest |aug(k,i)| is swapped into position i
//     (the first such row wins ties).
//
// Behavior highlights:
//   - ErrSingular only when the whole remaining column is exactly zero.
//   - Kept separate from Inverse so callers choose the contract explicitly.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular; ErrInvalidDimensions when
//     the n×2n working buffer cannot be sized.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func InversePivoted(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInversePivoted, err)
	}
	aug, err := newAugmented(m, opInversePivoted)
	if err != nil {
		return nil, err
	}

	var (
		i, k, best int
		bestAbs, v float64
	)
	for i = 0; i < aug.n; i++ {
		best, bestAbs = i, math.Abs(aug.data[i*aug.w+i])
		for k = i + 1; k < aug.n; k++ {
			if v = math.Abs(aug.data[k*aug.w+i]); v > bestAbs {
				best, bestAbs = k, v
			}
		}
		if bestAbs == ZeroPivot {
			return nil, matrixErrorf(opInversePivoted, fmt.Errorf("zero column at %d: %w", i, ErrSingular))
		}
		if best != i {
			aug.swapRows(i, best)
		}
		aug.eliminate(i)
	}

	return aug.extract(), nil
}
