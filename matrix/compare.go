// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Value comparison of matrices: exact (Equal) and tolerance-based (AllClose).
//   - Dense fast-path over the flat buffers; generic fallback via At.

package matrix

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close to anything.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are treated as |rtol|, |atol|.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = validateTol(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = validateTol(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	near := func(av, bv float64) bool {
		if av == bv { // covers equal infinities
			return true
		}
		diff := av - bv
		if diff < 0 {
			diff = -diff
		}
		absb := bv
		if absb < 0 {
			absb = -absb
		}
		return diff <= atol+rtol*absb // false for NaN
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !near(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !near(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Comparison uses ==, so NaN entries make matrices unequal and 0 == -0.
// Nil operands, and operands whose At fails, are never equal.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}
			return true
		}
	}

	var (
		av, bv float64
		err    error
	)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}
