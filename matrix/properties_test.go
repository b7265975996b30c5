package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

// Algebraic identities checked over a handful of seeded shapes.

func TestProperty_AddThenSubRoundTrips(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		r, c := int(seed%4)+1, int(seed%3)+2
		A := RandFilledDense(t, r, c, seed)
		B := RandFilledDense(t, r, c, seed*31)

		sum, err := matrix.Add(A, B)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, B)
		require.NoError(t, err)

		ok, err := matrix.AllClose(back, A, 0, 1e-15)
		require.NoError(t, err)
		require.True(t, ok, "seed %d: (A+B)-B != A", seed)
	}
}

func TestProperty_MulIsAssociative(t *testing.T) {
	t.Parallel()

	for _, dims := range [][4]int{{1, 1, 1, 1}, {2, 3, 4, 2}, {3, 1, 5, 2}, {4, 4, 4, 4}} {
		dims := dims
		t.Run(fmt.Sprint(dims), func(t *testing.T) {
			t.Parallel()
			A := RandFilledDense(t, dims[0], dims[1], 1)
			B := RandFilledDense(t, dims[1], dims[2], 2)
			C := RandFilledDense(t, dims[2], dims[3], 3)

			AB, err := matrix.Mul(A, B)
			require.NoError(t, err)
			left, err := matrix.Mul(AB, C)
			require.NoError(t, err)

			BC, err := matrix.Mul(B, C)
			require.NoError(t, err)
			right, err := matrix.Mul(A, BC)
			require.NoError(t, err)

			CompareClose(t, Rows(t, left), right, 1e-12)
		})
	}
}

func TestProperty_TimesInverseIsIdentity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 7; n++ {
		A := DiagDominant(t, n, int64(n))
		inv, err := matrix.Inverse(A)
		require.NoError(t, err)
		P, err := matrix.Mul(A, inv)
		require.NoError(t, err)
		CompareClose(t, IdentityRows(n), P, 1e-12)
	}
}

func TestProperty_DivUndoesMul(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 3, 4, 17)
	B := DiagDominant(t, 4, 18)

	AB, err := matrix.Mul(A, B)
	require.NoError(t, err)
	back, err := matrix.Div(AB, B)
	require.NoError(t, err)
	CompareClose(t, Rows(t, A), back, 1e-12)
}
