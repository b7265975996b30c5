// Package matrix implements dense real-valued matrix arithmetic.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Add, Sub and Mul, each returning a freshly allocated result.
//   - Inverse, a Gauss-Jordan inversion on the augmented matrix [A | I]
//     that never reorders rows and treats an exact-zero pivot as singular.
//   - InversePivoted, a separate partial-pivoting variant for callers that
//     want invertible matrices with a zero diagonal to succeed.
//   - Div, defined as a × Inverse(b).
//
// Operands are never mutated, so a failed call leaves every input exactly
// as it was. Failures are reported with the sentinels in errors.go:
//
//	ErrDimensionMismatch  incompatible shapes for Add/Sub/Mul
//	ErrNonSquare          inversion of a non-square matrix
//	ErrSingular           exact-zero pivot during elimination
//	ErrOutOfRange         At/Set outside the matrix
//
// Matrices are intended to be small; every kernel is a plain triple loop
// with a fixed iteration order so results are reproducible bit for bit.
package matrix
