// Package matcalc is a small calculator for dense real matrices: addition,
// subtraction, multiplication, and division defined as A × B⁻¹.
//
// 🚀 What is matcalc?
//
//	A plain-Go library plus an interactive shell:
//		• Dense row-major float64 matrices with bounds-checked access
//		• Add, Sub, Mul with shape validation
//		• Gauss-Jordan inversion (no pivoting), plus a partial-pivoting variant
//		• Div(A, B) = A × Inverse(B)
//		• Tolerance-based comparison helpers (AllClose, Equal)
//
// Under the hood the repository is organized as:
//
//	matrix/          - Dense type, arithmetic, inversion, comparison
//	internal/config/ - YAML + environment configuration of the shell
//	internal/shell/  - the interactive menu loop
//	cmd/matcalc/     - command-line entry point
//
// Quick example:
//
//	A = [1 2]   B = [2 0]   A / B = [0.5 0.5]
//	    [3 4]       [0 4]           [1.5 1  ]
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
