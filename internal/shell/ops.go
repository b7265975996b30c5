package shell

import (
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// Op is a menu choice.
type Op int

// Menu options, numbered as printed.
const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpExit
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	case OpDiv:
		return "division"
	case OpExit:
		return "exit"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// shape is a (rows, cols) pair read from the user.
type shape struct{ r, c int }

func (s shape) String() string { return fmt.Sprintf("%dx%d", s.r, s.c) }

// checkShapes rejects incompatible operands as soon as both shapes are
// known, before the elements of B are typed in. The matrix kernels repeat
// the same checks.
func checkShapes(op Op, a, b shape) error {
	switch op {
	case OpAdd, OpSub:
		if a != b {
			return fmt.Errorf("dimensions must match for %s (%s vs %s): %w", op, a, b, matrix.ErrDimensionMismatch)
		}
	case OpMul:
		if a.c != b.r {
			return fmt.Errorf("columns of A must equal rows of B for multiplication (%s vs %s): %w", a, b, matrix.ErrDimensionMismatch)
		}
	case OpDiv:
		if b.r != b.c {
			return fmt.Errorf("matrix B must be square for division (%s): %w", b, matrix.ErrNonSquare)
		}
		if a.c != b.r {
			return fmt.Errorf("columns of A must equal the order of B for division (%s vs %s): %w", a, b, matrix.ErrDimensionMismatch)
		}
	}
	return nil
}
