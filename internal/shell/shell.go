// Package shell implements the interactive matrix calculator: a numbered
// menu, dimension and element prompts, and printing of results or errors.
//
// A Session reads whitespace-separated tokens from its input, so it can be
// driven by a terminal or by a test through any io.Reader. Errors raised by
// a request are printed and the menu is shown again; only EOF, option 5 or
// a cancelled context end the session.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/matrix"
)

// Streams bundles the session's I/O.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Session is one run of the calculator.
type Session struct {
	in  *tokenReader
	p   *printer
	cfg *config.Config
	log *zap.Logger
}

// New builds a session. A nil cfg means config.Default(); a nil logger
// means zap.NewNop().
func New(s Streams, cfg *config.Config, log *zap.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	errOut := s.Err
	if errOut == nil {
		errOut = s.Out
	}
	return &Session{
		in:  newTokenReader(s.In),
		p:   newPrinter(s.Out, errOut, cfg.Color, cfg.Precision),
		cfg: cfg,
		log: log,
	}
}

// Run shows the menu and serves requests until the user exits, the input
// ends, or ctx is cancelled. Request-level failures are printed, never
// returned, and the rest of the offending input line is discarded; the
// returned error is reserved for I/O failures and ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	defer s.in.close()

	s.p.banner()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.p.menu()

		choice, err := s.in.nextInt(ctx)
		switch {
		case errors.Is(err, io.EOF):
			s.log.Debug("input closed")
			return nil
		case errors.Is(err, ErrBadInput):
			s.reject(err)
			continue
		case err != nil:
			return err
		}

		op := Op(choice)
		switch op {
		case OpExit:
			s.log.Debug("exit requested")
			return nil
		case OpAdd, OpSub, OpMul, OpDiv:
		default:
			s.reject(fmt.Errorf("unknown option %d", choice))
			continue
		}

		if err := s.serve(ctx, op); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if !errors.Is(err, ErrBadInput) && !isMatrixError(err) {
				return err
			}
			s.reject(err)
		}
	}
}

// reject reports a failed request and drops what is left of its input line,
// so leftover tokens are never taken as the next menu choice.
func (s *Session) reject(err error) {
	s.in.discardLine()
	s.p.reportErr(err)
}

// serve reads both operands, runs op and prints the result.
func (s *Session) serve(ctx context.Context, op Op) error {
	start := time.Now()
	log := s.log.With(zap.Stringer("op", op))

	sa, err := s.readShape(ctx, "A")
	if err != nil {
		return err
	}
	a, err := s.readElements(ctx, "A", sa)
	if err != nil {
		return err
	}
	sb, err := s.readShape(ctx, "B")
	if err != nil {
		return err
	}
	if err := checkShapes(op, sa, sb); err != nil {
		log.Info("request rejected", zap.Stringer("a", sa), zap.Stringer("b", sb), zap.Error(err))
		return err
	}
	b, err := s.readElements(ctx, "B", sb)
	if err != nil {
		return err
	}

	res, err := s.apply(op, a, b)
	if err != nil {
		log.Info("request failed", zap.Stringer("a", sa), zap.Stringer("b", sb), zap.Error(err))
		return err
	}
	log.Info("request served",
		zap.Stringer("a", sa),
		zap.Stringer("b", sb),
		zap.Int("rows", res.Rows()),
		zap.Int("cols", res.Cols()),
		zap.Duration("elapsed", time.Since(start)))
	s.p.result(op, res)

	return nil
}

func (s *Session) apply(op Op, a, b matrix.Matrix) (matrix.Matrix, error) {
	switch op {
	case OpAdd:
		return matrix.Add(a, b)
	case OpSub:
		return matrix.Sub(a, b)
	case OpMul:
		return matrix.Mul(a, b)
	case OpDiv:
		return s.divide(a, b)
	}
	return nil, fmt.Errorf("unsupported operation %s", op)
}

// divide runs A / B with the configured inverse, optionally checking the
// residual B·B⁻¹ against the identity first.
func (s *Session) divide(a, b matrix.Matrix) (matrix.Matrix, error) {
	if !s.cfg.CheckResidual {
		if s.cfg.Pivoting {
			return matrix.DivPivoted(a, b)
		}
		return matrix.Div(a, b)
	}

	inverse := matrix.Inverse
	if s.cfg.Pivoting {
		inverse = matrix.InversePivoted
	}
	inv, err := inverse(b)
	if err != nil {
		return nil, err
	}
	if err := s.checkResidual(b, inv); err != nil {
		return nil, err
	}

	return matrix.Mul(a, inv)
}

// checkResidual warns when B·B⁻¹ is not the identity within the configured
// tolerance. A poor residual does not abort the division.
func (s *Session) checkResidual(b, inv matrix.Matrix) error {
	prod, err := matrix.Mul(b, inv)
	if err != nil {
		return err
	}
	id, err := matrix.IdentityLike(b)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(prod, id, 0, s.cfg.Tolerance)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Warn("inverse residual above tolerance", zap.Float64("tolerance", s.cfg.Tolerance))
		s.p.reportWarn(fmt.Sprintf("warning: B x inverse(B) differs from the identity by more than %g", s.cfg.Tolerance))
	}

	return nil
}

func (s *Session) readShape(ctx context.Context, name string) (shape, error) {
	s.p.promptf("Enter the dimensions of matrix %s (rows cols): ", name)
	r, err := s.in.nextInt(ctx)
	if err != nil {
		return shape{}, err
	}
	c, err := s.in.nextInt(ctx)
	if err != nil {
		return shape{}, err
	}
	if r <= 0 || c <= 0 {
		return shape{}, fmt.Errorf("dimensions of %s must be positive, got %dx%d: %w", name, r, c, ErrBadInput)
	}
	if r > s.cfg.MaxDim || c > s.cfg.MaxDim {
		return shape{}, fmt.Errorf("dimensions of %s exceed the limit of %d, got %dx%d: %w", name, s.cfg.MaxDim, r, c, ErrBadInput)
	}

	return shape{r: r, c: c}, nil
}

func (s *Session) readElements(ctx context.Context, name string, sh shape) (*matrix.Dense, error) {
	m, err := matrix.NewDense(sh.r, sh.c)
	if err != nil {
		return nil, err
	}
	s.p.promptf("Enter the elements of matrix %s (%s):\n", name, sh)
	for i := 0; i < sh.r; i++ {
		for j := 0; j < sh.c; j++ {
			v, err := s.in.nextFloat(ctx)
			if err != nil {
				return nil, err
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// isMatrixError reports whether err is one of the calculator's domain
// failures, which end the request but not the session.
func isMatrixError(err error) bool {
	for _, target := range []error{
		matrix.ErrDimensionMismatch,
		matrix.ErrNonSquare,
		matrix.ErrSingular,
		matrix.ErrInvalidDimensions,
		matrix.ErrOutOfRange,
		matrix.ErrNilMatrix,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
