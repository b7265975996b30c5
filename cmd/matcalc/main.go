// Command matcalc is an interactive calculator for dense real matrices.
//
// Usage:
//
//	matcalc [--config file] [--precision n] [--pivoting] [--check-residual] [--max-dim n] [--no-color] [-v]
//	matcalc config            # print the effective configuration as YAML
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/shell"
)

// options holds the raw flag values; only flags the user actually set are
// applied over the loaded configuration.
type options struct {
	configPath    string
	precision     int
	pivoting      bool
	checkResidual bool
	maxDim        int
	noColor       bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "matcalc",
		Short: "Interactive dense matrix calculator",
		Long: `matcalc reads two matrices from standard input and adds, subtracts,
multiplies or divides them. Division A / B is computed as A * inverse(B),
where the inverse comes from Gauss-Jordan elimination.

Settings are read from an optional YAML file, then MATCALC_* environment
variables, then command-line flags.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("starting session",
				zap.Int("precision", cfg.Precision),
				zap.Bool("pivoting", cfg.Pivoting),
				zap.Bool("check_residual", cfg.CheckResidual))

			s := shell.New(shell.Streams{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			}, cfg, logger)

			err = s.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				logger.Debug("session interrupted")
				return nil
			}
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	pf.IntVar(&opts.precision, "precision", -1, "decimals printed per element (-1 for shortest round-trip form)")
	pf.BoolVar(&opts.pivoting, "pivoting", false, "invert with partial pivoting when dividing")
	pf.BoolVar(&opts.checkResidual, "check-residual", false, "check B*inverse(B) against the identity before dividing")
	pf.IntVar(&opts.maxDim, "max-dim", config.DefaultMaxDim, "largest row or column count accepted")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newConfigCmd(opts))

	return root
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// resolveConfig loads the file and environment settings, applies the flags
// that were set explicitly and validates the result.
func resolveConfig(flags *pflag.FlagSet, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if flags.Changed("precision") {
		cfg.Precision = opts.precision
	}
	if flags.Changed("pivoting") {
		cfg.Pivoting = opts.pivoting
	}
	if flags.Changed("check-residual") {
		cfg.CheckResidual = opts.checkResidual
	}
	if flags.Changed("max-dim") {
		cfg.MaxDim = opts.maxDim
	}
	if opts.noColor {
		cfg.Color = false
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds a production zap logger writing to stderr, so log lines
// never interleave with results on stdout.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = lc.Encoding
	if lc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
