package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvPrecision, "")
	t.Setenv(config.EnvPivoting, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvMaxDim, "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_RunsSession(t *testing.T) {
	out, _, err := execute(t, "3\n1 2\n1 2\n2 1\n3 4\n5\n", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Result of the multiplication:\n11\n")
}

func TestRoot_PrecisionFlag(t *testing.T) {
	out, _, err := execute(t, "1\n1 1\n1\n1 1\n2\n5\n", "--no-color", "--precision", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Result of the addition:\n3.00\n")
}

func TestRoot_PivotingFlag(t *testing.T) {
	in := "4\n2 2\n1 2 3 4\n2 2\n0 1 1 0\n5\n"

	_, errOut, err := execute(t, in, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, errOut, "singular")

	out, errOut, err := execute(t, in, "--no-color", "--pivoting")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "singular")
	assert.Contains(t, out, "Result of the division:\n2 1\n4 3\n")
}

func TestRoot_InvalidPrecision(t *testing.T) {
	_, _, err := execute(t, "", "--precision", "40")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigCmd_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 4\npivoting: true\ntolerance: 0.001\n"), 0o600))

	out, _, err := execute(t, "", "config", "--config", path, "--precision", "2")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Precision)
	assert.True(t, got.Pivoting)
	assert.Equal(t, 0.001, got.Tolerance)
}

func TestConfigCmd_UnsetFlagsKeepFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("check_residual: true\nlog:\n  level: info\n  encoding: json\n"), 0o600))

	out, _, err := execute(t, "", "config", "--config", path, "-v", "--no-color")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.True(t, got.CheckResidual)
	assert.False(t, got.Color)
	assert.Equal(t, -1, got.Precision)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, "json", got.Log.Encoding)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LogConfig{Level: "info", Encoding: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = newLogger(config.LogConfig{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger(config.LogConfig{Level: "loud", Encoding: "console"})
	assert.Error(t, err)
}

// --verbose reaches the logger only through the resolved configuration.
func TestResolveConfig_VerboseSetsDebugLevel(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-v"}))

	var opts options
	opts.verbose = true
	cfg, err := resolveConfig(cmd.Flags(), &opts)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	l, err := newLogger(cfg.Log)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestRoot_MaxDimFlag(t *testing.T) {
	_, errOut, err := execute(t, "1\n3 3\n5\n", "--no-color", "--max-dim", "2")
	require.NoError(t, err)
	assert.Contains(t, errOut, "exceed the limit of 2")

	_, _, err = execute(t, "", "--max-dim", "0")
	require.ErrorIs(t, err, config.ErrInvalid)
}
