package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/xgx-checked"
	"github.com/xgx-io/xgx-checked/internal/config"
)

func load(t *testing.T, args ...string) (*config.Config, *checked.Error) {
	t.Helper()
	x := config.Load(args)
	if x.Ok() {
		return x.Get(), nil
	}
	return nil, x.TakeError()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t, "a.txt")
	require.False(t, err.Failed(), "unexpected failure: %v", err)

	assert.Equal(t, int64(0), cfg.MaxSize)
	assert.False(t, cfg.AllowMissing)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, []string{"a.txt"}, cfg.Paths)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, "--max-size", "1024", "--allow-missing", "--log-level", "debug", "a", "b")
	require.False(t, err.Failed(), "unexpected failure: %v", err)

	assert.Equal(t, int64(1024), cfg.MaxSize)
	assert.True(t, cfg.AllowMissing)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"a", "b"}, cfg.Paths)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PATHCHECK_MAX_SIZE", "2048")
	t.Setenv("PATHCHECK_ALLOW_MISSING", "true")

	cfg, err := load(t, "a")
	require.False(t, err.Failed(), "unexpected failure: %v", err)
	assert.Equal(t, int64(2048), cfg.MaxSize)
	assert.True(t, cfg.AllowMissing)

	// flags win over the environment
	cfg, err = load(t, "--max-size", "10", "a")
	require.False(t, err.Failed(), "unexpected failure: %v", err)
	assert.Equal(t, int64(10), cfg.MaxSize)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max-size: 512\nlog-level: info\n"), 0o600))

	cfg, err := load(t, "--config", path, "a")
	require.False(t, err.Failed(), "unexpected failure: %v", err)
	assert.Equal(t, int64(512), cfg.MaxSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := load(t, "--config", path, "a")
	require.True(t, err.IsA(checked.KindOf[*checked.FileError]()))
	assert.True(t, checked.Contains(err, checked.KindOf[*checked.CodeError]()),
		"the OS error should come through the code adapter")
	assert.Contains(t, checked.ToString(err), path)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(envPath, []byte("PATHCHECK_LOG_LEVEL=error\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("PATHCHECK_LOG_LEVEL") })

	cfg, err := load(t, "--env-file", envPath, "a")
	require.False(t, err.Failed(), "unexpected failure: %v", err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadEnvFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.env")

	_, err := load(t, "--env-file", path, "a")
	require.True(t, err.Failed())
	assert.True(t, err.IsA(checked.KindOf[*checked.FileError]()))
	assert.Contains(t, checked.ToString(err), "nope.env")
}

func TestLoadUnknownFlag(t *testing.T) {
	_, err := load(t, "--frobnicate", "a")
	require.True(t, err.IsA(checked.KindOf[*config.Error]()))
	assert.Contains(t, checked.ToString(err), "frobnicate")
}

func TestLoadValidationReportsEveryProblem(t *testing.T) {
	_, err := load(t, "--max-size", "-1", "--log-level", "loud")
	require.True(t, err.Failed())
	assert.Equal(t, 3, checked.Count(err))

	var keys []string
	rest := checked.Handle(err, checked.OnVoid(func(e *config.Error) {
		keys = append(keys, e.Key)
	}))
	assert.False(t, rest.Failed())
	assert.Equal(t, []string{"max-size", "log-level", ""}, keys)
}
