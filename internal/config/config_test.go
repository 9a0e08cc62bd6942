package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	root := &cobra.Command{Use: "talentiq"}
	root.PersistentFlags().String("config", "", "")
	root.PersistentFlags().String("color", "auto", "")
	root.PersistentFlags().String("log-level", "warn", "")
	require.NoError(t, root.PersistentFlags().Parse(args))
	return root
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	// Viper treats empty variables as unset.
	t.Setenv("TALENTIQ_COLOR", "")
	t.Setenv("TALENTIQ_LOG_LEVEL", "")
}

func TestDefaults(t *testing.T) {
	isolate(t)
	v, err := Init(newRoot(t))
	require.NoError(t, err)

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, s.Color)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Empty(t, s.ConfigFile)
}

func TestFlagsOverride(t *testing.T) {
	isolate(t)
	v, err := Init(newRoot(t, "--color", "NEVER", "--log-level", "debug"))
	require.NoError(t, err)

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, s.Color)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("TALENTIQ_COLOR", "always")
	t.Setenv("TALENTIQ_LOG_LEVEL", "info")

	v, err := Init(newRoot(t))
	require.NoError(t, err)
	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, s.Color)
	assert.Equal(t, "info", s.LogLevel)
}

func TestExplicitConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "talentiq.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = \"never\"\nlog_level = \"error\"\n"), 0o644))

	v, err := Init(newRoot(t, "--config", path))
	require.NoError(t, err)
	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, s.Color)
	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, path, s.ConfigFile)
}

func TestDefaultLocationConfigFile(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "talentiq")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("color: always\n"), 0o644))

	v, err := Init(newRoot(t))
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s, err := Load(v)
	require.NoError(t, err)
	// Only linux reads XDG_CONFIG_HOME; elsewhere the defaults stand.
	if s.ConfigFile != "" {
		assert.Equal(t, ColorAlways, s.Color)
	}
}

func TestMissingExplicitConfigFile(t *testing.T) {
	isolate(t)
	_, err := Init(newRoot(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestInvalidColor(t *testing.T) {
	isolate(t)
	v, err := Init(newRoot(t, "--color", "rainbow"))
	require.NoError(t, err)
	_, err = Load(v)
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	assert.True(t, Settings{Color: ColorAlways}.UseColor(false))
	assert.False(t, Settings{Color: ColorNever}.UseColor(true))
	assert.True(t, Settings{Color: ColorAuto}.UseColor(true))
	assert.False(t, Settings{Color: ColorAuto}.UseColor(false))
}
