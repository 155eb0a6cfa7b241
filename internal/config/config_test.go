package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	// Given: the built-in defaults

	// Then: they pass validation
	require.NoError(t, Default().Validate())
	assert.Equal(t, "info", Default().Logging.Level)
	assert.Empty(t, Default().Game.World)
}

func TestLoad_NoFilesUsesDefaults(t *testing.T) {
	// Given: a directory with no project config
	t.Setenv("HOME", t.TempDir())

	// When: loading
	cfg, err := Load(t.TempDir())

	// Then: defaults come back
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ProjectFileOverlays(t *testing.T) {
	// Given: a project config setting a world file
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	content := "game:\n  world: keep.yaml\nui:\n  no_color: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte(content), 0o644))

	// When: loading from that directory
	cfg, err := Load(dir)

	// Then: the overlay applies, untouched fields keep defaults
	require.NoError(t, err)
	assert.Equal(t, "keep.yaml", cfg.Game.World)
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_UserFileThenProjectFile(t *testing.T) {
	// Given: a user config and a project config that disagree
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".hollowkeep"), 0o755))
	userCfg := "logging:\n  level: debug\ngame:\n  world: user.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".hollowkeep", UserConfigName), []byte(userCfg), 0o644))

	dir := t.TempDir()
	projCfg := "game:\n  world: project.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte(projCfg), 0o644))

	// When: loading
	cfg, err := Load(dir)

	// Then: the project file wins where both speak, the user file
	// fills the rest
	require.NoError(t, err)
	assert.Equal(t, "project.yaml", cfg.Game.World)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvWinsOverFiles(t *testing.T) {
	// Given: a project config and env overrides
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	projCfg := "game:\n  world: project.yaml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte(projCfg), 0o644))

	t.Setenv("HOLLOWKEEP_WORLD", "env.yaml")
	t.Setenv("HOLLOWKEEP_LOG_LEVEL", "warn")
	t.Setenv("HOLLOWKEEP_PLAIN", "1")

	// When: loading
	cfg, err := Load(dir)

	// Then: env vars take precedence
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.Game.World)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.UI.Plain)
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigName), []byte("game: ["), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOLLOWKEEP_LOG_LEVEL", "loud")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERR_102")
}

func TestIsEnvTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "on"} {
		t.Setenv("HOLLOWKEEP_NO_COLOR", v)
		cfg := Default()
		applyEnv(&cfg)
		assert.True(t, cfg.UI.NoColor, "value %q", v)
	}

	t.Setenv("HOLLOWKEEP_NO_COLOR", "0")
	cfg := Default()
	applyEnv(&cfg)
	assert.False(t, cfg.UI.NoColor)
}
