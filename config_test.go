package shaderplay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultUniformNames(), cfg.Uniforms)
	assert.Equal(t, DeltaRaw, cfg.DeltaPolicy)
}

func TestDecodeConfig(t *testing.T) {
	const doc = `
width = 1024
height = 768
title = "plasma"
title_timing = true
hot_reload = true
delta_policy = "clamp"
gl_version = [3, 3]
clear_color = [0.0, 0.0, 0.0, 1.0]

[uniforms]
time = "iTime"
resolution = "iResolution"
mouse = ""

[snapshot]
dir = "shots"
format = "bmp"
`
	cfg := DefaultConfig()
	require.NoError(t, DecodeConfig(strings.NewReader(doc), &cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
	assert.Equal(t, "plasma", cfg.Title)
	assert.True(t, cfg.TitleTiming)
	assert.True(t, cfg.HotReload)
	assert.Equal(t, DeltaClamp, cfg.DeltaPolicy)
	assert.Equal(t, [2]int{3, 3}, cfg.GLVersion)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)
	assert.Equal(t, "iTime", cfg.Uniforms.Time)
	assert.Equal(t, "iResolution", cfg.Uniforms.Resolution)
	assert.Equal(t, "", cfg.Uniforms.Mouse)
	assert.Equal(t, "uFrame", cfg.Uniforms.Frame, "absent keys keep defaults")
	assert.Equal(t, SnapshotConfig{Dir: "shots", Format: "bmp"}, cfg.Snapshot)
	assert.True(t, cfg.Resizable, "absent keys keep defaults")
}

func TestDecodeConfigErrors(t *testing.T) {
	cfg := DefaultConfig()
	err := DecodeConfig(strings.NewReader("widht = 10\n"), &cfg)
	assert.ErrorContains(t, err, "widht")

	cfg = DefaultConfig()
	err = DecodeConfig(strings.NewReader(`delta_policy = "floor"`), &cfg)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	var tests = []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -5 },
		func(c *Config) { c.GLVersion = [2]int{3, 2} },
		func(c *Config) { c.GLVersion = [2]int{2, 1} },
		func(c *Config) { c.SwapInterval = -1 },
		func(c *Config) { c.DeltaPolicy = 7 },
		func(c *Config) { c.Snapshot.Format = "gif" },
	}
	for i, mutate := range tests {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shaderplay.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 320\nheight = 240\n"), 0o644))
	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)

	require.NoError(t, os.WriteFile(path, []byte("width = -1\n"), 0o644))
	_, err = LoadConfigFile(path)
	assert.ErrorContains(t, err, "invalid window size")

	_, err = LoadConfigFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
