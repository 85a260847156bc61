package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/grove-thumbstick/engine/joystick"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, float32(35), cfg.Joystick.MaxRadius)
	assert.Equal(t, float32(100), cfg.Joystick.Size)
	assert.Equal(t, float32(40), cfg.Joystick.HandleSize)
	assert.Equal(t, float32(16), cfg.Joystick.RootFontSize)
	assert.Equal(t, "joystickPosition", cfg.Joystick.StorageKey)
	assert.Equal(t, float32(768), cfg.Joystick.MobileMaxWidth)
	assert.Equal(t, joystick.DefaultMobilePattern, cfg.Joystick.MobilePattern)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, "info", cfg.Logger.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grove.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
joystick:
  max_radius: 50
  touch_capable: true
storage:
  path: /tmp/grove-test/state.json
logger:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(50), cfg.Joystick.MaxRadius)
	assert.True(t, cfg.Joystick.TouchCapable)
	assert.Equal(t, float32(100), cfg.Joystick.Size, "untouched keys keep defaults")
	assert.Equal(t, "/tmp/grove-test/state.json", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grove.yaml")
	require.NoError(t, os.WriteFile(path, []byte("joystick:\n  handle_size: 500\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "joystick.handle_size")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"radius", func(c *Config) { c.Joystick.MaxRadius = 0 }, "joystick.max_radius"},
		{"size", func(c *Config) { c.Joystick.Size = -1 }, "joystick.size"},
		{"font", func(c *Config) { c.Joystick.RootFontSize = 0 }, "joystick.root_font_size"},
		{"key", func(c *Config) { c.Joystick.StorageKey = "" }, "joystick.storage_key"},
		{"pattern", func(c *Config) { c.Joystick.MobilePattern = "(" }, "joystick.mobile_pattern"},
		{"storage", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
		{"window", func(c *Config) { c.Window.Width = 0 }, "window.width"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestYAMLDump(t *testing.T) {
	out, err := NewDefaultConfig().YAML()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, *NewDefaultConfig(), back)
}
