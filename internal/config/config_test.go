package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/learnedgl/internal/glutil"
)

// newTestCommand returns a command with the config flags bound, parsed from args.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

// isolate keeps the search paths away from the developer's real config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "LearnOpenGL", cfg.Title)
	assert.Equal(t, glutil.ScreenWidth, cfg.Width)
	assert.Equal(t, glutil.ScreenHeight, cfg.Height)
	assert.Equal(t, 3, cfg.GLMajor)
	assert.Equal(t, 3, cfg.GLMinor)
	assert.True(t, cfg.CoreProfile)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, cfg.RGBA())
	require.NoError(t, cfg.Validate())
}

func TestInitConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, v, err := InitConfig(newTestCommand(t))
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestInitConfigFromFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
title: "Colors"
width: 1024
height: 768
vsync: false
gl_major: 4
gl_minor: 1
clear_color: [0.1, 0.1, 0.1, 1]
camera: true
log_level: debug
`)

	cfg, _, err := InitConfig(newTestCommand(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "Colors", cfg.Title)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
	assert.False(t, cfg.VSync)
	assert.Equal(t, 4, cfg.GLMajor)
	assert.Equal(t, 1, cfg.GLMinor)
	assert.Equal(t, [4]float32{0.1, 0.1, 0.1, 1}, cfg.RGBA())
	assert.True(t, cfg.Camera)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.True(t, cfg.CoreProfile)
	assert.True(t, cfg.Resizable)
}

func TestInitConfigSearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "title: found\n")

	cfg, _, err := InitConfig(newTestCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "found", cfg.Title)
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, _, err := InitConfig(newTestCommand(t, "--config", filepath.Join(dir, "nope.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestInitConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "width: [oops\n")

	_, _, err := InitConfig(newTestCommand(t, "--config", path))
	require.Error(t, err)
}

func TestPriorityFlagsOverEnvOverFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "title: file\nwidth: 1000\nheight: 700\n")
	t.Setenv("LEARNEDGL_TITLE", "env")
	t.Setenv("LEARNEDGL_WIDTH", "1100")
	t.Setenv("LEARNEDGL_CLEAR_COLOR", "0,0,1,1")

	cfg, _, err := InitConfig(newTestCommand(t, "--config", path, "--width", "1200", "--gl-minor", "2"))
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.Title)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 700, cfg.Height)
	assert.Equal(t, 2, cfg.GLMinor)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, cfg.RGBA())
}

func TestClearColorFlag(t *testing.T) {
	isolate(t)

	cfg, _, err := InitConfig(newTestCommand(t, "--clear-color", "1,0.5,0,1"))
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1, 0.5, 0, 1}, cfg.RGBA())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "window size"},
		{"negative height", func(c *Config) { c.Height = -1 }, "window size"},
		{"gl major", func(c *Config) { c.GLMajor = 0 }, "OpenGL version"},
		{"negative fps", func(c *Config) { c.MaxFPS = -1 }, "max_fps"},
		{"short color", func(c *Config) { c.ClearColor = []float32{1, 1, 1} }, "4 components"},
		{"color range", func(c *Config) { c.ClearColor = []float32{0, 2, 0, 1} }, "clear_color[1]"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWindowOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Camera = true

	opts := cfg.WindowOptions()
	assert.Equal(t, "LearnOpenGL", opts.Title)
	assert.Equal(t, glutil.ScreenWidth, opts.Width)
	assert.Equal(t, glutil.ScreenHeight, opts.Height)
	assert.Equal(t, 3, opts.GLMajor)
	assert.Equal(t, 3, opts.GLMinor)
	assert.True(t, opts.CoreProfile)
	assert.True(t, opts.CaptureCursor)
}

func TestInitConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	path, err := InitConfigFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# learnedgl configuration file")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, DefaultConfig(), &cfg)

	_, err = InitConfigFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitConfigFileIsLoadable(t *testing.T) {
	dir := isolate(t)

	path, err := InitConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".config", "learnedgl", "config.yaml"), path)

	cfg, _, err := InitConfig(newTestCommand(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWatchReloadsClearColor(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "clear_color: [0.2, 0.3, 0.3, 1]\n")

	_, v, err := InitConfig(newTestCommand(t, "--config", path))
	require.NoError(t, err)

	updates := make(chan *Config, 16)
	Watch(v, func(cfg *Config, err error) {
		if err == nil {
			updates <- cfg
		}
	})

	// fsnotify needs a moment to register the watch
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("clear_color: [1, 0, 0, 1]\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-updates:
			if cfg.RGBA() == [4]float32{1, 0, 0, 1} {
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}
