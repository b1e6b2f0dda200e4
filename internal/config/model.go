package config

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinyrange/learnedgl/internal/glutil"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "LEARNEDGL"

// Config holds all configuration for the program
type Config struct {
	// window settings
	Title     string `mapstructure:"title" yaml:"title"`
	Width     int    `mapstructure:"width" yaml:"width"`
	Height    int    `mapstructure:"height" yaml:"height"`
	Resizable bool   `mapstructure:"resizable" yaml:"resizable"`
	VSync     bool   `mapstructure:"vsync" yaml:"vsync"`
	MaxFPS    int    `mapstructure:"max_fps" yaml:"max_fps"`

	// context settings
	GLMajor     int  `mapstructure:"gl_major" yaml:"gl_major"`
	GLMinor     int  `mapstructure:"gl_minor" yaml:"gl_minor"`
	CoreProfile bool `mapstructure:"core_profile" yaml:"core_profile"`

	ClearColor []float32 `mapstructure:"clear_color" yaml:"clear_color,flow"`

	// Camera enables the fly camera and shows its state in the title bar.
	Camera   bool   `mapstructure:"camera" yaml:"camera"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the settings of the "Hello Window" chapter.
func DefaultConfig() *Config {
	return &Config{
		Title:       "LearnOpenGL",
		Width:       glutil.ScreenWidth,
		Height:      glutil.ScreenHeight,
		Resizable:   true,
		VSync:       true,
		MaxFPS:      120,
		GLMajor:     3,
		GLMinor:     3,
		CoreProfile: true,
		ClearColor:  []float32{0.2, 0.3, 0.3, 1.0},
		Camera:      false,
		LogLevel:    logrus.InfoLevel.String(),
	}
}

// BindFlags binds CLI flags to the cobra command
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().StringP("title", "t", defaults.Title, "Window title")
	cmd.PersistentFlags().IntP("width", "W", defaults.Width, "Window width in pixels")
	cmd.PersistentFlags().IntP("height", "H", defaults.Height, "Window height in pixels")
	cmd.PersistentFlags().Bool("resizable", defaults.Resizable, "Allow the window to be resized")
	cmd.PersistentFlags().Bool("vsync", defaults.VSync, "Synchronise buffer swaps with the display")
	cmd.PersistentFlags().Int("max-fps", defaults.MaxFPS, "Frame rate cap without vsync (0 for none)")
	cmd.PersistentFlags().Int("gl-major", defaults.GLMajor, "Requested OpenGL major version")
	cmd.PersistentFlags().Int("gl-minor", defaults.GLMinor, "Requested OpenGL minor version")
	cmd.PersistentFlags().Bool("core-profile", defaults.CoreProfile, "Request a core profile context")
	cmd.PersistentFlags().StringSlice("clear-color", formatColor(defaults.ClearColor), "Clear color as r,g,b,a in [0,1]")
	cmd.PersistentFlags().Bool("camera", defaults.Camera, "Enable the WASD/mouse fly camera")
	cmd.PersistentFlags().StringP("log-level", "l", defaults.LogLevel, "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a config file")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// formatColor renders a color for a string slice flag, which viper hands to
// the decoder as a list rather than pflag's bracketed float slice text.
func formatColor(c []float32) []string {
	out := make([]string, len(c))
	for i, v := range c {
		out[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return out
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("resizable", defaults.Resizable)
	v.SetDefault("vsync", defaults.VSync)
	v.SetDefault("max_fps", defaults.MaxFPS)
	v.SetDefault("gl_major", defaults.GLMajor)
	v.SetDefault("gl_minor", defaults.GLMinor)
	v.SetDefault("core_profile", defaults.CoreProfile)
	v.SetDefault("clear_color", defaults.ClearColor)
	v.SetDefault("camera", defaults.Camera)
	v.SetDefault("log_level", defaults.LogLevel)
}

// SetViperEnvSettings configures viper environment variable settings
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
