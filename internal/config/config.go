package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tinyrange/learnedgl/internal/window"
)

const (
	appName        = "learnedgl"
	configName     = "config"
	configFileName = configName + ".yaml"
)

// getConfigPaths returns the config directory paths in priority order
func getConfigPaths() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", appName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, appName))
	}
	paths = append(paths, ".")
	return paths
}

// DefaultConfigDir returns the directory InitConfigFile writes to when no
// directory is given.
func DefaultConfigDir() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", appName), nil
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, appName), nil
	}
	return "", errors.New("unable to determine config directory")
}

// NewViper returns a viper instance with defaults, environment settings and
// the config search paths applied. An explicit configFile replaces the search.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		for _, path := range getConfigPaths() {
			v.AddConfigPath(path)
		}
	}
	SetViperEnvSettings(v)
	SetViperDefaults(v)
	return v
}

// InitConfig resolves the configuration with proper priority:
// 1. CLI flags (highest priority)
// 2. Environment variables
// 3. Config file
// 4. Defaults
//
// The viper instance is returned so the caller can watch the file.
func InitConfig(cmd *cobra.Command) (*Config, *viper.Viper, error) {
	configFile, _ := cmd.Flags().GetString("config")
	v := NewViper(configFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, errors.Wrap(err, "read config file")
		}
		// no config file is fine, defaults + env vars + flags apply
	}

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, nil, err
	}

	cfg, err := FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// bindFlags binds every flag under its config key, with dashes replaced by
// underscores. Flags that are not config keys are bound too; Unmarshal ignores them.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = errors.Wrapf(bindErr, "bind flag %s", f.Name)
		}
	})
	return err
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot be used to open a window.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.GLMajor < 1 || c.GLMinor < 0 {
		return errors.Errorf("invalid OpenGL version %d.%d", c.GLMajor, c.GLMinor)
	}
	if c.MaxFPS < 0 {
		return errors.Errorf("max_fps must not be negative, got %d", c.MaxFPS)
	}
	if len(c.ClearColor) != 4 {
		return errors.Errorf("clear_color needs 4 components, got %d", len(c.ClearColor))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return errors.Errorf("clear_color[%d] = %g is outside [0, 1]", i, v)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// RGBA returns the clear color. Validate guarantees four components.
func (c *Config) RGBA() [4]float32 {
	var rgba [4]float32
	copy(rgba[:], c.ClearColor)
	return rgba
}

// WindowOptions converts the config into window creation options.
func (c *Config) WindowOptions() window.Options {
	return window.Options{
		Title:         c.Title,
		Width:         c.Width,
		Height:        c.Height,
		GLMajor:       c.GLMajor,
		GLMinor:       c.GLMinor,
		CoreProfile:   c.CoreProfile,
		Resizable:     c.Resizable,
		VSync:         c.VSync,
		CaptureCursor: c.Camera,
	}
}

// Watch re-reads the config file whenever it changes and passes the result to
// fn. fn runs on the watcher goroutine; a config that fails to decode or
// validate is passed as an error and the previous one stays in effect.
func Watch(v *viper.Viper, fn func(*Config, error)) {
	v.OnConfigChange(func(ev fsnotify.Event) {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
			return
		}
		logrus.WithFields(logrus.Fields{
			"component": "config",
			"file":      ev.Name,
			"op":        ev.Op.String(),
		}).Debug("config file changed")
		fn(FromViper(v))
	})
	v.WatchConfig()
}

const fileHeader = `# learnedgl configuration file
# Generated automatically - customize as needed
#
# clear_color is r, g, b, a in [0, 1] and is reloaded while the window is open.
# Flags and LEARNEDGL_* environment variables override these values.
#

`

// InitConfigFile writes the default config to dir (DefaultConfigDir when
// empty) and returns its path. An existing file is never overwritten.
func InitConfigFile(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultConfigDir(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create config directory %s", dir)
	}

	configPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(configPath); err == nil {
		return "", errors.Errorf("config file already exists at %s", configPath)
	}

	data, err := Marshal(DefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(configPath, append([]byte(fileHeader), data...), 0o644); err != nil {
		return "", errors.Wrapf(err, "write config file %s", configPath)
	}
	return configPath, nil
}

// Marshal encodes cfg as YAML using the config file's key names.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	return data, nil
}
