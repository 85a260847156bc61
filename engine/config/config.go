// Package config loads engine and widget settings from defaults, an optional
// YAML file and GROVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/grove-thumbstick/engine/joystick"
)

// Config is the full application configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Joystick JoystickConfig `mapstructure:"joystick" yaml:"joystick"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
}

type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	VSync  bool   `mapstructure:"vsync" yaml:"vsync"`
}

type JoystickConfig struct {
	MaxRadius    float32 `mapstructure:"max_radius" yaml:"max_radius"`
	Size         float32 `mapstructure:"size" yaml:"size"`
	HandleSize   float32 `mapstructure:"handle_size" yaml:"handle_size"`
	RootFontSize float32 `mapstructure:"root_font_size" yaml:"root_font_size"`
	StorageKey   string  `mapstructure:"storage_key" yaml:"storage_key"`
	// Device detection. TouchCapable forces the mobile layout regardless of
	// what the platform reports.
	TouchCapable    bool    `mapstructure:"touch_capable" yaml:"touch_capable"`
	UserAgent       string  `mapstructure:"user_agent" yaml:"user_agent"`
	MobilePattern   string  `mapstructure:"mobile_pattern" yaml:"mobile_pattern"`
	MobileMaxWidth  float32 `mapstructure:"mobile_max_width" yaml:"mobile_max_width"`
	MoveSpeedPixels float32 `mapstructure:"move_speed" yaml:"move_speed"`
}

type StorageConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	// -- Window --
	v.SetDefault("window.title", "Grove Thumbstick")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.vsync", true)

	// -- Joystick --
	v.SetDefault("joystick.max_radius", 35.0)
	v.SetDefault("joystick.size", 100.0)
	v.SetDefault("joystick.handle_size", 40.0)
	v.SetDefault("joystick.root_font_size", 16.0)
	v.SetDefault("joystick.storage_key", "joystickPosition")
	v.SetDefault("joystick.touch_capable", false)
	v.SetDefault("joystick.user_agent", "")
	v.SetDefault("joystick.mobile_pattern", joystick.DefaultMobilePattern)
	v.SetDefault("joystick.mobile_max_width", 768.0)
	v.SetDefault("joystick.move_speed", 240.0)

	// -- Storage --
	v.SetDefault("storage.path", "~/.config/grove/state.json")

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "grove")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads the optional file at path on top of the defaults. An empty path
// looks for grove.yaml in the working directory and tolerates its absence.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("GROVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("grove")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window.width and window.height must be positive")
	}
	j := c.Joystick
	if j.MaxRadius <= 0 {
		return fmt.Errorf("joystick.max_radius must be positive")
	}
	if j.Size <= 0 {
		return fmt.Errorf("joystick.size must be positive")
	}
	if j.HandleSize <= 0 || j.HandleSize > j.Size {
		return fmt.Errorf("joystick.handle_size must be in (0, size]")
	}
	if j.RootFontSize <= 0 {
		return fmt.Errorf("joystick.root_font_size must be positive")
	}
	if j.StorageKey == "" {
		return fmt.Errorf("joystick.storage_key is required")
	}
	if j.MobilePattern != "" {
		if _, err := regexp.Compile(j.MobilePattern); err != nil {
			return fmt.Errorf("joystick.mobile_pattern: %w", err)
		}
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
