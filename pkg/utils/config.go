package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/mmrplane/pkg/astronomy/resonance"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "MMRPLANE"
	appDir     = ".mmrplane"
)

// Config represents the mmrplane configuration
type Config struct {
	Client   ClientConfig              `json:"client" yaml:"client" mapstructure:"client"`
	Window   resonance.Window          `json:"window" yaml:"window" mapstructure:"window"`
	Search   resonance.SearchOptions   `json:"search" yaml:"search" mapstructure:"search"`
	Solver   resonance.DistanceOptions `json:"solver" yaml:"solver" mapstructure:"solver"`
	Analysis AnalysisConfig            `json:"analysis" yaml:"analysis" mapstructure:"analysis"`
}

// ClientConfig contains CLI-wide settings
type ClientConfig struct {
	LogLevel     string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	OutputFormat string `json:"output_format" yaml:"output_format" mapstructure:"output_format"`
}

// AnalysisConfig contains system-analysis settings
type AnalysisConfig struct {
	// NearThreshold is the plane distance at or below which a triplet is
	// reported as near-resonant.
	NearThreshold float64 `json:"near_threshold" yaml:"near_threshold" mapstructure:"near_threshold"`
	MaxConcurrent int     `json:"max_concurrent" yaml:"max_concurrent" mapstructure:"max_concurrent"`
	// StarMass in solar masses, used when bodies are given by semi-major axis.
	StarMass float64 `json:"star_mass" yaml:"star_mass" mapstructure:"star_mass"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Client: ClientConfig{
			LogLevel:     "info",
			OutputFormat: "text",
		},
		Window: resonance.Window{XMin: 1.1, XMax: 2.5, YMin: 1.1, YMax: 2.5},
		Search: resonance.DefaultSearchOptions(),
		Solver: resonance.DefaultDistanceOptions(),
		Analysis: AnalysisConfig{
			NearThreshold: 0.01,
			MaxConcurrent: 4,
			StarMass:      1.0,
		},
	}
}

// LoadConfig loads configuration from path, or from the first config.yaml
// found in $HOME/.mmrplane, . and ./configs when path is empty. Missing
// files yield the defaults. Every key can be overridden through
// MMRPLANE_<SECTION>_<KEY> environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(configType)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, appDir))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := setDefaults(v, DefaultConfig()); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		slog.Debug("no config file found, using defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key of cfg with viper so that environment
// overrides apply even when the file omits the key.
func setDefaults(v *viper.Viper, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal defaults: %w", err)
	}

	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to decode defaults: %w", err)
	}

	var walk func(prefix string, node map[string]interface{})
	walk = func(prefix string, node map[string]interface{}) {
		for key, value := range node {
			if child, ok := value.(map[string]interface{}); ok {
				walk(prefix+key+".", child)
				continue
			}
			v.SetDefault(prefix+key, value)
		}
	}
	walk("", tree)
	return nil
}

// SaveConfig writes config as YAML to path, or to the default location when
// path is empty, and returns the file written.
func SaveConfig(config *Config, path string) (string, error) {
	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if _, err := ParseLogLevel(config.Client.LogLevel); err != nil {
		return err
	}

	switch config.Client.OutputFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %q", config.Client.OutputFormat)
	}

	if err := config.Window.Validate(); err != nil {
		return err
	}
	if err := config.Search.Validate(); err != nil {
		return err
	}
	if err := config.Solver.Validate(); err != nil {
		return err
	}

	if !(config.Analysis.NearThreshold >= 0) {
		return fmt.Errorf("near threshold must not be negative")
	}
	if config.Analysis.MaxConcurrent <= 0 {
		return fmt.Errorf("max concurrent must be positive")
	}
	if !(config.Analysis.StarMass > 0) {
		return fmt.Errorf("star mass must be positive")
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, appDir, "config.yaml"), nil
}

// ParseLogLevel maps a config log level onto slog.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", level)
	}
}

// SearchOptions returns the enumerator bounds.
func (c *Config) SearchOptions() resonance.SearchOptions {
	return c.Search
}

// WindowBounds returns the plane window.
func (c *Config) WindowBounds() resonance.Window {
	return c.Window
}

// DistanceOptions returns the solver settings.
func (c *Config) DistanceOptions() resonance.DistanceOptions {
	return c.Solver
}
