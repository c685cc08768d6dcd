// Package config loads flowsmith settings from an optional YAML file,
// FLOWSMITH_* environment variables and built-in defaults, in that order
// of precedence from lowest to highest: defaults, file, environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HendryAvila/flowsmith/internal/domain"
	"github.com/spf13/viper"
)

// FileName is the config file base name, without extension.
const FileName = "flowsmith"

// EnvPrefix prefixes every environment override, e.g. FLOWSMITH_INDUSTRY.
const EnvPrefix = "FLOWSMITH"

// Output formats accepted by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the merged runtime configuration.
type Config struct {
	Industry string        `mapstructure:"industry" yaml:"industry"`
	Overlays []string      `mapstructure:"overlays" yaml:"overlays"`
	Output   string        `mapstructure:"output" yaml:"output"`
	History  HistoryConfig `mapstructure:"history" yaml:"history"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`

	// File is the config file that was read, empty when defaults were used.
	File string `mapstructure:"-" yaml:"-"`
}

// HistoryConfig controls the local analysis history.
type HistoryConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	DataDir    string `mapstructure:"data_dir" yaml:"data_dir"`
	MaxResults int    `mapstructure:"max_results" yaml:"max_results"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Industry: string(domain.Generic),
		Overlays: domain.Builtin(),
		Output:   OutputText,
		History: HistoryConfig{
			Enabled:    true,
			DataDir:    defaultDataDir(),
			MaxResults: 20,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowsmith"
	}
	return filepath.Join(home, ".flowsmith")
}

// Load reads configuration. An explicit path must exist; without one the
// file is looked up in the working directory and then in ~/.flowsmith,
// and a missing file just means defaults.
func Load(path string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("industry", def.Industry)
	v.SetDefault("overlays", def.Overlays)
	v.SetDefault("output", def.Output)
	v.SetDefault("history.enabled", def.History.Enabled)
	v.SetDefault("history.data_dir", def.History.DataDir)
	v.SetDefault("history.max_results", def.History.MaxResults)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(def.History.DataDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(path), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	// Comma-separated env values arrive as a single element.
	cfg.Overlays = splitList(cfg.Overlays)
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalizes and checks the configuration.
func (c *Config) Validate() error {
	c.Industry = strings.ToLower(strings.TrimSpace(c.Industry))
	if c.Industry == "" {
		c.Industry = string(domain.Generic)
	}

	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config: output must be text, json or yaml, got %q", c.Output)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format must be text or json, got %q", c.Log.Format)
	}

	known := map[string]bool{}
	for _, name := range domain.Builtin() {
		known[name] = true
	}
	for _, name := range c.Overlays {
		if !known[name] {
			return fmt.Errorf("config: unknown overlay %q (built-in: %s)", name, strings.Join(domain.Builtin(), ", "))
		}
	}

	if c.History.MaxResults <= 0 {
		c.History.MaxResults = 20
	}
	return nil
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func describe(path string) string {
	if path == "" {
		return FileName + ".yaml"
	}
	return path
}
