// Package config loads default generation and rendering settings.
//
// Config file locations (priority order):
//  1. the path given with --config
//  2. $AMIDAKUJI_CONFIG
//  3. ./amidakuji.toml, ./amidakuji.yaml, ./amidakuji.yml
//  4. $XDG_CONFIG_HOME/amidakuji/config.toml (or ~/.config/amidakuji/config.toml)
//
// The format follows the file extension: TOML for .toml, YAML for .yaml and
// .yml. Command-line flags override every value read here.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/ladder"
	"github.com/matzehuels/amidakuji/pkg/render/layout"
	"github.com/matzehuels/amidakuji/pkg/render/sink"
)

const (
	appName = "amidakuji"

	// EnvPath names the environment variable holding an explicit config path.
	EnvPath = "AMIDAKUJI_CONFIG"

	// DefaultAddr is the listen address of `amidakuji serve`.
	DefaultAddr = ":8080"

	// DefaultMaxLines and DefaultMaxRungs bound HTTP requests.
	DefaultMaxLines = 52
	DefaultMaxRungs = 500
)

// Config holds user defaults.
type Config struct {
	Strategy    string   `toml:"strategy" yaml:"strategy"`
	MarginRatio *float64 `toml:"margin_ratio" yaml:"margin_ratio"`
	Format      string   `toml:"format" yaml:"format"`
	Page        string   `toml:"page" yaml:"page"`
	Seed        uint64   `toml:"seed" yaml:"seed"` // 0 draws a fresh seed per run
	Server      Server   `toml:"server" yaml:"server"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr     string `toml:"addr" yaml:"addr"`
	MaxLines int    `toml:"max_lines" yaml:"max_lines"`
	MaxRungs int    `toml:"max_rungs" yaml:"max_rungs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Margin returns the configured margin ratio.
func (c *Config) Margin() float64 {
	if c.MarginRatio == nil {
		return ladder.DefaultMarginRatio
	}
	return *c.MarginRatio
}

func (c *Config) applyDefaults() {
	if c.Strategy == "" {
		c.Strategy = string(ladder.Baseline)
	}
	if c.MarginRatio == nil {
		m := ladder.DefaultMarginRatio
		c.MarginRatio = &m
	}
	if c.Page == "" {
		c.Page = layout.A4.Name
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxLines == 0 {
		c.Server.MaxLines = DefaultMaxLines
	}
	if c.Server.MaxRungs == 0 {
		c.Server.MaxRungs = DefaultMaxRungs
	}
}

// Validate checks every configured value.
func (c *Config) Validate() error {
	if _, err := ladder.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "strategy")
	}
	if err := errors.ValidateRatio("margin_ratio", c.Margin(), ladder.MaxMarginRatio); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "margin_ratio")
	}
	if c.Format != "" {
		if err := sink.ValidateFormat(c.Format); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "format")
		}
	}
	if _, err := layout.ParsePage(c.Page); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "page")
	}
	if c.Server.MaxLines < ladder.MinLines || c.Server.MaxRungs < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server limits must allow at least %d lines and 0 rungs", ladder.MinLines)
	}
	return nil
}

// Load finds and loads the config file. explicit, when non-empty, wins over
// every search location and must exist. With no file found, Load returns
// the defaults and an empty path.
func Load(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return Default(), "", nil
	}
	c, err := LoadFromPath(path)
	return c, path, err
}

// LoadFromPath loads and validates the config at path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}

	var c Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config extension %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindConfigPath returns the first existing config file in the search
// order, or "".
func FindConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	candidates := []string{appName + ".toml", appName + ".yaml", appName + ".yml"}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"), filepath.Join(dir, "config.yaml"))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// configDir returns the config directory using the XDG standard
// (~/.config/amidakuji/).
func configDir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
