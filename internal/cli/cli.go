// Package cli implements the amidakuji command-line interface on cobra.
//
// Commands:
//
//   - generate: render a random diagram to PDF, SVG, PNG, or JSON
//   - simulate: trace every start line of a saved JSON diagram
//   - serve: serve diagrams over HTTP
//   - completion: print shell completion scripts
//
// The root command attaches the CLI logger to the command context; pass
// --verbose (-v) for debug output with timestamps.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amidakuji/pkg/config"
	"github.com/matzehuels/amidakuji/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "amidakuji"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. Timestamps follow the level as in
// New.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Logger.SetReportTimestamp(level <= log.DebugLevel)
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadConfig reads the config file selected by --config or the default
// search order.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, path, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

