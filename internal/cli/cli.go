// Package cli implements the framefit command-line interface.
//
// This package provides commands for computing thumbnail layouts, validating
// and rendering stored plans, inspecting zone and slot definitions, and
// running the HTTP API. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - fit: Compute a full layout for a headline (and optional logos)
//   - logos: Size and arrange logos without fitting text
//   - validate: Re-check a stored plan against the zone rules
//   - render: Draw a stored plan as an SVG debug overlay
//   - preview: Interactively nudge a text position and watch validation
//   - zones: Show safe margins and danger zones for a device class
//   - slots: List the logo slot presets
//   - serve: Run the HTTP API server
//   - cache: Manage the local layout cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framefit/pkg/buildinfo"
	"github.com/matzehuels/framefit/pkg/cache"
	"github.com/matzehuels/framefit/pkg/config"
	"github.com/matzehuels/framefit/pkg/pipeline"
	"github.com/matzehuels/framefit/pkg/safezone"
)

// appName is the application name used for directories and display.
const appName = "framefit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the --config override; empty means the default path.
	ConfigPath string

	zones   *safezone.Registry
	palette []string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Framefit computes constrained thumbnail layouts",
		Long:         `Framefit is a deterministic layout engine for 16:9 video thumbnails: it fits headline text, places it clear of platform UI and the subject, picks a readable color, and arranges brand logos.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: "+configHint()+")")

	root.AddCommand(c.fitCommand())
	root.AddCommand(c.logosCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.zonesCommand())
	root.AddCommand(c.slotsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the optional config file and applies its overrides:
// zone tables, palette, font metrics, and placement presets.
func (c *CLI) loadConfig() error {
	path := c.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.zones = cfg.Registry()
	c.palette = cfg.PaletteHex()
	cfg.ApplyFonts()
	cfg.ApplyCandidates()
	return nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	layoutCache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(layoutCache, nil, c.Logger)
	r.Zones = c.zones
	return r, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/framefit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func configHint() string {
	if p := config.DefaultPath(); p != "" {
		return p
	}
	return "~/.config/framefit/framefit.toml"
}

// applyCLIOptions copies config-derived settings into pipeline options
// unless the flags already set them.
func (c *CLI) applyCLIOptions(opts *pipeline.Options) {
	opts.Logger = c.Logger
	if opts.Zones == nil {
		opts.Zones = c.zones
	}
	if len(opts.Palette) == 0 {
		opts.Palette = c.palette
	}
}
