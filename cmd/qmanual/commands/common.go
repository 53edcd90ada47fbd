package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI defines the qmanual command surface and global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Generate a Quarto manual project from a spec document"`
	InitSpec InitSpecCmd `cmd:"" name:"init-spec" help:"Write a starter spec document"`
	Render   RenderCmd   `cmd:"" help:"Run quarto render on a generated project"`
	Preview  PreviewCmd  `cmd:"" help:"Run quarto preview on a generated project"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the project whenever the spec document changes"`
	Status   StatusCmd   `cmd:"" help:"Report writing progress of a generated project"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
