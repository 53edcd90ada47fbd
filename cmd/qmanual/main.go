package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/qmanual/cmd/qmanual/commands"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("qmanual"),
		kong.Description("Generate Quarto manual scaffolds (website) from a YAML spec."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
