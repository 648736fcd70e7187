package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Clean   CleanCmd         `cmd:"" help:"Normalize a raw PokerNow log into the cleaned CSV contract"`
	Analyze AnalyzeCmd       `cmd:"" help:"Run the full session analysis and write reports"`
	Export  ExportCmd        `cmd:"" help:"Export reconstructed hands as a PHH-style TOML session"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokernow-stats"),
		kong.Description("Session statistics for PokerNow hand logs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
