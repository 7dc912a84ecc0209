package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run self-play simulations and report win rates"`
	Replay   ReplayCmd        `cmd:"" help:"Replay an action-notation sequence onto a fresh board"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("skull"),
		kong.Description("Rules engine and self-play tools for the Skull card game"),
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
