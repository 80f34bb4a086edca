package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Count   CountCmd         `cmd:"" help:"Count the hero's knockouts across hand history files"`
	Inspect InspectCmd       `cmd:"" help:"Show the pot and elimination breakdown for one file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("knockouts"),
		kong.Description("Tournament knockout counter for plain-text hand history logs"),
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
