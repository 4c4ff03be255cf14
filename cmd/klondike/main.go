package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play in the terminal"`
	Serve    ServeCmd         `cmd:"" help:"Run the WebSocket game server"`
	Simulate SimulateCmd      `cmd:"" help:"Play many seeded deals with a bot and report statistics"`
	Deal     DealCmd          `cmd:"" help:"Print the opening layout of a deal"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("klondike"),
		kong.Description("Klondike solitaire: terminal game, WebSocket server and bot simulator"),
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
