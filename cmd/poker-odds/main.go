package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals `embed:""`

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Calc    CalcCmd          `cmd:"" default:"withargs" help:"Calculate win probabilities for two or more hands"`
	Batch   BatchCmd         `cmd:"" help:"Run every scenario in a TOML file"`
}

func main() {
	// A missing .env is fine; it only seeds POKER_ODDS_* defaults.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Exact and Monte Carlo hold'em showdown odds"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
