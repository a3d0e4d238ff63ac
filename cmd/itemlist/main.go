package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/itemlist/internal/cli"
	"github.com/Makepad-fr/itemlist/internal/config"
	"github.com/Makepad-fr/itemlist/internal/logging"
)

var version = "dev"

func main() {
	// Root flags (apply to every subcommand), env and .env underneath.
	cfg, args, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintHelp()
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if cfg.Version {
		fmt.Printf("itemlist %s\n", version)
		return
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(args, cli.Options{Config: cfg, Log: log, In: os.Stdin})
	_ = log.Sync()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
