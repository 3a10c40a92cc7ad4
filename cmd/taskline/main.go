package main

import (
	"flag"
	"fmt"
	"os"

	"taskline/internal/cli"
	"taskline/internal/config"
	"taskline/internal/kv"
	"taskline/internal/logging"
	"taskline/internal/task"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	backend, err := kv.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "store:", err)
		os.Exit(1)
	}

	store := task.New(backend,
		task.WithKey(cfg.Store.Key),
		task.WithLogger(logger),
	)
	store.Load()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(store, args, cli.Options{
		Group: *groupPending,
	})
	_ = logger.Sync()
	os.Exit(code)
}
