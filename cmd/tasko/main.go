package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amolina/tasko/internal/cli"
	"github.com/amolina/tasko/internal/store"
	"github.com/amolina/tasko/internal/tracker"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine store path: env var or default ~/.tasko/tasko.db
	dbPath := os.Getenv("TASKO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tasko", "tasko.db")
	}

	kv, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer kv.Close()

	tr, err := tracker.New(kv)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	app := &cli.App{
		Tracker: tr,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
