package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tally/internal/cli"
	"github.com/alexanderramin/tally/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, warnings, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "config:", w.String())
	}

	app := &cli.App{Config: cfg}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
