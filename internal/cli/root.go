// Package cli wires the tally subcommands: the interactive tracker, the
// log analyser, the weekly review/submission flow, and the hub-side
// aggregation and provisioning tools.
package cli

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/config"
	"github.com/spf13/cobra"
)

// App carries the loaded configuration and environment probes the commands
// share.
type App struct {
	Config config.Config

	// IsInteractive reports whether stdin/stdout are attached to a
	// terminal; the tracker and review form refuse to run otherwise.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tally",
		Short: "Project time tracking, analysis, and team aggregation",
	}

	root.AddCommand(
		newTrackCmd(app),
		newAnalyseCmd(app),
		newReviewCmd(app),
		newSubmitCmd(app),
		newAggregateCmd(app),
		newSetupCmd(app),
	)

	return root
}

func errNotInteractive(name string) error {
	return fmt.Errorf("%s needs an interactive terminal", name)
}
