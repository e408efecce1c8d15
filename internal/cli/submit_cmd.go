package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/hub"
	"github.com/spf13/cobra"
)

func newSubmitCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "submit FILE",
		Short: "Drop a weekly percentage breakdown into the hub",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if cfg.Hub == "" || cfg.Team == "" {
				return fmt.Errorf("submitting needs the 'hub' and 'team' config keys")
			}
			if week == "" {
				week = hub.WeekOf(time.Now())
			}

			fractions, warnings, err := hub.ReadPercentageFile(args[0])
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}

			id, err := hub.Submit(cfg.Hub, cfg.Team, week, cfg.User, fractions, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s for %s as %s\n", week, cfg.User, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week drop box to submit into (e.g. 2024wk07, default: current week)")

	return cmd
}
