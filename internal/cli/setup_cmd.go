package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/tally/internal/hub"
	"github.com/spf13/cobra"
)

func newSetupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup FROM_YEAR TO_YEAR",
		Short: "Provision week drop boxes at the hub for every team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.Hub == "" {
				return fmt.Errorf("no hub directory: set the 'hub' config key")
			}
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}

			if err := hub.Provision(app.Config.Hub, from, to); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Provisioned drop boxes for %d-%d under %s\n", from, to, app.Config.Hub)
			return nil
		},
	}
	return cmd
}
