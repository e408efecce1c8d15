package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/hub"
	"github.com/spf13/cobra"
)

func newAggregateCmd(app *App) *cobra.Command {
	var users bool

	cmd := &cobra.Command{
		Use:   "aggregate [HUB]",
		Short: "Reconcile every team's weekly submissions at the hub",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hubDir := app.Config.Hub
			if len(args) == 1 {
				hubDir = args[0]
			}
			if hubDir == "" {
				return fmt.Errorf("no hub directory: pass one or set the 'hub' config key")
			}

			result, err := hub.Aggregate(hubDir)
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}

			out := cmd.OutOrStdout()
			printTable(out, result.TeamBreakdown())
			printTable(out, result.OverallBreakdown())
			if users {
				grid := result.UserGrid()
				for _, row := range grid.Rows {
					for i := 1; i < len(row); i++ {
						row[i] = formatter.StatusCell(domain.SubmissionStatus(row[i]))
					}
				}
				printTable(out, grid)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&users, "users", false, "Include the per-user submission status grid")

	return cmd
}

func printTable(out io.Writer, t hub.Table) {
	fmt.Fprintf(out, "%s\n%s\n", formatter.Header(t.Title), formatter.RenderTable(t.Headers, t.Rows))
}
