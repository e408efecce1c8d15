package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/analyser"
	"github.com/alexanderramin/tally/internal/timelog"
	"github.com/spf13/cobra"
)

func newAnalyseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyse LOG [FROM TO]",
		Short: "Sum logged time per top-level project",
		Long: "Analyse sums the durations in a time log per top-level project,\n" +
			"optionally clipped to the half-open period [FROM, TO).\n" +
			"Dates use the dd/MM/yyyy format of the log itself.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected LOG or LOG FROM TO, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var from, to *time.Time
			if len(args) == 3 {
				f, err := time.ParseInLocation(timelog.DateLayout, args[1], time.Local)
				if err != nil {
					return fmt.Errorf("invalid start date %q: expected dd/MM/yyyy", args[1])
				}
				t, err := time.ParseInLocation(timelog.DateLayout, args[2], time.Local)
				if err != nil {
					return fmt.Errorf("invalid end date %q: expected dd/MM/yyyy", args[2])
				}
				from, to = &f, &t
			}

			summary, warnings, err := analyser.Analyse(args[0], from, to)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), w.String())
			}
			for _, project := range summary.Projects() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f\n", project, summary.Hours(project))
			}
			return nil
		},
	}
	return cmd
}
