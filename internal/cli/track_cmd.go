package cli

import (
	"os"

	"github.com/alexanderramin/tally/internal/project"
	"github.com/alexanderramin/tally/internal/recorder"
	"github.com/alexanderramin/tally/internal/timelog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Record time against the project tree interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive("track")
			}
			cfg := app.Config
			forest, err := project.Load(cfg.ProjectsFile)
			if err != nil {
				return err
			}

			notify := &teaNotifier{}
			rec := recorder.New(recorder.Options{
				Active:        cfg.Interval,
				SemiActive:    cfg.Wait,
				Policy:        cfg.AutoCount,
				WriteTimeouts: cfg.WriteTimeouts,
				User:          cfg.User,
			}, timelog.NewFileAppender(cfg.LogFile), notify, recorder.NewLogObserver(os.Stderr))

			p := tea.NewProgram(newTrackModel(rec, forest), tea.WithAltScreen())
			notify.send = p.Send
			_, err = p.Run()
			return err
		},
	}
	return cmd
}
