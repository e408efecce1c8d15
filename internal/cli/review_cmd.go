package cli

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/analyser"
	"github.com/alexanderramin/tally/internal/hub"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var week, out string
	var push bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a week's logged hours and turn them into a percentage breakdown",
		Long: "Review analyses one ISO week of the local time log, lets you adjust\n" +
			"the per-project hours, and writes the resulting fractions of the total\n" +
			"as a project,fraction breakdown ready for submission.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if week == "" {
				week = hub.WeekOf(time.Now())
			}
			from, to, err := hub.WeekPeriod(week)
			if err != nil {
				return err
			}

			summary, warnings, err := analyser.Analyse(app.Config.LogFile, &from, &to)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), w.String())
			}

			hours := map[string]float64{}
			for _, project := range summary.Projects() {
				hours[project] = summary.Hours(project)
			}
			if len(hours) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No time recorded in %s.\n", week)
				return nil
			}

			if app.interactive() {
				if err := adjustHoursForm(week, hours); err != nil {
					return err
				}
			}

			fractions := fractionsOfTotal(hours)
			breakdown := formatBreakdown(fractions)

			switch {
			case out != "":
				if err := os.WriteFile(out, []byte(breakdown), 0o644); err != nil {
					return fmt.Errorf("writing breakdown: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s breakdown to %s\n", week, out)
			case !push:
				fmt.Fprint(cmd.OutOrStdout(), breakdown)
			}

			if push {
				cfg := app.Config
				if cfg.Hub == "" || cfg.Team == "" {
					return fmt.Errorf("submitting needs the 'hub' and 'team' config keys")
				}
				id, err := hub.Submit(cfg.Hub, cfg.Team, week, cfg.User, fractions, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s for %s as %s\n", week, cfg.User, id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "ISO week to review (e.g. 2024wk07, default: current week)")
	cmd.Flags().StringVar(&out, "out", "", "Write the breakdown to a file instead of stdout")
	cmd.Flags().BoolVar(&push, "submit", false, "Submit the breakdown to the hub straight away")

	return cmd
}

// adjustHoursForm presents one input per project, pre-filled with the logged
// hours, and replaces the map values with whatever the user settles on.
func adjustHoursForm(week string, hours map[string]float64) error {
	projects := make([]string, 0, len(hours))
	for project := range hours {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	values := make([]string, len(projects))
	fields := make([]huh.Field, 0, len(projects))
	for i, project := range projects {
		values[i] = strconv.FormatFloat(hours[project], 'f', 2, 64)
		fields = append(fields, huh.NewInput().
			Title(project).
			Value(&values[i]).
			Validate(validateHours))
	}

	form := huh.NewForm(huh.NewGroup(fields...).Title("Hours for "+week)).
		WithTheme(tallyHuhTheme()).
		WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	for i, project := range projects {
		h, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 64)
		if err != nil {
			return fmt.Errorf("invalid hours for %s: %q", project, values[i])
		}
		hours[project] = h
	}
	return nil
}

func validateHours(s string) error {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || h < 0 {
		return fmt.Errorf("enter a non-negative number of hours")
	}
	return nil
}

// fractionsOfTotal converts hours into fractions of their sum, rounded to
// two decimals. Zero-hour projects are dropped.
func fractionsOfTotal(hours map[string]float64) map[string]float64 {
	var total float64
	for _, h := range hours {
		total += h
	}
	fractions := map[string]float64{}
	if total <= 0 {
		return fractions
	}
	for project, h := range hours {
		if h <= 0 {
			continue
		}
		fractions[project] = math.Round(h/total*100) / 100
	}
	return fractions
}

func formatBreakdown(fractions map[string]float64) string {
	projects := make([]string, 0, len(fractions))
	for project := range fractions {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	var sb strings.Builder
	for _, project := range projects {
		fmt.Fprintf(&sb, "%s,%.2f\n", project, fractions[project])
	}
	return sb.String()
}
