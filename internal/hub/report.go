package hub

import (
	"fmt"
)

// Table is a rendered-agnostic report: headers plus rows of cells. The CLI
// decides how to draw it. Producing a table is a pure projection of the
// actuals; no further computation happens here.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// TeamBreakdown reports, per team, the headcount/reported/missing figures
// and the per-project fraction sums for every week.
func (r *Result) TeamBreakdown() Table {
	weeks := r.Combined.WeekIDs()
	t := Table{
		Title:   "Per-team breakdown",
		Headers: append([]string{"TEAM", "PROJECT"}, weeks...),
	}
	for _, team := range r.TeamNames() {
		actuals := r.Teams[team]
		t.Rows = append(t.Rows, summaryRows(team, actuals, weeks)...)
		for _, project := range actuals.ProjectNames() {
			t.Rows = append(t.Rows, projectRow(team, project, actuals, weeks))
		}
	}
	return t
}

// OverallBreakdown reports the same figures collapsed across all teams.
func (r *Result) OverallBreakdown() Table {
	weeks := r.Combined.WeekIDs()
	t := Table{
		Title:   "Organization breakdown",
		Headers: append([]string{"", "PROJECT"}, weeks...),
	}
	t.Rows = append(t.Rows, summaryRows("", r.Combined, weeks)...)
	for _, project := range r.Combined.ProjectNames() {
		t.Rows = append(t.Rows, projectRow("", project, r.Combined, weeks))
	}
	return t
}

// UserGrid reports each user's submission status per week.
func (r *Result) UserGrid() Table {
	weeks := r.Combined.WeekIDs()
	t := Table{
		Title:   "Per-user submissions",
		Headers: append([]string{"USER"}, weeks...),
	}
	for _, user := range r.Combined.UserNames() {
		row := []string{user}
		for _, id := range weeks {
			row = append(row, string(r.Combined.Weeks[id].Status(user)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func summaryRows(team string, a *Actuals, weeks []string) [][]string {
	headcount := []string{team, "(headcount)"}
	reported := []string{team, "(reported)"}
	missing := []string{team, "(missing)"}
	for _, id := range weeks {
		w, ok := a.Weeks[id]
		if !ok {
			headcount = append(headcount, "-")
			reported = append(reported, "-")
			missing = append(missing, "-")
			continue
		}
		headcount = append(headcount, formatFraction(w.Headcount))
		reported = append(reported, formatFraction(w.Reported))
		missing = append(missing, formatFraction(w.Missing))
	}
	return [][]string{headcount, reported, missing}
}

func projectRow(team, project string, a *Actuals, weeks []string) []string {
	row := []string{team, project}
	for _, id := range weeks {
		w, ok := a.Weeks[id]
		if !ok {
			row = append(row, "-")
			continue
		}
		if fraction, ok := w.PerProject[project]; ok {
			row = append(row, formatFraction(fraction))
		} else {
			row = append(row, "-")
		}
	}
	return row
}

// formatFraction rounds only here, at presentation time.
func formatFraction(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
