package hub

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Result is one aggregation run: per-team actuals, the combined actuals, and
// the non-fatal problems encountered along the way.
type Result struct {
	Teams    map[string]*Actuals
	Combined *Actuals
	Warnings []string
}

// TeamNames returns the aggregated teams in sorted order.
func (r *Result) TeamNames() []string {
	names := make([]string, 0, len(r.Teams))
	for name := range r.Teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregate reconciles every team's weekly submissions found under the hub
// directory into team and organization-wide actuals. Missing week rosters
// mean nobody submitted and are skipped silently; a week without a usable
// headcount setting is skipped with a warning; an unreadable roster or
// percentage file aborts the run.
func Aggregate(hub string) (*Result, error) {
	teams, err := ReadTeams(hub)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Teams:    map[string]*Actuals{},
		Combined: NewActuals(),
	}
	warn := func(format string, args ...any) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(format, args...))
	}

	for _, team := range teams {
		actuals, err := aggregateTeam(hub, team, warn)
		if err != nil {
			return nil, fmt.Errorf("aggregating team %s: %w", team, err)
		}
		result.Teams[team] = actuals
		result.Combined.Merge(actuals)
	}

	for _, actuals := range result.Teams {
		actuals.recompute()
	}
	result.Combined.recompute()
	return result, nil
}

func aggregateTeam(hub, team string, warn func(format string, args ...any)) (*Actuals, error) {
	teamPath := rawDir(hub, team)
	teamSettings, err := readSettings(filepath.Join(teamPath, settingsFilename))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading team settings: %w", err)
		}
		warn("team %s: no settings file, weeks need their own headcount", team)
		teamSettings = map[string]string{}
	}

	dirEntries, err := os.ReadDir(teamPath)
	if err != nil {
		return nil, fmt.Errorf("listing team directory: %w", err)
	}

	actuals := NewActuals()
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}
		if err := aggregateWeek(hub, team, dirEntry.Name(), teamSettings, actuals, warn); err != nil {
			return nil, err
		}
	}
	return actuals, nil
}

func aggregateWeek(hub, team, week string, teamSettings map[string]string, actuals *Actuals, warn func(format string, args ...any)) error {
	weekPath := weekDir(hub, team, week)
	rosterPath := filepath.Join(weekPath, submittedFilename)
	if _, err := os.Stat(rosterPath); os.IsNotExist(err) {
		// Nobody submitted for this week.
		return nil
	}

	weekSettings, err := readSettings(filepath.Join(weekPath, settingsFilename))
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading settings for week %s: %w", week, err)
		}
		weekSettings = map[string]string{}
	}
	hc, err := headcount(teamSettings, weekSettings)
	if err != nil {
		warn("team %s week %s: %v, skipping week", team, week, err)
		return nil
	}

	submissions, err := readRoster(rosterPath, warn)
	if err != nil {
		return err
	}

	w := actuals.week(week)
	w.Headcount = hc
	for id, user := range submissions {
		actuals.Users[user] = true
		fractions, err := readPercentages(filepath.Join(weekPath, id+".log"), warn)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				warn("team %s week %s: submission %s for user %s has no percentage file", team, week, id, user)
				continue
			}
			return err
		}
		w.addSubmission(user, fractions)
	}
	for project := range w.PerProject {
		actuals.Projects[project] = true
	}
	return nil
}
