package hub

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Pre-agreed file names inside the hub directory tree.
const (
	submittedFilename = "submitted.txt"
	settingsFilename  = "settings.txt"
	teamsFilename     = "teams.txt"
)

// rawDir returns the directory holding a team's week drop boxes.
func rawDir(hub, team string) string {
	return filepath.Join(hub, "raw", team)
}

// weekDir returns one week's drop box.
func weekDir(hub, team, week string) string {
	return filepath.Join(rawDir(hub, team), week)
}

// ReadTeams lists the teams registered at the hub (settings/teams.txt, one
// per line). A missing or unreadable file is a hard error: without it no
// aggregation can run.
func ReadTeams(hub string) ([]string, error) {
	f, err := os.Open(filepath.Join(hub, "settings", teamsFilename))
	if err != nil {
		return nil, fmt.Errorf("opening hub teams file: %w", err)
	}
	defer f.Close()

	var teams []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if team := strings.TrimSpace(scanner.Text()); team != "" {
			teams = append(teams, team)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hub teams file: %w", err)
	}
	return teams, nil
}

// readSettings parses a key/value settings file into a flat map. Lines are
// "key = value"; '#' starts a comment.
func readSettings(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	settings := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if hash := strings.IndexByte(line, '#'); hash != -1 {
			line = line[:hash]
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return settings, scanner.Err()
}

// headcount resolves the headcount figure for a week, with the week's
// settings overriding the team's.
func headcount(teamSettings, weekSettings map[string]string) (float64, error) {
	value, ok := weekSettings["headcount"]
	if !ok {
		value, ok = teamSettings["headcount"]
	}
	if !ok {
		return 0, fmt.Errorf("no headcount setting")
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("bad headcount %q: %w", value, err)
	}
	return n, nil
}

// readRoster parses submitted.txt: lines of "submissionID,username,date".
// A later line for the same username overrides the earlier one; the
// override is reported as a warning. Malformed lines are warned about and
// skipped.
func readRoster(path string, warn func(format string, args ...any)) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster file: %w", err)
	}
	defer f.Close()

	// Last submission per user wins.
	byUser := map[string]string{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			warn("roster %s line %d: expected submissionID,username,date: %q", path, lineNo, line)
			continue
		}
		id := strings.TrimSpace(fields[0])
		user := strings.TrimSpace(fields[1])
		if id == "" || user == "" {
			warn("roster %s line %d: empty submission id or username: %q", path, lineNo, line)
			continue
		}
		if _, dup := byUser[user]; dup {
			warn("roster %s: multiple entries for user %s, using the latest", path, user)
		}
		byUser[user] = id
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}

	// Invert to submissionID -> user for reading the percentage files.
	byID := make(map[string]string, len(byUser))
	for user, id := range byUser {
		byID[id] = user
	}
	return byID, nil
}

// readPercentages parses a per-user weekly percentage file: lines of
// "project,fraction". Duplicate project lines are summed. Malformed lines
// are warned about and skipped.
func readPercentages(path string, warn func(format string, args ...any)) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening percentage file: %w", err)
	}
	defer f.Close()

	fractions := map[string]float64{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))
		if line == "" {
			continue
		}
		project, value, found := strings.Cut(line, ",")
		if !found {
			warn("percentages %s line %d: expected project,fraction: %q", path, lineNo, line)
			continue
		}
		fraction, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			warn("percentages %s line %d: bad fraction %q", path, lineNo, strings.TrimSpace(value))
			continue
		}
		fractions[strings.TrimSpace(project)] += fraction
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading percentage file: %w", err)
	}
	return fractions, nil
}
