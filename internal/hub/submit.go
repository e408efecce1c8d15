package hub

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/timelog"
	"github.com/google/uuid"
)

// Submit drops a user's weekly percentage breakdown into the week's drop
// box: a fresh "<id>.log" percentage file plus a roster line in
// submitted.txt. It returns the submission id. The week directory must have
// been provisioned already.
func Submit(hub, team, week, user string, fractions map[string]float64, now time.Time) (string, error) {
	if user == "" {
		return "", fmt.Errorf("no hub username configured; set the 'user' config key")
	}
	dir := weekDir(hub, team, week)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("week drop box %s does not exist", dir)
	}

	id, path, err := freshSubmissionFile(dir)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	projects := make([]string, 0, len(fractions))
	for project := range fractions {
		projects = append(projects, project)
	}
	sort.Strings(projects)
	for _, project := range projects {
		fmt.Fprintf(&sb, "%s,%.2f\n", project, fractions[project])
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing percentage file: %w", err)
	}

	roster, err := os.OpenFile(filepath.Join(dir, submittedFilename), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening roster file: %w", err)
	}
	defer roster.Close()
	if _, err := fmt.Fprintf(roster, "%s,%s,%s\n", id, user, now.Format(timelog.TimeLayout)); err != nil {
		return "", fmt.Errorf("appending roster entry: %w", err)
	}
	return id, nil
}

// freshSubmissionFile picks a submission id whose percentage file does not
// exist yet in the drop box.
func freshSubmissionFile(dir string) (string, string, error) {
	for range 100 {
		id := uuid.New().String()[:8]
		path := filepath.Join(dir, id+".log")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return id, path, nil
		}
	}
	return "", "", fmt.Errorf("could not find a fresh submission id in %s", dir)
}
