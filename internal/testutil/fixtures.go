// Package testutil provides filesystem fixtures shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile creates a file (and any parent directories) under dir and
// returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// HubBuilder assembles a hub directory tree for aggregation tests.
type HubBuilder struct {
	t    *testing.T
	Root string
}

// NewHub creates an empty hub under a fresh temp directory.
func NewHub(t *testing.T) *HubBuilder {
	t.Helper()
	return &HubBuilder{t: t, Root: t.TempDir()}
}

// WithTeams writes settings/teams.txt.
func (h *HubBuilder) WithTeams(teams ...string) *HubBuilder {
	WriteFile(h.t, h.Root, filepath.Join("settings", "teams.txt"), strings.Join(teams, "\n")+"\n")
	return h
}

// WithTeamSettings writes raw/<team>/settings.txt.
func (h *HubBuilder) WithTeamSettings(team, content string) *HubBuilder {
	WriteFile(h.t, h.Root, filepath.Join("raw", team, "settings.txt"), content)
	return h
}

// WithWeekFile writes raw/<team>/<week>/<name>.
func (h *HubBuilder) WithWeekFile(team, week, name, content string) *HubBuilder {
	WriteFile(h.t, h.Root, filepath.Join("raw", team, week, name), content)
	return h
}

// WithWeekDir creates an empty raw/<team>/<week> drop box.
func (h *HubBuilder) WithWeekDir(team, week string) *HubBuilder {
	h.t.Helper()
	if err := os.MkdirAll(filepath.Join(h.Root, "raw", team, week), 0o755); err != nil {
		h.t.Fatalf("creating week directory: %v", err)
	}
	return h
}
