// Package config loads the process-wide configuration: a small key/value
// file with typed accessors and documented defaults. It is read once at
// startup and never mutated by the core.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// Config holds every user-tunable setting.
type Config struct {
	// ProjectsFile is the tab-indented project hierarchy file.
	ProjectsFile string
	// LogFile is the append-only time log.
	LogFile string
	// Interval is the active recording period after a selection.
	Interval time.Duration
	// Wait is the semi-active grace period awaiting confirmation.
	Wait time.Duration
	// AutoCount decides what the unattended grace interval counts towards.
	AutoCount domain.AutoCountPolicy
	// WriteTimeouts adds zero-duration "(timed out)" marker entries.
	WriteTimeouts bool
	// UseHub enables the shared-directory submission flow.
	UseHub bool
	// Hub is the shared filesystem directory collecting team submissions.
	Hub string
	// User is the username stamped on log entries and hub submissions.
	User string
	// Team is the default team for hub submissions.
	Team string
}

// Warning reports a config value that could not be parsed and fell back to
// its default.
type Warning struct {
	Key   string
	Value string
}

func (w Warning) String() string {
	return fmt.Sprintf("could not parse value for %q: %q, using default", w.Key, w.Value)
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		ProjectsFile:  "projects.txt",
		LogFile:       "log.txt",
		Interval:      time.Hour,
		Wait:          time.Hour,
		AutoCount:     domain.CountPrevious,
		WriteTimeouts: false,
		UseHub:        false,
	}
}

// Load reads the config file and overlays it on the defaults. A missing file
// yields the defaults; an unparseable value yields the default for that key
// plus a warning naming the key and the offending value. File paths may use
// a leading '~' for the home directory.
func Load(path string) (Config, []Warning, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil, nil
		}
		return cfg, nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	var warnings []Warning
	warn := func(key, value string) {
		warnings = append(warnings, Warning{Key: key, Value: value})
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if hash := strings.IndexByte(line, '#'); hash != -1 {
			line = line[:hash]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			warn(strings.TrimSpace(line), "")
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "projectsFile":
			cfg.ProjectsFile = expandHome(value)
		case "logFile":
			cfg.LogFile = expandHome(value)
		case "intervalSeconds":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				cfg.Interval = time.Duration(n) * time.Second
			} else {
				warn(key, value)
			}
		case "waitSeconds":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				cfg.Wait = time.Duration(n) * time.Second
			} else {
				warn(key, value)
			}
		case "autoCountTowards":
			if domain.ValidAutoCountPolicies[strings.ToLower(value)] {
				cfg.AutoCount = domain.AutoCountPolicy(strings.ToLower(value))
			} else {
				warn(key, value)
			}
		case "writeTimeouts":
			if b, err := strconv.ParseBool(value); err == nil {
				cfg.WriteTimeouts = b
			} else {
				warn(key, value)
			}
		case "useHub":
			if b, err := strconv.ParseBool(value); err == nil {
				cfg.UseHub = b
			} else {
				warn(key, value)
			}
		case "hub":
			cfg.Hub = expandHome(value)
		case "user":
			cfg.User = value
		case "team":
			cfg.Team = value
		default:
			warn(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, warnings, fmt.Errorf("reading config file: %w", err)
	}
	return cfg, warnings, nil
}

// DefaultPath returns the config file location: $TALLY_CONFIG if set,
// otherwise ~/.tally/config.txt.
func DefaultPath() string {
	if p := os.Getenv("TALLY_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.txt"
	}
	return filepath.Join(home, ".tally", "config.txt")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
