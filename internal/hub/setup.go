package hub

import (
	"fmt"
	"os"
)

// Provision creates the week drop-box directories for every registered team
// over the given year range: <hub>/raw/<team>/<year>wk<week> for ISO weeks
// 1..52. Directories are owner-readable but world-writable, so anyone can
// deposit a submission without being able to list other people's.
func Provision(hub string, fromYear, toYear int) error {
	teams, err := ReadTeams(hub)
	if err != nil {
		return err
	}
	if fromYear > toYear {
		return fmt.Errorf("year range %d-%d is empty", fromYear, toYear)
	}
	for _, team := range teams {
		for year := fromYear; year <= toYear; year++ {
			for week := 1; week <= 52; week++ {
				dir := weekDir(hub, team, WeekID(year, week))
				if err := os.MkdirAll(dir, 0o733); err != nil {
					return fmt.Errorf("creating drop box %s: %w", dir, err)
				}
				// MkdirAll applies the umask; force the drop-box mode.
				if err := os.Chmod(dir, 0o733); err != nil {
					return fmt.Errorf("setting drop box permissions on %s: %w", dir, err)
				}
			}
		}
	}
	return nil
}

// WeekID names a week drop box, e.g. "2024wk07".
func WeekID(year, week int) string {
	return fmt.Sprintf("%dwk%02d", year, week)
}
