// Package hub implements the shared-directory exchange of weekly time
// sheets: submission drop boxes, and the reconciliation of many users'
// percentage breakdowns into team and organization-wide actuals.
package hub

import (
	"sort"

	"github.com/alexanderramin/tally/internal/domain"
)

// Week aggregates one week of submissions for a team (or for the whole
// organization after combining).
type Week struct {
	// Headcount is the expected reporting capacity in FTE units.
	Headcount float64
	// Reported is the sum of all per-project fractions.
	Reported float64
	// Missing is Headcount - Reported, recomputed after all folds.
	Missing float64
	// PerProject sums fractions by top-level project.
	PerProject map[string]float64
	// PerUser sums each user's total provided fraction.
	PerUser map[string]float64
}

func newWeek() *Week {
	return &Week{
		PerProject: map[string]float64{},
		PerUser:    map[string]float64{},
	}
}

// addSubmission folds one user's percentage breakdown into the week. An
// empty breakdown still records the user as having provided 0, which is
// distinct from not having submitted at all.
func (w *Week) addSubmission(user string, fractions map[string]float64) {
	var total float64
	for project, fraction := range fractions {
		w.PerProject[project] += fraction
		total += fraction
	}
	w.PerUser[user] += total
}

// recompute refreshes the derived Reported and Missing figures.
func (w *Week) recompute() {
	w.Reported = 0
	for _, fraction := range w.PerProject {
		w.Reported += fraction
	}
	w.Missing = w.Headcount - w.Reported
}

// Actuals holds many weeks of reconciled submissions, together with every
// project and user ever seen. Built fresh on each aggregation run and never
// persisted.
type Actuals struct {
	Weeks    map[string]*Week
	Projects map[string]bool
	Users    map[string]bool
}

func NewActuals() *Actuals {
	return &Actuals{
		Weeks:    map[string]*Week{},
		Projects: map[string]bool{},
		Users:    map[string]bool{},
	}
}

// week returns the named week, creating it on first use.
func (a *Actuals) week(id string) *Week {
	w, ok := a.Weeks[id]
	if !ok {
		w = newWeek()
		a.Weeks[id] = w
	}
	return w
}

// Merge adds another team's actuals into a. Headcounts, per-project sums and
// per-user sums add arithmetically for the same week identifier; the known
// project and user sets are unioned.
func (a *Actuals) Merge(other *Actuals) {
	for id, tw := range other.Weeks {
		w := a.week(id)
		w.Headcount += tw.Headcount
		for project, fraction := range tw.PerProject {
			w.PerProject[project] += fraction
		}
		for user, fraction := range tw.PerUser {
			w.PerUser[user] += fraction
		}
	}
	for project := range other.Projects {
		a.Projects[project] = true
	}
	for user := range other.Users {
		a.Users[user] = true
	}
}

// recompute refreshes the derived figures of every week.
func (a *Actuals) recompute() {
	for _, w := range a.Weeks {
		w.recompute()
	}
}

// WeekIDs returns the week identifiers in sorted order.
func (a *Actuals) WeekIDs() []string {
	ids := make([]string, 0, len(a.Weeks))
	for id := range a.Weeks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ProjectNames returns the known projects in sorted order.
func (a *Actuals) ProjectNames() []string {
	return sortedKeys(a.Projects)
}

// UserNames returns the known users in sorted order.
func (a *Actuals) UserNames() []string {
	return sortedKeys(a.Users)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// nominalEpsilon absorbs the rounding noise of summed 2-decimal fractions so
// a total like 0.999999 still classifies as nominal.
const nominalEpsilon = 0.005

// Status classifies a user's provided total for a week.
func (w *Week) Status(user string) domain.SubmissionStatus {
	provided, ok := w.PerUser[user]
	switch {
	case !ok:
		return domain.SubmissionNoData
	case provided < 1-nominalEpsilon:
		return domain.SubmissionUnder
	case provided > 1+nominalEpsilon:
		return domain.SubmissionOver
	default:
		return domain.SubmissionNominal
	}
}
