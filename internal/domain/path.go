package domain

import "strings"

// ProjectPath addresses a node in the project hierarchy, root to leaf.
// The first element is the top-level project, which is the aggregation key
// used by all reporting; the remaining elements are sub-projects.
type ProjectPath []string

// Synthetic paths written by the recorder.
var (
	// PathUnknown is used when an unattended interval is counted but the
	// activity is not attributed to any real project.
	PathUnknown = ProjectPath{"unknown"}
	// PathTimedOut marks a zero-duration bookkeeping entry written when the
	// semi-active period elapses without user interaction.
	PathTimedOut = ProjectPath{"(timed out)"}
)

// Top returns the top-level project name, or "" for an empty path.
func (p ProjectPath) Top() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Equal reports whether both paths have the same elements in the same order.
func (p ProjectPath) Equal(q ProjectPath) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String joins the path with " / " for display.
func (p ProjectPath) String() string {
	return strings.Join(p, " / ")
}

// Clone returns an independent copy of the path.
func (p ProjectPath) Clone() ProjectPath {
	if p == nil {
		return nil
	}
	out := make(ProjectPath, len(p))
	copy(out, p)
	return out
}
