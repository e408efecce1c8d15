package domain

type RecordingState string

const (
	StateStopped   RecordingState = "stopped"
	StateRunning   RecordingState = "running"
	StateAutomatic RecordingState = "automatic"
)

// AutoCountPolicy controls what happens to the semi-active interval when the
// grace period expires without user interaction.
type AutoCountPolicy string

const (
	// CountPrevious attributes the interval to the path that was active
	// before the timeout. This is the default.
	CountPrevious AutoCountPolicy = "previous"
	// CountUnknown attributes the interval to the synthetic "unknown" path.
	CountUnknown AutoCountPolicy = "unknown"
	// CountNothing discards the interval.
	CountNothing AutoCountPolicy = "nothing"
)

// ValidAutoCountPolicies is the canonical set of accepted policy strings.
var ValidAutoCountPolicies = map[string]bool{
	"previous": true, "unknown": true, "nothing": true,
}

// SubmissionStatus classifies a user's weekly submission total for reporting.
type SubmissionStatus string

const (
	SubmissionNoData  SubmissionStatus = "no data"
	SubmissionUnder   SubmissionStatus = "under"
	SubmissionNominal SubmissionStatus = "nominal"
	SubmissionOver    SubmissionStatus = "over"
)
