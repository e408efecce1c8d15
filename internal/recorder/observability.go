package recorder

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// TransitionEvent captures lightweight telemetry for one state transition.
type TransitionEvent struct {
	From domain.RecordingState
	To   domain.RecordingState
	Path domain.ProjectPath
	At   time.Time
	Err  error
}

// Observer receives state transition events.
type Observer interface {
	ObserveTransition(event TransitionEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(TransitionEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes transition events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveTransition(event TransitionEvent) {
	attrs := []any{
		"from", string(event.From),
		"to", string(event.To),
		"path", event.Path.String(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("recording_transition", attrs...)
		return
	}
	o.logger.Info("recording_transition", attrs...)
}
