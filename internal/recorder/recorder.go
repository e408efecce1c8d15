package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/timelog"
)

// Options is the read-only recording configuration, loaded once at startup.
type Options struct {
	// Active is how long a selection records before the grace period starts.
	Active time.Duration
	// SemiActive is the grace period awaiting user confirmation.
	SemiActive time.Duration
	// Policy decides what the unattended semi-active interval counts towards.
	Policy domain.AutoCountPolicy
	// WriteTimeouts adds a zero-duration "(timed out)" marker entry when the
	// grace period elapses, independent of Policy.
	WriteTimeouts bool
	// User is the optional hub username stamped on every entry.
	User string
}

// Notifier receives presentation-only side effects. Implementations must not
// block; none of them may influence the state machine.
type Notifier interface {
	// Hide is called shortly after a selection, once the click feedback has
	// had a moment to show.
	Hide()
	// Show is called when the active period ends and the user should confirm.
	Show()
	// Problem reports a persistence failure. The transition that caused it
	// has already completed.
	Problem(err error)
}

// NoopNotifier ignores all notifications.
type NoopNotifier struct{}

func (NoopNotifier) Hide()             {}
func (NoopNotifier) Show()             {}
func (NoopNotifier) Problem(err error) {}

// hideDelay keeps the selection feedback visible before the UI is hidden.
const hideDelay = 150 * time.Millisecond

// Recorder owns the recording state machine. All transitions are serialized;
// the re-armable timer is the only autonomous event source, and a late fire
// after a transition to Stopped is a no-op.
type Recorder struct {
	mu     sync.Mutex
	opts   Options
	log    timelog.Appender
	notify Notifier
	obs    Observer
	clock  func() time.Time
	timer  Timer

	state     domain.RecordingState
	path      domain.ProjectPath
	startedAt time.Time
}

// New creates a stopped recorder using the wall clock.
func New(opts Options, log timelog.Appender, notify Notifier, obs Observer) *Recorder {
	r := newRecorder(opts, log, notify, obs, time.Now, nil)
	r.timer = newWallTimer(r.timerFired)
	return r
}

func newRecorder(opts Options, log timelog.Appender, notify Notifier, obs Observer, clock func() time.Time, timer Timer) *Recorder {
	if notify == nil {
		notify = NoopNotifier{}
	}
	if obs == nil {
		obs = NoopObserver{}
	}
	return &Recorder{
		opts:   opts,
		log:    log,
		notify: notify,
		obs:    obs,
		clock:  clock,
		timer:  timer,
		state:  domain.StateStopped,
	}
}

// State returns the current recording state.
func (r *Recorder) State() domain.RecordingState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Session returns the active path and its start time, or ok=false when
// stopped.
func (r *Recorder) Session() (path domain.ProjectPath, startedAt time.Time, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == domain.StateStopped {
		return nil, time.Time{}, false
	}
	return r.path.Clone(), r.startedAt, true
}

// Select starts recording the given path. Any session in progress is closed
// first: a running session is written to the log, a semi-active one is
// written under its current path, matching the continuation already logged.
// The returned error reports a persistence failure; the transition completes
// regardless.
func (r *Recorder) Select(path domain.ProjectPath) error {
	if len(path) == 0 {
		return fmt.Errorf("empty project path")
	}
	r.mu.Lock()
	now := r.clock()
	from := r.state
	var err error
	if r.state != domain.StateStopped {
		err = r.writeEntry(r.startedAt, now, r.path)
	}
	r.path = path.Clone()
	r.startedAt = now
	r.state = domain.StateRunning
	r.timer.Reset(r.opts.Active)
	r.observe(from, domain.StateRunning, now, err)
	r.mu.Unlock()

	go func() {
		time.Sleep(hideDelay)
		r.notify.Hide()
	}()
	return err
}

// Stop ends any recording in progress. A running session is written to the
// log; a semi-active one is resolved by the auto-count policy. Stopping when
// already stopped is a no-op.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.clock()
	from := r.state
	var err error
	switch r.state {
	case domain.StateStopped:
		return nil
	case domain.StateRunning:
		err = r.writeEntry(r.startedAt, now, r.path)
	case domain.StateAutomatic:
		err = r.applyAutoCount(now)
	}
	r.toStopped()
	r.observe(from, domain.StateStopped, now, err)
	return err
}

// timerFired is the timer callback. Running: the elapsed interval is logged
// and a new session continues under the same path during the grace period.
// Automatic: the auto-count policy resolves the unattended interval and
// recording stops. Stopped: late fire, ignored.
func (r *Recorder) timerFired() {
	r.mu.Lock()
	now := r.clock()
	from := r.state
	var err error
	var show bool
	switch r.state {
	case domain.StateStopped:
		r.mu.Unlock()
		return
	case domain.StateRunning:
		err = r.writeEntry(r.startedAt, now, r.path)
		r.startedAt = now
		r.state = domain.StateAutomatic
		r.timer.Reset(r.opts.SemiActive)
		show = true
	case domain.StateAutomatic:
		err = r.applyAutoCount(now)
		if r.opts.WriteTimeouts {
			if markerErr := r.writeEntry(r.startedAt, r.startedAt, domain.PathTimedOut); err == nil {
				err = markerErr
			}
		}
		r.toStopped()
		show = true
	}
	r.observe(from, r.state, now, err)
	r.mu.Unlock()

	if err != nil {
		r.notify.Problem(err)
	}
	if show {
		r.notify.Show()
	}
}

// applyAutoCount resolves the semi-active interval per the configured policy.
func (r *Recorder) applyAutoCount(now time.Time) error {
	switch r.opts.Policy {
	case domain.CountNothing:
		return nil
	case domain.CountUnknown:
		return r.writeEntry(r.startedAt, now, domain.PathUnknown)
	default: // CountPrevious
		return r.writeEntry(r.startedAt, now, r.path)
	}
}

func (r *Recorder) writeEntry(start, end time.Time, path domain.ProjectPath) error {
	err := r.log.Append(domain.Entry{
		User:  r.opts.User,
		Start: start,
		End:   end,
		Path:  path.Clone(),
	})
	if err != nil {
		return fmt.Errorf("writing log entry for %s: %w", path, err)
	}
	return nil
}

func (r *Recorder) toStopped() {
	r.timer.Stop()
	r.state = domain.StateStopped
	r.path = nil
	r.startedAt = time.Time{}
}

func (r *Recorder) observe(from, to domain.RecordingState, at time.Time, err error) {
	r.obs.ObserveTransition(TransitionEvent{
		From: from,
		To:   to,
		Path: r.path.Clone(),
		At:   at,
		Err:  err,
	})
}
