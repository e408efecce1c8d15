package recorder

import "time"

// Timer is a re-armable single-shot countdown. Reset replaces any pending
// fire; Stop cancels it. A fire that races a Stop may still be delivered, so
// the recorder guards every fire on its current state rather than on timer
// identity.
type Timer interface {
	Reset(d time.Duration)
	Stop()
}

// wallTimer is the production Timer backed by time.AfterFunc.
type wallTimer struct {
	fire func()
	t    *time.Timer
}

func newWallTimer(fire func()) *wallTimer {
	return &wallTimer{fire: fire}
}

func (w *wallTimer) Reset(d time.Duration) {
	if w.t == nil {
		w.t = time.AfterFunc(d, w.fire)
		return
	}
	w.t.Stop()
	w.t.Reset(d)
}

func (w *wallTimer) Stop() {
	if w.t != nil {
		w.t.Stop()
	}
}
