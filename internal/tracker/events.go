package tracker

import (
	"ttb/internal/domain"
)

// Listener receives the events the tracker emits for display. Callbacks are
// invoked from the tracker's timer goroutine and must not call back into the
// tracker.
type Listener interface {
	// TimerTick delivers the formatted elapsed time of the active session,
	// once per tick interval while tracking.
	TimerTick(elapsed string)

	// SessionRecorded fires after a completed session has been appended to
	// the log, whether the stop was user-triggered or automatic.
	SessionRecorded(record domain.SessionRecord)

	// AutoStopped fires exactly once when a session is stopped because the
	// user went idle.
	AutoStopped(reason string)

	// PersistenceFailed fires when a session stopped by the inactivity check
	// could not be written to the log. The session is still stopped; the
	// entry is lost.
	PersistenceFailed(reason string)
}

// NopListener is a Listener that discards all events.
type NopListener struct{}

func (NopListener) TimerTick(string)                 {}
func (NopListener) SessionRecorded(domain.SessionRecord) {}
func (NopListener) AutoStopped(string)               {}
func (NopListener) PersistenceFailed(string)         {}
