package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ttb/internal/activity"
	"ttb/internal/billing"
	"ttb/internal/config"
	"ttb/internal/domain"
	"ttb/internal/errors"
	"ttb/internal/logging"
	"ttb/internal/repository/sqlite"
	"ttb/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Tracker controls the lifecycle of the single active timing session. It is
// either idle or tracking; starting moves it to tracking and begins a
// once-per-second display tick plus an inactivity poll, stopping appends the
// completed session to the log and cancels both.
//
// A user-triggered stop and an inactivity auto-stop are idempotent: whichever
// runs first clears the active session, and the other becomes a no-op.
type Tracker struct {
	store     sqlite.Store
	mapper    *domain.SessionMapper
	validator *validation.SessionValidator
	monitor   activity.Monitor
	listener  Listener

	tickInterval  time.Duration
	pollInterval  time.Duration
	idleThreshold time.Duration
	writeTimeout  time.Duration

	mu     sync.Mutex
	active *domain.ActiveSession
	cancel chan struct{}
}

// New creates a tracker in the idle state. A nil listener discards events.
func New(store sqlite.Store, monitor activity.Monitor, listener Listener, cfg *config.Config) *Tracker {
	if listener == nil {
		listener = NopListener{}
	}
	return &Tracker{
		store:         store,
		mapper:        domain.NewSessionMapper(),
		validator:     validation.NewSessionValidator(),
		monitor:       monitor,
		listener:      listener,
		tickInterval:  cfg.Tracker.TickInterval,
		pollInterval:  cfg.Tracker.PollInterval,
		idleThreshold: cfg.Tracker.IdleThreshold,
		writeTimeout:  cfg.Database.WriteTimeout,
	}
}

// Start begins timing a session for the given project, rate and currency.
// It fails with a validation error on bad input, and refuses to start while a
// session is already active without altering the existing one.
func (t *Tracker) Start(project string, rate float64, currency domain.Currency) error {
	if err := t.validator.ValidateSessionStart(project, rate, currency); err != nil {
		return err
	}

	cleanedProject, err := t.validator.GetValidProjectName(project)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active != nil {
		return errors.NewValidationError("a session is already being tracked", nil).
			WithContext("project", t.active.Project)
	}

	t.active = &domain.ActiveSession{
		Project:   cleanedProject,
		Rate:      rate,
		Currency:  currency,
		StartedAt: timeNow(),
	}
	t.cancel = make(chan struct{})

	go t.run(t.cancel)

	logging.Debugf("tracker: started session for %q at rate %.2f %s\n", cleanedProject, rate, currency)
	return nil
}

// Stop ends the active session, appends the completed record to the log and
// returns to idle. Stopping while idle is a clean no-op. When the append
// fails the session is still cleared; the persistence error is returned for
// the caller to report.
func (t *Tracker) Stop(ctx context.Context) error {
	record, err := t.finish(ctx)
	if err != nil {
		return err
	}
	if record != nil {
		t.listener.SessionRecorded(*record)
	}
	return nil
}

// IsTracking reports whether a session is currently active.
func (t *Tracker) IsTracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active != nil
}

// Active returns a copy of the active session, if any.
func (t *Tracker) Active() (domain.ActiveSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return domain.ActiveSession{}, false
	}
	return *t.active, true
}

// Elapsed returns the running time of the active session, or zero while idle.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return 0
	}
	return t.active.Elapsed(timeNow())
}

// finish performs the tracking-to-idle transition: it captures the end time,
// clears the active session, cancels the tick and poll loops, and appends the
// completed record. It returns (nil, nil) when already idle. On an append
// failure the transition has still happened; only the record is lost.
func (t *Tracker) finish(ctx context.Context) (*domain.SessionRecord, error) {
	t.mu.Lock()

	if t.active == nil {
		t.mu.Unlock()
		return nil, nil
	}

	record := t.active.Complete(timeNow())
	t.active = nil
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}

	// The append happens under the lock so no second write can start while
	// this one is in flight.
	dbSession := t.mapper.ToDatabase(record)
	err := t.store.AppendSession(ctx, &dbSession)
	t.mu.Unlock()

	if err != nil {
		logging.Debugf("tracker: session for %q stopped but not saved: %v\n", record.Project, err)
		return nil, err
	}

	record.ID = dbSession.ID
	logging.Debugf("tracker: recorded %d minute(s) for %q\n", record.DurationMinutes, record.Project)
	return &record, nil
}

// run drives the display tick and the inactivity poll until cancelled.
func (t *Tracker) run(cancel <-chan struct{}) {
	tick := time.NewTicker(t.tickInterval)
	defer tick.Stop()
	poll := time.NewTicker(t.pollInterval)
	defer poll.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-tick.C:
			t.onTick()
		case <-poll.C:
			t.onActivityPoll()
		}
	}
}

// onTick recomputes the elapsed time for display. No-op while idle.
func (t *Tracker) onTick() {
	t.mu.Lock()
	if t.active == nil {
		t.mu.Unlock()
		return
	}
	elapsed := t.active.Elapsed(timeNow())
	t.mu.Unlock()

	t.listener.TimerTick(billing.FormatDuration(elapsed))
}

// onActivityPoll queries the activity monitor and forces a stop once the idle
// time exceeds the threshold. No-op while idle; a monitor failure only skips
// this poll.
func (t *Tracker) onActivityPoll() {
	t.mu.Lock()
	tracking := t.active != nil
	t.mu.Unlock()
	if !tracking {
		return
	}

	idle, err := t.monitor.IdleTime()
	if err != nil {
		logging.Debugf("tracker: idle check failed: %v\n", err)
		return
	}
	if idle <= t.idleThreshold {
		return
	}

	reason := fmt.Sprintf("stopped automatically after %s of inactivity", t.idleThreshold)

	ctx, cancelCtx := context.WithTimeout(context.Background(), t.writeTimeout)
	defer cancelCtx()

	record, err := t.finish(ctx)
	if err != nil {
		t.listener.AutoStopped(reason)
		t.listener.PersistenceFailed(errors.GetUserMessage(err))
		return
	}
	if record == nil {
		// A direct stop won the race; nothing left to do.
		return
	}

	t.listener.AutoStopped(reason)
	t.listener.SessionRecorded(*record)
}
