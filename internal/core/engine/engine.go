package engine

import (
	"sync"
	"time"

	"github.com/zak-droid/WorkoutTimer/internal/core/model"
)

// Options contains runtime options for the Engine.
type Options struct {
	TickInterval time.Duration
}

// Engine is the state machine driving the interval timer.
//
// Three periodic countdowns advance it: the preparation countdown, the
// work/rest countdown, and the session elapsed counter. Each runs as its
// own ticker goroutine, alive exactly while its guard condition holds,
// and every mutation happens under one mutex so updates stay atomic.
type Engine struct {
	mu      sync.Mutex
	config  model.Config
	options Options

	phase          Phase
	active         bool
	preparing      bool
	prepRemaining  int
	phaseRemaining int
	sessionElapsed int

	prepStop    chan struct{}
	phaseStop   chan struct{}
	sessionStop chan struct{}

	events  []chan Event
	stopped bool
}

// New creates an Engine with the provided configuration.
func New(config model.Config, options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	config.WorkSeconds = model.WorkBounds.Clamp(config.WorkSeconds)
	config.RestSeconds = model.RestBounds.Clamp(config.RestSeconds)
	config.TotalMinutes = model.TotalBounds.Clamp(config.TotalMinutes)
	config.PrepSeconds = model.PrepBounds.Clamp(config.PrepSeconds)

	timer := &Engine{
		config:  config,
		options: options,
		phase:   PhaseWork,
	}
	timer.phaseRemaining = config.WorkSeconds
	timer.prepRemaining = config.PrepSeconds
	return timer
}

// Subscribe registers a new observer channel.
func (timer *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Toggle is the start/pause action. From idle it begins the preparation
// countdown; while preparing or running it flips the active flag without
// canceling preparation.
func (timer *Engine) Toggle() {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	switch {
	case !timer.active && !timer.preparing:
		timer.preparing = true
		timer.prepRemaining = timer.config.PrepSeconds
	default:
		timer.active = !timer.active
	}
	timer.syncTickersLocked()
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// Reset returns the timer to its initial state in any state.
func (timer *Engine) Reset() {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	timer.active = false
	timer.preparing = false
	timer.phase = PhaseWork
	timer.phaseRemaining = timer.config.WorkSeconds
	timer.prepRemaining = timer.config.PrepSeconds
	timer.sessionElapsed = 0
	timer.syncTickersLocked()
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// Stop tears down all tickers and closes observer channels.
func (timer *Engine) Stop() {
	timer.mu.Lock()
	if timer.stopped {
		timer.mu.Unlock()
		return
	}
	timer.stopped = true
	timer.active = false
	timer.preparing = false
	timer.syncTickersLocked()
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// SetWorkSeconds clamps and stores the work duration. While the timer is
// not active and the current phase is Work, the running countdown is
// re-based to the new value as a live preview; while active the mid-phase
// countdown is left alone.
func (timer *Engine) SetWorkSeconds(seconds int) {
	timer.mu.Lock()
	timer.config.WorkSeconds = model.WorkBounds.Clamp(seconds)
	if !timer.active && timer.phase == PhaseWork {
		timer.phaseRemaining = timer.config.WorkSeconds
	}
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// SetRestSeconds clamps and stores the rest duration.
func (timer *Engine) SetRestSeconds(seconds int) {
	timer.mu.Lock()
	timer.config.RestSeconds = model.RestBounds.Clamp(seconds)
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// SetTotalMinutes clamps and stores the session budget.
func (timer *Engine) SetTotalMinutes(minutes int) {
	timer.mu.Lock()
	timer.config.TotalMinutes = model.TotalBounds.Clamp(minutes)
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// SetPrepSeconds clamps and stores the preparation duration.
func (timer *Engine) SetPrepSeconds(seconds int) {
	timer.mu.Lock()
	timer.config.PrepSeconds = model.PrepBounds.Clamp(seconds)
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// SetColors stores the four display colors. Values are taken verbatim.
func (timer *Engine) SetColors(work, rest, background, text string) {
	timer.mu.Lock()
	timer.config.WorkColor = work
	timer.config.RestColor = rest
	timer.config.BackgroundColor = background
	timer.config.TextColor = text
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// SetWorkColor stores the work phase color verbatim.
func (timer *Engine) SetWorkColor(value string) {
	timer.setColor(&timer.config.WorkColor, value)
}

// SetRestColor stores the rest phase color verbatim.
func (timer *Engine) SetRestColor(value string) {
	timer.setColor(&timer.config.RestColor, value)
}

// SetBackgroundColor stores the background color verbatim.
func (timer *Engine) SetBackgroundColor(value string) {
	timer.setColor(&timer.config.BackgroundColor, value)
}

// SetTextColor stores the text color verbatim.
func (timer *Engine) SetTextColor(value string) {
	timer.setColor(&timer.config.TextColor, value)
}

func (timer *Engine) setColor(field *string, value string) {
	timer.mu.Lock()
	*field = value
	timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

// Config returns a copy of the current configuration.
func (timer *Engine) Config() model.Config {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config
}

// Snapshot returns a copy of the observable state.
func (timer *Engine) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

func (timer *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:          timer.phase,
		Active:         timer.active,
		Preparing:      timer.preparing,
		PrepRemaining:  timer.prepRemaining,
		PhaseRemaining: timer.phaseRemaining,
		SessionElapsed: timer.sessionElapsed,
		SessionTotal:   timer.config.SessionSeconds(),
		Progress:       timer.progressLocked(),
	}
}

func (timer *Engine) progressLocked() float64 {
	duration := timer.config.WorkSeconds
	if timer.phase == PhaseRest {
		duration = timer.config.RestSeconds
	}
	if duration <= 0 {
		return 1
	}
	progress := float64(duration-timer.phaseRemaining) / float64(duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// syncTickersLocked reconciles the three ticker goroutines with their
// guard conditions. The work/rest countdown stays frozen while the
// preparation countdown runs.
func (timer *Engine) syncTickersLocked() {
	timer.setTickerLocked(&timer.prepStop, !timer.stopped && timer.preparing, timer.prepTick)
	timer.setTickerLocked(&timer.phaseStop, !timer.stopped && timer.active && !timer.preparing, timer.phaseTick)
	timer.setTickerLocked(&timer.sessionStop, !timer.stopped && timer.active, timer.sessionTick)
}

func (timer *Engine) setTickerLocked(stop *chan struct{}, want bool, tick func()) {
	running := *stop != nil
	if want == running {
		return
	}
	if !want {
		close(*stop)
		*stop = nil
		return
	}
	ch := make(chan struct{})
	*stop = ch
	go timer.runTicker(ch, tick)
}

func (timer *Engine) runTicker(stop chan struct{}, tick func()) {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			tick()
		}
	}
}

func (timer *Engine) prepTick() {
	timer.mu.Lock()
	if !timer.preparing {
		timer.mu.Unlock()
		return
	}
	if timer.prepRemaining <= 1 {
		// The countdown would hit zero now: enter the running state and
		// write the reset value for the next preparation immediately.
		timer.preparing = false
		timer.active = true
		timer.prepRemaining = timer.config.PrepSeconds
		timer.syncTickersLocked()
		timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
		timer.mu.Unlock()
		return
	}
	timer.prepRemaining--
	timer.emitLocked(Event{Type: EventProgress, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

func (timer *Engine) phaseTick() {
	timer.mu.Lock()
	if !timer.active || timer.preparing {
		timer.mu.Unlock()
		return
	}
	if timer.phaseRemaining <= 1 {
		// Would drop to zero: flip the phase and re-base the countdown.
		if timer.phase == PhaseWork {
			timer.phase = PhaseRest
			timer.phaseRemaining = timer.config.RestSeconds
		} else {
			timer.phase = PhaseWork
			timer.phaseRemaining = timer.config.WorkSeconds
		}
		timer.emitLocked(Event{Type: EventStateChange, Snapshot: timer.snapshotLocked(), At: time.Now()})
		timer.mu.Unlock()
		return
	}
	timer.phaseRemaining--
	timer.emitLocked(Event{Type: EventProgress, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

func (timer *Engine) sessionTick() {
	timer.mu.Lock()
	if !timer.active {
		timer.mu.Unlock()
		return
	}
	if timer.sessionElapsed >= timer.config.SessionSeconds() {
		// Budget spent: freeze the session. Phase and remaining values
		// are left as they stand.
		timer.active = false
		timer.syncTickersLocked()
		timer.emitLocked(Event{Type: EventSessionEnd, Snapshot: timer.snapshotLocked(), At: time.Now()})
		timer.mu.Unlock()
		return
	}
	timer.sessionElapsed++
	timer.emitLocked(Event{Type: EventProgress, Snapshot: timer.snapshotLocked(), At: time.Now()})
	timer.mu.Unlock()
}

func (timer *Engine) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
