package tetris

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// ErrRunning is returned by Run when the loop is already active.
var ErrRunning = errors.New("runner already running")

// ChangeFunc observes a transition. It runs after the transition is committed,
// in commit order. It may read the runner (Snapshot, Stats, Difficulty,
// Interval) but must not call Tick, Apply, SetPaused or Reset.
type ChangeFunc func(prev, next State)

// Runner owns a single game State and serializes every transition applied to
// it. Run drives the fall timer; commands may arrive from any goroutine.
type Runner struct {
	mu         sync.Mutex
	state      State
	src        Source
	difficulty Difficulty
	override   time.Duration
	stats      runnerStatsInternal
	hooks      []ChangeFunc

	// notifyMu is held by a mutator from before it takes mu until its hooks
	// return, so hooks run in commit order. Lock order: notifyMu, then mu.
	notifyMu sync.Mutex

	wake    chan struct{}
	running atomic.Bool
}

type RunnerOption func(*Runner)

// WithSource sets the random source used to draw pieces.
func WithSource(src Source) RunnerOption {
	return func(r *Runner) {
		r.src = src
	}
}

func WithDifficulty(d Difficulty) RunnerOption {
	return func(r *Runner) {
		r.difficulty = d
	}
}

// WithTickInterval replaces the difficulty interval with a fixed one. Used by
// headless runs and tests that cannot wait hundreds of milliseconds per tick.
func WithTickInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.override = d
	}
}

// WithState starts the runner from an existing state instead of a fresh game.
func WithState(s State) RunnerOption {
	return func(r *Runner) {
		r.state = s
	}
}

// NewRunner creates a runner. Without options it starts a fresh Easy game with
// a randomly seeded source.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		difficulty: Easy,
		stats:      newRunnerStats(),
		wake:       make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.src == nil {
		r.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.state.Board.Width() == 0 {
		r.state = NewState(r.src)
	}
	return r
}

// Snapshot returns the current state. The value is safe to keep and read
// while the runner continues.
func (r *Runner) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) Difficulty() Difficulty {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.difficulty
}

// Interval returns the current wait between fall ticks.
func (r *Runner) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval()
}

func (r *Runner) interval() time.Duration {
	if r.override > 0 {
		return r.override
	}
	return r.difficulty.Interval()
}

// SetDifficulty changes the fall interval and restarts the pending wait. It
// clears any interval set with WithTickInterval.
func (r *Runner) SetDifficulty(d Difficulty) {
	r.mu.Lock()
	r.difficulty = d
	r.override = 0
	r.mu.Unlock()
	r.signal()
}

// OnChange registers a hook called after every transition that changed the state.
func (r *Runner) OnChange(fn ChangeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, fn)
}

// Stats returns counters and tick timings collected so far.
func (r *Runner) Stats() RunnerStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats.snapshot()
}

// Running reports whether Run is active.
func (r *Runner) Running() bool {
	return r.running.Load()
}

// Tick applies one fall step. It is a no-op while paused or after game over.
func (r *Runner) Tick() State {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	prev := r.state
	if !prev.active() {
		r.mu.Unlock()
		return prev
	}

	start := time.Now()
	locked := !prev.Board.Valid(prev.Current.Translate(0, 1))
	next := prev.Tick(r.src)
	r.state = next
	r.stats.recordTick(locked, next.Lines-prev.Lines, time.Since(start))

	r.commit(prev, next)
	return next
}

// Apply runs a player command. Moves that do not fit are dropped silently;
// only unknown commands produce an error.
func (r *Runner) Apply(cmd Command) error {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	prev := r.state
	next, err := prev.Apply(cmd, r.src)
	if err != nil {
		r.stats.commandsInvalid++
		r.mu.Unlock()
		return err
	}

	r.state = next
	if next == prev {
		r.stats.commandsRejected++
	} else {
		r.stats.commandsApplied++
	}

	r.commit(prev, next)

	if cmd == TogglePause || cmd == Reset {
		r.signal()
	}
	return nil
}

// SetPaused pauses or resumes the fall timer.
func (r *Runner) SetPaused(paused bool) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	prev := r.state
	next := prev.SetPaused(paused)
	r.state = next
	r.commit(prev, next)
	r.signal()
}

// Reset replaces the game with a fresh one on a board of the same size.
func (r *Runner) Reset() {
	_ = r.Apply(Reset)
}

// commit releases r.mu and runs hooks if the state changed. Must be called
// with r.notifyMu and r.mu held; r.notifyMu stays held.
func (r *Runner) commit(prev, next State) {
	hooks := r.hooks
	r.mu.Unlock()

	if prev == next {
		return
	}
	for _, hook := range hooks {
		hook(prev, next)
	}
}

func (r *Runner) signal() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Run drives the fall timer until ctx is cancelled. The wait between ticks is
// the difficulty interval; it is cancelled and restarted whenever the game is
// paused, resumed, reset or the difficulty changes. While paused or over the
// loop keeps waiting for a wake-up instead of ticking.
func (r *Runner) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer r.running.Store(false)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	armed := false

	for {
		r.mu.Lock()
		active := r.state.active()
		interval := r.interval()
		r.mu.Unlock()

		switch {
		case active && !armed:
			timer.Reset(interval)
			armed = true
		case !active && armed:
			timer.Stop()
			armed = false
		}

		var fall <-chan time.Time
		if armed {
			fall = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.wake:
			if armed {
				timer.Stop()
				armed = false
			}
		case <-fall:
			armed = false
			r.Tick()
		}
	}
}
