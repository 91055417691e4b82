package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/comalice/smf"
	"github.com/comalice/smf/internal/logging"
)

var (
	ErrQueueFull      = errors.New("post queue full")
	ErrAlreadyStarted = errors.New("runtime already started")
	ErrNotStarted     = errors.New("runtime not started")
	ErrRunning        = errors.New("runtime is running")
	ErrStopped        = errors.New("runtime stopped")
)

const (
	stateIdle int32 = iota
	stateRunning
	stateStopped
)

// Config configures the real-time runtime
type Config struct {
	TickRate        time.Duration // Fixed tick rate (default 10ms)
	MaxPostsPerTick int           // Post queue capacity (default: 1000)
	MaxTicks        uint64        // Stop after this many ticks; 0 runs until terminated
}

// Option configures a Runtime.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the runtime's logger. Log lines carry the runtime ID.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Runtime owns one machine and ticks it on a dedicated goroutine.
// The machine must be initialized with smf.Init before Start.
type Runtime[T smf.Object[T]] struct {
	id     uuid.UUID
	obj    T
	cfg    Config
	logger *slog.Logger

	// Post batching
	batch       []post[T]
	batchMu     sync.Mutex
	sequenceNum uint64

	tickNum atomic.Uint64
	state   atomic.Int32
	exec    chan func()

	// Control
	ctlMu    sync.Mutex
	cancel   context.CancelFunc
	stopping atomic.Bool
	stopped  chan struct{}
	code     int32
	err      error
}

// NewRuntime creates a tick-based runtime for obj.
func NewRuntime[T smf.Object[T]](obj T, cfg Config, opts ...Option) *Runtime[T] {
	if cfg.MaxPostsPerTick == 0 {
		cfg.MaxPostsPerTick = 1000
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = 10 * time.Millisecond
	}
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	return &Runtime[T]{
		id:      id,
		obj:     obj,
		cfg:     cfg,
		logger:  o.logger.With("runtime", id.String()),
		batch:   make([]post[T], 0, cfg.MaxPostsPerTick),
		exec:    make(chan func()),
		stopped: make(chan struct{}),
	}
}

// ID identifies the runtime in logs and Group errors.
func (rt *Runtime[T]) ID() uuid.UUID {
	return rt.id
}

// Start begins tick-based execution. The loop stops with ctx.
func (rt *Runtime[T]) Start(ctx context.Context) error {
	rt.ctlMu.Lock()
	defer rt.ctlMu.Unlock()
	if !rt.state.CompareAndSwap(stateIdle, stateRunning) {
		return ErrAlreadyStarted
	}
	tickCtx, cancel := context.WithCancel(ctx)
	rt.cancel = cancel
	ticker := time.NewTicker(rt.cfg.TickRate)

	rt.logger.Debug("runtime started", "tick_rate", rt.cfg.TickRate)
	go rt.tickLoop(tickCtx, ticker)
	return nil
}

// Stop gracefully stops the runtime and waits for the loop to exit.
func (rt *Runtime[T]) Stop() error {
	rt.ctlMu.Lock()
	if rt.state.Load() == stateIdle {
		rt.ctlMu.Unlock()
		return ErrNotStarted
	}
	rt.stopping.Store(true)
	rt.cancel()
	rt.ctlMu.Unlock()
	<-rt.stopped
	return nil
}

// Wait blocks until the loop exits and returns the terminate code. The error
// is the context's when the parent context ended the loop, or a recovered
// panic; Stop, termination and MaxTicks end the loop without error.
func (rt *Runtime[T]) Wait() (int32, error) {
	if rt.state.Load() == stateIdle {
		return 0, ErrNotStarted
	}
	<-rt.stopped
	return rt.code, rt.err
}

// Done is closed when the loop exits.
func (rt *Runtime[T]) Done() <-chan struct{} {
	return rt.stopped
}

// Post queues fn for the next tick (thread-safe).
func (rt *Runtime[T]) Post(fn func(T)) error {
	return rt.PostWithPriority(fn, 0)
}

// PostWithPriority queues fn with priority; higher runs first within a tick.
func (rt *Runtime[T]) PostWithPriority(fn func(T), priority int) error {
	if rt.state.Load() == stateStopped {
		return ErrStopped
	}

	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	if len(rt.batch) >= cap(rt.batch) {
		return ErrQueueFull
	}

	rt.batch = append(rt.batch, post[T]{
		fn:          fn,
		sequenceNum: rt.sequenceNum,
		priority:    priority,
	})
	rt.sequenceNum++

	return nil
}

// Do runs fn on the machine's goroutine between two ticks and waits for it.
// When the loop is not running fn runs on the caller's goroutine.
func (rt *Runtime[T]) Do(ctx context.Context, fn func(T)) error {
	if rt.state.Load() != stateRunning {
		fn(rt.obj)
		return nil
	}
	ran := make(chan struct{})
	select {
	case rt.exec <- func() { defer close(ran); fn(rt.obj) }:
		<-ran
		return nil
	case <-rt.stopped:
		fn(rt.obj)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Step runs one tick on the caller's goroutine. It is meant for tests and
// simulations that want ticks without wall-clock timing, and fails while the
// loop is running.
func (rt *Runtime[T]) Step() (int32, error) {
	if rt.state.Load() == stateRunning {
		return 0, ErrRunning
	}
	code, _ := rt.processTick()
	return code, nil
}

// TickNumber returns the number of ticks run so far.
func (rt *Runtime[T]) TickNumber() uint64 {
	return rt.tickNum.Load()
}

// tickLoop is the main tick execution loop
func (rt *Runtime[T]) tickLoop(ctx context.Context, ticker *time.Ticker) {
	defer close(rt.stopped)
	defer ticker.Stop()
	defer rt.state.Store(stateStopped)
	defer func() {
		if r := recover(); r != nil {
			rt.err = fmt.Errorf("panic in machine: %v", r)
			rt.logger.Error("runtime aborted", "err", rt.err, "tick", rt.TickNumber())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			if !rt.stopping.Load() {
				rt.err = ctx.Err()
			}
			rt.logger.Debug("runtime stopped", "tick", rt.TickNumber(), "err", rt.err)
			return
		case fn := <-rt.exec:
			fn()
		case <-ticker.C:
			code, terminated := rt.processTick()
			if terminated {
				rt.code = code
				rt.logger.Info("machine terminated", "code", code, "tick", rt.TickNumber())
				return
			}
			if rt.cfg.MaxTicks > 0 && rt.TickNumber() >= rt.cfg.MaxTicks {
				rt.logger.Debug("tick budget exhausted", "ticks", rt.cfg.MaxTicks)
				return
			}
		}
	}
}
