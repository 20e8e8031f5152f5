package eventloop

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// ErrAlreadyRunning is returned by Run when the loop is already running
var ErrAlreadyRunning = errors.New("event loop is already running")

// Loop runs tasks one at a time on a single goroutine. Work that blocks, such
// as a network call, runs on its own goroutine through Go and posts its
// continuation back to the loop, so state touched only from tasks needs no locking.
type Loop struct {
	logger  *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	running *atomic.Bool
	ran     *atomic.Int64

	mu      sync.Mutex
	queue   []func()
	pending int
	idle    chan struct{}
	wake    chan struct{}
}

// New creates a Loop. Tasks posted before Run are kept until it starts.
func New(logger *zap.Logger) *Loop {
	ctx, cancel := context.WithCancel(context.Background())
	idle := make(chan struct{})
	close(idle)

	return &Loop{
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		running: atomic.NewBool(false),
		ran:     atomic.NewInt64(0),
		idle:    idle,
		wake:    make(chan struct{}, 1),
	}
}

// Run processes posted tasks until ctx is done or Close is called
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)
	defer func() {
		l.logger.Debug("event loop stopped", zap.Int64("tasks", l.ran.Load()))
	}()

	for {
		task, ok := l.next()
		if ok {
			l.run(task)
			continue
		}

		select {
		case <-ctx.Done():
			l.cancel()
			return nil
		case <-l.ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

// Close stops the loop and cancels the context of every call started with Go
func (l *Loop) Close() {
	l.cancel()
}

// Post queues task to run on the loop
func (l *Loop) Post(task func()) {
	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.acquireLocked()
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Go runs work on its own goroutine with the loop's context. The function it
// returns, if any, is posted back to the loop.
func (l *Loop) Go(work func(ctx context.Context) func()) {
	l.mu.Lock()
	l.acquireLocked()
	l.mu.Unlock()

	go func() {
		defer l.release()
		if done := work(l.ctx); done != nil {
			l.Post(done)
		}
	}()
}

// Do runs fn on the loop and waits for it to finish
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Post(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Settle waits until no task is queued and no call started with Go is in flight.
// Scheduled timers are not waited for.
func (l *Loop) Settle(ctx context.Context) error {
	l.mu.Lock()
	idle := l.idle
	l.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}

func (l *Loop) run(task func()) {
	defer l.release()
	defer func() {
		l.ran.Inc()
		if r := recover(); r != nil {
			l.logger.Error("event loop task panicked", zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	task()
}

func (l *Loop) acquireLocked() {
	if l.pending == 0 {
		l.idle = make(chan struct{})
	}
	l.pending++
}

func (l *Loop) release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending--
	if l.pending == 0 {
		close(l.idle)
	}
}
