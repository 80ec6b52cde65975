package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/angelmondragon/cartstore/pkg/logger"
	"github.com/angelmondragon/cartstore/pkg/metrics"
)

// Reducer applies an action to state and returns the effects to run afterwards.
// Implementations must treat slices and maps reachable from state as immutable:
// replace them instead of editing them in place, so State snapshots stay valid.
type Reducer[S, A any] interface {
	Reduce(ctx context.Context, state *S, action A) []Effect[A]
}

// ReducerFunc adapts a function to the Reducer interface.
type ReducerFunc[S, A any] func(ctx context.Context, state *S, action A) []Effect[A]

func (f ReducerFunc[S, A]) Reduce(ctx context.Context, state *S, action A) []Effect[A] {
	return f(ctx, state, action)
}

type options struct {
	name    string
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// Option configures a Store.
type Option func(*options)

// WithName labels logs and metrics emitted by the store.
func WithName(name string) Option {
	return func(o *options) {
		if strings.TrimSpace(name) != "" {
			o.name = name
		}
	}
}

func WithLogger(logg *logger.Logger) Option {
	return func(o *options) {
		if logg != nil {
			o.logg = logg
		}
	}
}

func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// Store owns one piece of state and serializes every transition on it.
type Store[S, A any] struct {
	mu          sync.Mutex
	state       S
	reducer     Reducer[S, A]
	closed      bool
	subscribers map[int]func(S)
	nextSubID   int

	ctx    context.Context
	cancel context.CancelFunc
	tasks  sync.WaitGroup

	name    string
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// New builds a store seeded with initial. Tasks started by the store inherit ctx and are
// canceled when ctx ends or Close is called.
func New[S, A any](ctx context.Context, initial S, reducer Reducer[S, A], opts ...Option) (*Store[S, A], error) {
	if reducer == nil {
		return nil, fmt.Errorf("reducer required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := options{name: "store", logg: logger.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	return &Store[S, A]{
		state:       initial,
		reducer:     reducer,
		subscribers: map[int]func(S){},
		ctx:         o.logg.WithStore(runCtx, o.name),
		cancel:      cancel,
		name:        o.name,
		logg:        o.logg,
		metrics:     o.metrics,
	}, nil
}

// Name returns the label the store was built with.
func (s *Store[S, A]) Name() string {
	return s.name
}

// Send reduces action and every synchronous follow-up it produces, then runs callbacks and
// notifies subscribers. Actions sent after Close are dropped.
func (s *Store[S, A]) Send(action A) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logg.Debug(s.logg.WithAction(s.ctx, ActionName(action)), "store.action_dropped")
		return
	}

	queue := []A{action}
	var callbacks []func()
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		name := ActionName(next)
		s.metrics.IncAction(s.name, name)
		s.logg.Debug(s.logg.WithAction(s.ctx, name), "store.action")

		for _, eff := range s.reducer.Reduce(s.ctx, &s.state, next) {
			queue = append(queue, eff.actions...)
			if eff.task != nil {
				s.start(*eff.task)
			}
			if eff.do != nil {
				callbacks = append(callbacks, eff.do)
			}
		}
	}

	snapshot := s.state
	subs := make([]func(S), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	for _, fn := range subs {
		fn(snapshot)
	}
}

// State returns a snapshot of the current state.
func (s *Store[S, A]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive a snapshot after every Send. The returned func removes it.
func (s *Store[S, A]) Subscribe(fn func(S)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Wait blocks until every task started so far, and any task those tasks led to, has settled.
func (s *Store[S, A]) Wait() {
	s.tasks.Wait()
}

// Close cancels in-flight tasks and waits for them to return. Their results are discarded.
func (s *Store[S, A]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.tasks.Wait()
	s.logg.Debug(s.ctx, "store.closed")
}

// start must be called with s.mu held.
func (s *Store[S, A]) start(t task[A]) {
	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()

		ctx := s.logg.WithField(s.ctx, "task", t.name)
		started := time.Now()
		result, ok := s.runTask(ctx, t)
		s.metrics.ObserveTask(s.name, t.name, time.Since(started))
		if !ok {
			return
		}

		if s.ctx.Err() != nil {
			s.metrics.IncDropped(s.name, t.name)
			s.logg.Debug(ctx, "store.task_result_dropped")
			return
		}
		s.Send(result)
	}()
}

func (s *Store[S, A]) runTask(ctx context.Context, t task[A]) (result A, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logg.Error(s.logg.WithField(ctx, "panic", rec), "store.task_panic", fmt.Errorf("panic: %v", rec))
			ok = false
		}
	}()
	return t.run(ctx), true
}

// ActionName returns the bare type name of action, used for logs and metric labels.
func ActionName(action any) string {
	name := fmt.Sprintf("%T", action)
	name = strings.TrimPrefix(name, "*")
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
