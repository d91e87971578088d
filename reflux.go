package reflux

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
)

// Reducer is a pure function computing the next state from the current
// state and an action.
//
// Reducers must never mutate their input state in place; they return a new
// value (Go's value semantics make this natural for struct states — copy,
// modify the copy, return it). For an unrecognized action type a reducer
// must return the input state unchanged with a nil error. Given the same
// (state, action) pair a reducer must always produce the same output.
//
// A non-nil error aborts the dispatch: the store keeps its pre-dispatch
// state and no subscriber is notified. Use it for malformed payloads or
// other conditions the caller must decide how to handle.
type Reducer[S any] func(state S, action Action) (S, error)

// Store owns a single state value and mediates all reads and writes.
//
// State changes only through [Store.Dispatch]; reads happen through
// [Store.GetState]. The reducer is fixed at construction and never changes.
// Create a Store with [New] and share it as a plain value with whichever
// layers need it.
//
// A Store is safe for concurrent use: dispatches are serialized by a single
// ordering lock, so subscribers always observe the post-transition state of
// exactly one transition at a time. Dispatch must not be re-entered from a
// reducer or from a subscriber callback; doing so deadlocks.
type Store[S any] struct {
	reducer  Reducer[S]
	dispatch DispatchFunc // middleware-wrapped pipeline, ends at apply
	logger   *slog.Logger

	mu    sync.RWMutex // guards state
	state S

	dispatchMu sync.Mutex // serializes dispatch + notification

	subMu     sync.Mutex // guards subs and nextSubID
	subs      []subscription
	nextSubID uint64
}

// subscription pairs a listener with a removal handle.
// Order in Store.subs is subscription order.
type subscription struct {
	id uint64
	fn func()
}

// New constructs a [Store] with the given reducer and options.
//
// The initial state is seeded by immediately invoking the reducer with the
// zero value of S (or the value given via [WithInitialState]) and a
// sentinel [TypeInit] action. A well-behaved reducer does not recognize
// [TypeInit] and therefore returns its initial state from the default
// branch.
//
// Returns an error if the reducer is nil, if any option is invalid, or if
// the seeding invocation of the reducer fails.
//
// Example:
//
//	store, err := reflux.New(counterReducer,
//	    reflux.WithLogger[Counter](logger),
//	)
func New[S any](reducer Reducer[S], opts ...Option[S]) (*Store[S], error) {
	if reducer == nil {
		return nil, errors.New("reducer cannot be nil")
	}

	cfg := &storeConfig[S]{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store[S]{
		reducer: reducer,
		logger:  logger,
	}

	// seed through the reducer so the initial state is exactly what the
	// reducer's default branch produces for the init sentinel
	seeded, err := reducer(cfg.initialState, Action{Type: TypeInit})
	if err != nil {
		return nil, fmt.Errorf("failed to seed initial state: %w", err)
	}
	s.state = seeded

	// compose the dispatch pipeline; middleware wrap in registration
	// order, so the first registered middleware sees the action first
	d := DispatchFunc(s.apply)
	for i := len(cfg.middleware) - 1; i >= 0; i-- {
		d = cfg.middleware[i](s, d)
	}
	s.dispatch = d

	return s, nil
}

// GetState returns the current state value.
//
// The returned value is a snapshot: it stays the same until the next
// successful dispatch. Callers must treat it as read-only; for struct
// states Go's value semantics hand back a copy, but states containing
// slices or maps share backing storage and must not be mutated in place.
func (s *Store[S]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies an action to the store.
//
// Dispatch is a single synchronous step: it computes the next state via the
// reducer, swaps it in, then notifies every current subscriber in
// subscription order. The dispatched action is returned unchanged so call
// sites can chain on it.
//
// If the reducer returns an error the store's state is left at its
// pre-dispatch value, no subscriber is notified, and the wrapped error is
// returned. The store performs no retry; the caller decides what to do.
//
// Dispatch must not be called from within a reducer or from within a
// subscriber triggered by the same dispatch.
func (s *Store[S]) Dispatch(action Action) (Action, error) {
	return s.dispatch(action)
}

// Subscribe registers a zero-argument listener invoked after every
// successful dispatch.
//
// Listeners run synchronously, in subscription order, after the state has
// already been replaced; they re-read the store with [Store.GetState] to
// observe the new value. A listener that panics is recovered and logged
// with a correlation ID; subsequent listeners still run.
//
// The returned function removes this specific listener. It is idempotent:
// calling it more than once is a no-op after the first call. Listeners
// added or removed during a dispatch take effect from the next dispatch.
//
// Nil listeners are silently ignored (the returned function is a no-op).
func (s *Store[S]) Subscribe(listener func()) (unsubscribe func()) {
	if listener == nil {
		return func() {} // no-op for nil listener (safe to call)
	}

	s.subMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscription{id: id, fn: listener})
	s.subMu.Unlock()

	return func() {
		s.removeSubscriber(id)
	}
}

// SubscriberCount reports the number of currently registered listeners.
func (s *Store[S]) SubscriberCount() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.subs)
}

// Logger returns the logger the store was configured with.
func (s *Store[S]) Logger() *slog.Logger {
	return s.logger
}

// apply is the innermost stage of the dispatch pipeline: compute, swap,
// notify. Middleware wrap around it.
func (s *Store[S]) apply(action Action) (Action, error) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	current := s.state
	s.mu.RUnlock()

	next, err := s.reducer(current, action)
	if err != nil {
		return action, fmt.Errorf("reducer failed for action %q: %w", action.Type, err)
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	s.notifySubscribers()
	return action, nil
}

// notifySubscribers invokes every listener registered at the start of the
// notification, in subscription order. Called with dispatchMu held so a
// concurrent dispatch cannot replace the state mid-notification.
func (s *Store[S]) notifySubscribers() {
	s.subMu.Lock()
	snapshot := make([]subscription, len(s.subs))
	copy(snapshot, s.subs)
	s.subMu.Unlock()

	for _, sub := range snapshot {
		invokeListenerSafe(sub.fn, s.logger)
	}
}

// removeSubscriber deletes the listener with the given id, preserving
// subscription order of the rest. Unknown ids are a no-op, which makes
// unsubscribe handles idempotent.
func (s *Store[S]) removeSubscriber(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// invokeListenerSafe calls a listener with panic recovery.
// If the listener panics, the full stack trace is logged with a correlation
// ID; the panic does not propagate, so later listeners still run.
func invokeListenerSafe(listener func(), logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			logger.Error("subscriber panic",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	listener()
}
