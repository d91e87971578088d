// Package devtools provides development-time introspection for reflux
// stores: a bounded recorder of dispatched actions and resulting states,
// with time-travel replay onto a fresh store.
//
// The recorder attaches to a store as explicit middleware rather than
// hooking into ambient global state:
//
//	rec := devtools.NewRecorder[Counter](100)
//	store, err := reflux.New(reducer,
//	    reflux.WithMiddleware(rec.Middleware()),
//	)
//
// After some dispatches, the recorded history can be inspected or replayed:
//
//	for _, e := range rec.History() {
//	    fmt.Println(e.Action.Type, e.State)
//	}
//
//	fresh, _ := reflux.New(reducer)
//	_ = rec.Replay(fresh) // fresh now holds the same final state
package devtools

import (
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/mkling/reflux"
)

// DefaultLimit is the history bound used when [NewRecorder] is given a
// non-positive limit.
const DefaultLimit = 1000

// Entry is one recorded dispatch: the action and the state it produced.
type Entry[S any] struct {
	// ID is a generated identifier for correlating this entry with logs.
	ID string

	// Action is the dispatched action, as returned by the store.
	Action reflux.Action

	// State is the store's state after the action was applied.
	State S

	// At is the wall-clock time the entry was recorded.
	At time.Time
}

// Recorder captures successful dispatches into a bounded ring of [Entry]
// values. When the ring is full the oldest entry is evicted, so the
// recorder holds the most recent window of activity.
//
// Failed dispatches (reducer errors) are not recorded: the store's state
// did not change, so there is nothing to snapshot.
//
// A Recorder is safe for concurrent use, though replay fidelity assumes
// the single-dispatcher discipline the store itself documents.
type Recorder[S any] struct {
	mu      sync.Mutex
	entries *queue.Queue
	limit   int
}

// NewRecorder creates a [Recorder] holding at most limit entries.
// A non-positive limit falls back to [DefaultLimit].
func NewRecorder[S any](limit int) *Recorder[S] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Recorder[S]{
		entries: queue.New(),
		limit:   limit,
	}
}

// Middleware returns the [reflux.Middleware] that feeds this recorder.
//
// It records after the rest of the pipeline has run, so the captured state
// is the post-transition value. Attach it last in [reflux.WithMiddleware]
// if other middleware may reject actions.
func (r *Recorder[S]) Middleware() reflux.Middleware[S] {
	return func(store *reflux.Store[S], next reflux.DispatchFunc) reflux.DispatchFunc {
		return func(action reflux.Action) (reflux.Action, error) {
			out, err := next(action)
			if err != nil {
				return out, err
			}

			r.record(Entry[S]{
				ID:     uuid.NewString(),
				Action: out,
				State:  store.GetState(),
				At:     time.Now(),
			})
			return out, nil
		}
	}
}

// record appends an entry, evicting the oldest when over the limit.
func (r *Recorder[S]) record(e Entry[S]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries.Add(e)
	for r.entries.Length() > r.limit {
		r.entries.Remove()
	}
}

// Len reports the number of recorded entries.
func (r *Recorder[S]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries.Length()
}

// History returns a copy of the recorded entries, oldest first.
//
// The returned slice is independent of the recorder; modifying it does not
// affect recorded history.
func (r *Recorder[S]) History() []Entry[S] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry[S], 0, r.entries.Length())
	for i := 0; i < r.entries.Length(); i++ {
		out = append(out, r.entries.Get(i).(Entry[S]))
	}
	return out
}

// Actions returns just the recorded actions, oldest first.
func (r *Recorder[S]) Actions() []reflux.Action {
	history := r.History()
	actions := make([]reflux.Action, len(history))
	for i, e := range history {
		actions[i] = e.Action
	}
	return actions
}

// Reset discards all recorded entries.
func (r *Recorder[S]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = queue.New()
}

// Replay re-dispatches the recorded actions, in order, onto target.
//
// Given a target built with the same reducer and initial state as the
// recorded store, the target ends at the same final state (reducers are
// deterministic). Replay stops at the first dispatch error.
func (r *Recorder[S]) Replay(target *reflux.Store[S]) error {
	for i, action := range r.Actions() {
		if _, err := target.Dispatch(action); err != nil {
			return fmt.Errorf("replay stopped at entry %d (%s): %w", i, action.Type, err)
		}
	}
	return nil
}
