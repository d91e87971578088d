// Package reflux provides a small, embeddable unidirectional state
// container: a store that owns a single state value and changes it only
// through dispatched actions applied by a caller-supplied pure reducer.
//
// reflux is designed as an SDK-first library. The store is a plain value
// handed to whichever layer needs to read state or dispatch actions; there
// is no global registry and no inheritance hierarchy. It follows functional
// programming principles with immutable state snapshots, pure reducers,
// and composable configuration via the functional options pattern.
//
// # Quick Start
//
// Define a reducer, create a store, and dispatch actions:
//
//	type Counter struct{ Clicks int }
//
//	reducer := reflux.Handlers[Counter]{
//	    "INCREASE_COUNT": func(s Counter, _ reflux.Action) (Counter, error) {
//	        s.Clicks++
//	        return s, nil
//	    },
//	}.Reducer()
//
//	store, _ := reflux.New(reducer)
//
//	unsubscribe := store.Subscribe(func() {
//	    fmt.Println("clicks:", store.GetState().Clicks)
//	})
//	defer unsubscribe()
//
//	store.Dispatch(reflux.Action{Type: "INCREASE_COUNT"})
//
// # Configuration
//
// Stores are configured with functional options:
//
//	store, err := reflux.New(reducer,
//	    reflux.WithInitialState(Counter{Clicks: 10}),
//	    reflux.WithLogger[Counter](logger),
//	    reflux.WithMiddleware(reflux.LoggingMiddleware[Counter](logger)),
//	)
//
// # Dispatch Semantics
//
// Dispatch is a single synchronous step: compute the next state with the
// reducer, swap it in, then notify every current subscriber in subscription
// order. There is no batching, queuing, or async scheduling. If the reducer
// returns an error the state is left untouched, no subscriber runs, and the
// error is returned to the caller.
//
// Subscribers are zero-argument callbacks; they re-read the store with
// [Store.GetState] to observe the post-transition value. A subscriber that
// panics is recovered and logged with a correlation ID; later subscribers
// still run.
//
// Dispatch must not be called from within a reducer or from within a
// subscriber triggered by the same dispatch. That is a programming error
// and will deadlock.
//
// # Middleware
//
// Cross-cutting capabilities (logging, recording, devtools) are injected
// explicitly at construction rather than looked up from ambient globals:
//
//	rec := devtools.NewRecorder[Counter](100)
//	store, err := reflux.New(reducer,
//	    reflux.WithMiddleware(
//	        reflux.LoggingMiddleware[Counter](logger),
//	        rec.Middleware(),
//	    ),
//	)
//
// # Architecture
//
// The repository consists of:
//
//   - reflux (root): the store, reducers, options, and middleware
//   - devtools: bounded action/state recording with time-travel replay
//   - config: YAML scenario files for the standalone CLI
//   - internal/replay: built-in lesson reducers and the scenario runner
//   - cmd/reflux: the standalone CLI (run, validate, version)
//
// The internal packages are not part of the public API and may change
// without notice.
package reflux
