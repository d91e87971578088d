package reflux

import (
	"errors"
	"log/slog"
)

// storeConfig holds mutable state during Store construction.
type storeConfig[S any] struct {
	initialState S
	logger       *slog.Logger
	middleware   []Middleware[S]
}

// Option is a function that configures a [Store] during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithInitialState], [WithLogger], [WithMiddleware].
type Option[S any] func(*storeConfig[S]) error

// WithInitialState seeds the store with a starting state instead of the
// zero value of S.
//
// The seeding invocation of the reducer still runs: the reducer receives
// this value together with the [TypeInit] sentinel action and its return
// value becomes the initial state. A well-behaved reducer returns the value
// unchanged from its default branch.
//
// Example:
//
//	store, err := reflux.New(counterReducer,
//	    reflux.WithInitialState(Counter{Clicks: 10}),
//	)
func WithInitialState[S any](state S) Option[S] {
	return func(cfg *storeConfig[S]) error {
		cfg.initialState = state
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the store.
//
// The store logs subscriber panics through it, and [LoggingMiddleware]
// shares it when none is given explicitly. If not specified,
// [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(cfg *storeConfig[S]) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithMiddleware appends middleware to the store's dispatch pipeline.
//
// Middleware wrap [Store.Dispatch] in registration order: the first
// middleware registered sees the action first and the result last. Can be
// called multiple times; later calls append to the chain.
//
// This is the store's capability-injection point: logging, recording, and
// devtools integration are passed in here rather than discovered through
// ambient globals.
//
// Nil middleware entries are silently ignored.
func WithMiddleware[S any](mw ...Middleware[S]) Option[S] {
	return func(cfg *storeConfig[S]) error {
		for _, m := range mw {
			if m == nil {
				continue // no-op for nil middleware (safe to pass)
			}
			cfg.middleware = append(cfg.middleware, m)
		}
		return nil
	}
}
