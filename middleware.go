package reflux

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DispatchFunc is the signature of a dispatch stage: it receives an action
// and returns the action (pass-through) together with any reducer error.
type DispatchFunc func(Action) (Action, error)

// Middleware wraps a dispatch stage with additional behavior.
//
// A middleware receives the store it is attached to and the next stage of
// the pipeline, and returns the stage callers will invoke. Calling next
// runs the rest of the pipeline down to the reducer; the store's state is
// already swapped when next returns, so store.GetState() inside a
// middleware observes the post-transition value.
//
// Middleware are attached at construction with [WithMiddleware] and compose
// in registration order. They must call next exactly once per action they
// want applied; skipping next drops the action.
type Middleware[S any] func(store *Store[S], next DispatchFunc) DispatchFunc

// LoggingMiddleware returns a [Middleware] that logs every dispatch.
//
// Each dispatch is tagged with a generated correlation ID so the start and
// completion records can be joined in aggregated logs. Successful
// dispatches log at DEBUG level to reduce noise; failures log at WARN with
// the reducer error.
//
// If logger is nil the store's own logger is used.
func LoggingMiddleware[S any](logger *slog.Logger) Middleware[S] {
	return func(store *Store[S], next DispatchFunc) DispatchFunc {
		log := logger
		if log == nil {
			log = store.Logger()
		}

		return func(action Action) (Action, error) {
			dispatchID := uuid.NewString()
			start := time.Now()

			log.Debug("dispatch started",
				"dispatch_id", dispatchID,
				"action", action.Type,
			)

			out, err := next(action)

			logAttrs := []any{
				"dispatch_id", dispatchID,
				"action", action.Type,
				"duration_us", time.Since(start).Microseconds(),
			}
			if err != nil {
				log.Warn("dispatch failed", append(logAttrs, "error", err.Error())...)
			} else {
				log.Debug("dispatch completed", logAttrs...)
			}

			return out, err
		}
	}
}
