package replay

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/mkling/reflux"
	"github.com/mkling/reflux/config"
	"github.com/mkling/reflux/devtools"
)

// Report summarizes a completed scenario run.
type Report struct {
	// Name is the scenario's display name.
	Name string

	// Dispatched is the number of actions successfully dispatched.
	Dispatched int

	// Recorded is the number of entries held by the devtools recorder at
	// the end of the run (bounded by the scenario's history_limit).
	Recorded int

	// FinalState is the store's final state rendered as YAML.
	FinalState string
}

// Run executes a scenario and returns a report of the run.
//
// The scenario's reducer name selects one of the built-in lesson reducers;
// the store is wired with [reflux.LoggingMiddleware] and a
// [devtools.Recorder] so every dispatch is logged and recorded. The
// context cancels the run between dispatches.
func Run(ctx context.Context, sc *config.Scenario, logger *slog.Logger) (*Report, error) {
	switch sc.Reducer {
	case config.ReducerCounter:
		return run(ctx, sc, logger, CounterReducer())
	case config.ReducerShoppingList:
		return run(ctx, sc, logger, ShoppingListReducer())
	default:
		// config validation rejects unknown reducers; this guards direct callers
		return nil, fmt.Errorf("unknown reducer %q", sc.Reducer)
	}
}

// run executes the scenario against a store of the given reducer.
func run[S any](ctx context.Context, sc *config.Scenario, logger *slog.Logger, reducer reflux.Reducer[S]) (*Report, error) {
	recorder := devtools.NewRecorder[S](sc.HistoryLimit)

	store, err := reflux.New(reducer,
		reflux.WithLogger[S](logger),
		reflux.WithMiddleware(
			reflux.LoggingMiddleware[S](logger),
			recorder.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	dispatched := 0
	for rep := 0; rep < sc.Repeat; rep++ {
		for i, a := range sc.Actions {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("run cancelled after %d dispatches: %w", dispatched, err)
			}

			action := reflux.Action{Type: a.Type, Payload: a.Payload}
			if _, err := store.Dispatch(action); err != nil {
				return nil, fmt.Errorf("actions[%d] (repeat %d): %w", i, rep, err)
			}
			dispatched++
		}
	}

	rendered, err := yaml.Marshal(store.GetState())
	if err != nil {
		return nil, fmt.Errorf("failed to render final state: %w", err)
	}

	logger.Info("scenario complete",
		"scenario", sc.Name,
		"dispatched", dispatched,
		"recorded", recorder.Len(),
	)

	return &Report{
		Name:       sc.Name,
		Dispatched: dispatched,
		Recorded:   recorder.Len(),
		FinalState: string(rendered),
	}, nil
}
