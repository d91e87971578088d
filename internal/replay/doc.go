// Package replay runs scenario files against stores built from the
// built-in lesson reducers.
//
// It is the engine behind "reflux run": it selects a reducer, wires a
// store with logging middleware and a devtools recorder, dispatches the
// scenario's actions, and reports the final state.
package replay
