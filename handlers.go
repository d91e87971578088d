package reflux

// Handlers builds a [Reducer] from a table of per-action-type handler
// functions, replacing the usual switch statement with data.
//
// Lookup is by the action's Type; an action whose type has no entry falls
// through to the default identity branch and the state is returned
// unchanged. This makes the resulting reducer total over the open set of
// action types by construction.
//
// Example:
//
//	reducer := reflux.Handlers[Counter]{
//	    "INCREASE_COUNT": func(s Counter, _ reflux.Action) (Counter, error) {
//	        s.Clicks++
//	        return s, nil
//	    },
//	}.Reducer()
type Handlers[S any] map[string]func(S, Action) (S, error)

// Reducer returns the reducer backed by the handler table.
//
// The table is captured by reference; mutating it after the store is
// constructed is a programming error (reducers must stay deterministic).
func (h Handlers[S]) Reducer() Reducer[S] {
	return func(state S, action Action) (S, error) {
		if handle, ok := h[action.Type]; ok {
			return handle(state, action)
		}
		// unrecognized action type: identity
		return state, nil
	}
}
