package reflux

// TypeInit is the sentinel action type dispatched internally by [New] to
// seed the initial state. Reducers should not match it explicitly; it falls
// through the default identity branch like any other unrecognized type,
// causing the reducer to return its initial state.
const TypeInit = "@@reflux/INIT"

// Action is a tagged value describing an intended state change.
//
// Action is immutable by convention: callers construct one, pass it to
// [Store.Dispatch], and receive it back unchanged. The Type field is the
// discriminator a reducer switches on; it is an open set of
// application-defined strings. Payload carries optional action data and is
// opaque to the store.
//
// An Action with an empty Type is not rejected by the store; the reducer's
// default identity branch treats it as unrecognized.
type Action struct {
	// Type identifies the intended state transition, e.g. "INCREASE_COUNT".
	Type string

	// Payload carries optional data for the transition. The store never
	// inspects it; interpretation is entirely up to the reducer.
	Payload any
}

// String returns the action's type tag.
// This implements the fmt.Stringer interface.
func (a Action) String() string {
	return a.Type
}
