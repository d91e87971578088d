package replay

import (
	"fmt"

	"github.com/mkling/reflux"
)

// Action types handled by the built-in reducers.
const (
	ActionIncreaseCount = "INCREASE_COUNT"
	ActionAddItem       = "ADD_ITEM"
	ActionRemoveItem    = "REMOVE_ITEM"
)

// CounterState is the state of the counter lesson: a single click count.
type CounterState struct {
	Clicks int `yaml:"clicks" json:"clicks"`
}

// ShoppingListState is the state of the shopping-list lesson.
type ShoppingListState struct {
	Items []string `yaml:"items" json:"items"`
}

// CounterReducer returns the counter lesson's reducer.
//
// It handles only INCREASE_COUNT; anything else (including the store's
// init sentinel) falls through to the identity branch, which is what seeds
// the initial zero-click state.
func CounterReducer() reflux.Reducer[CounterState] {
	return reflux.Handlers[CounterState]{
		ActionIncreaseCount: func(s CounterState, _ reflux.Action) (CounterState, error) {
			s.Clicks++
			return s, nil
		},
	}.Reducer()
}

// ShoppingListReducer returns the shopping-list lesson's reducer.
//
// ADD_ITEM appends the string payload; REMOVE_ITEM removes the first
// occurrence of the string payload, and is a no-op when the item is
// absent. Both reject non-string payloads with an error, leaving the
// state untouched.
func ShoppingListReducer() reflux.Reducer[ShoppingListState] {
	return reflux.Handlers[ShoppingListState]{
		ActionAddItem: func(s ShoppingListState, a reflux.Action) (ShoppingListState, error) {
			item, err := stringPayload(a)
			if err != nil {
				return s, err
			}
			// copy before append so the previous state's slice is untouched
			items := make([]string, 0, len(s.Items)+1)
			items = append(items, s.Items...)
			s.Items = append(items, item)
			return s, nil
		},
		ActionRemoveItem: func(s ShoppingListState, a reflux.Action) (ShoppingListState, error) {
			item, err := stringPayload(a)
			if err != nil {
				return s, err
			}
			for i, existing := range s.Items {
				if existing != item {
					continue
				}
				items := make([]string, 0, len(s.Items)-1)
				items = append(items, s.Items[:i]...)
				s.Items = append(items, s.Items[i+1:]...)
				return s, nil
			}
			// item not on the list: identity
			return s, nil
		},
	}.Reducer()
}

// stringPayload extracts a string payload or reports a usage error.
func stringPayload(a reflux.Action) (string, error) {
	item, ok := a.Payload.(string)
	if !ok {
		return "", fmt.Errorf("action %q requires a string payload, got %T", a.Type, a.Payload)
	}
	return item, nil
}
