package replay

import (
	"strings"
	"testing"

	"github.com/mkling/reflux"
)

func TestCounterReducer_Increments(t *testing.T) {
	reducer := CounterReducer()

	s := CounterState{}
	for i := 1; i <= 3; i++ {
		next, err := reducer(s, reflux.Action{Type: ActionIncreaseCount})
		if err != nil {
			t.Fatalf("reducer() error = %v", err)
		}
		if next.Clicks != i {
			t.Fatalf("Clicks = %d, want %d", next.Clicks, i)
		}
		s = next
	}
}

func TestCounterReducer_UnhandledIsIdentity(t *testing.T) {
	reducer := CounterReducer()

	in := CounterState{Clicks: 2}
	out, err := reducer(in, reflux.Action{Type: "DECREASE_COUNT"})
	if err != nil {
		t.Fatalf("reducer() error = %v", err)
	}
	if out != in {
		t.Errorf("reducer() = %+v, want %+v unchanged", out, in)
	}
}

func TestShoppingListReducer_AddAndRemove(t *testing.T) {
	reducer := ShoppingListReducer()

	s := ShoppingListState{}
	for _, item := range []string{"milk", "eggs", "bread"} {
		next, err := reducer(s, reflux.Action{Type: ActionAddItem, Payload: item})
		if err != nil {
			t.Fatalf("reducer(ADD_ITEM %q) error = %v", item, err)
		}
		s = next
	}

	if got := strings.Join(s.Items, ","); got != "milk,eggs,bread" {
		t.Fatalf("Items = %q, want %q", got, "milk,eggs,bread")
	}

	s, err := reducer(s, reflux.Action{Type: ActionRemoveItem, Payload: "eggs"})
	if err != nil {
		t.Fatalf("reducer(REMOVE_ITEM) error = %v", err)
	}
	if got := strings.Join(s.Items, ","); got != "milk,bread" {
		t.Errorf("Items = %q, want %q", got, "milk,bread")
	}
}

func TestShoppingListReducer_RemoveAbsentIsIdentity(t *testing.T) {
	reducer := ShoppingListReducer()

	in := ShoppingListState{Items: []string{"milk"}}
	out, err := reducer(in, reflux.Action{Type: ActionRemoveItem, Payload: "butter"})
	if err != nil {
		t.Fatalf("reducer() error = %v", err)
	}
	if len(out.Items) != 1 || out.Items[0] != "milk" {
		t.Errorf("Items = %v, want [milk] unchanged", out.Items)
	}
}

func TestShoppingListReducer_RemovesFirstOccurrenceOnly(t *testing.T) {
	reducer := ShoppingListReducer()

	in := ShoppingListState{Items: []string{"milk", "eggs", "milk"}}
	out, err := reducer(in, reflux.Action{Type: ActionRemoveItem, Payload: "milk"})
	if err != nil {
		t.Fatalf("reducer() error = %v", err)
	}
	if got := strings.Join(out.Items, ","); got != "eggs,milk" {
		t.Errorf("Items = %q, want %q", got, "eggs,milk")
	}
}

func TestShoppingListReducer_NonStringPayload(t *testing.T) {
	reducer := ShoppingListReducer()

	in := ShoppingListState{Items: []string{"milk"}}
	for _, typ := range []string{ActionAddItem, ActionRemoveItem} {
		out, err := reducer(in, reflux.Action{Type: typ, Payload: 42})
		if err == nil {
			t.Errorf("reducer(%s, int payload) expected error, got nil", typ)
		}
		if len(out.Items) != 1 {
			t.Errorf("reducer(%s) state = %v, want unchanged on error", typ, out.Items)
		}
	}
}

func TestShoppingListReducer_DoesNotMutateInput(t *testing.T) {
	reducer := ShoppingListReducer()

	in := ShoppingListState{Items: []string{"milk", "eggs"}}
	next, err := reducer(in, reflux.Action{Type: ActionAddItem, Payload: "bread"})
	if err != nil {
		t.Fatalf("reducer() error = %v", err)
	}

	if len(in.Items) != 2 {
		t.Errorf("input Items = %v, want untouched [milk eggs]", in.Items)
	}
	if len(next.Items) != 3 {
		t.Errorf("next Items = %v, want 3 items", next.Items)
	}

	// removal must also leave the input's backing array alone
	removed, err := reducer(in, reflux.Action{Type: ActionRemoveItem, Payload: "milk"})
	if err != nil {
		t.Fatalf("reducer() error = %v", err)
	}
	if in.Items[0] != "milk" || in.Items[1] != "eggs" {
		t.Errorf("input Items = %v, mutated by removal", in.Items)
	}
	if len(removed.Items) != 1 || removed.Items[0] != "eggs" {
		t.Errorf("removed Items = %v, want [eggs]", removed.Items)
	}
}
