package reflux

import (
	"errors"
	"testing"
)

func TestHandlers_KnownTypeHandled(t *testing.T) {
	reducer := Handlers[counterState]{
		actionIncreaseCount: func(s counterState, _ Action) (counterState, error) {
			s.Clicks++
			return s, nil
		},
	}.Reducer()

	next, err := reducer(counterState{Clicks: 4}, Action{Type: actionIncreaseCount})
	if err != nil {
		t.Fatalf("reducer() error = %v", err)
	}
	if next.Clicks != 5 {
		t.Errorf("reducer() Clicks = %d, want 5", next.Clicks)
	}
}

func TestHandlers_UnknownTypeIsIdentity(t *testing.T) {
	reducer := Handlers[counterState]{
		actionIncreaseCount: func(s counterState, _ Action) (counterState, error) {
			s.Clicks++
			return s, nil
		},
	}.Reducer()

	tests := []struct {
		name string
		typ  string
	}{
		{"unhandled type", "DECREASE_COUNT"},
		{"empty type", ""},
		{"init sentinel", TypeInit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := counterState{Clicks: 7}
			out, err := reducer(in, Action{Type: tt.typ})
			if err != nil {
				t.Fatalf("reducer() error = %v", err)
			}
			if out != in {
				t.Errorf("reducer() = %+v, want input state %+v unchanged", out, in)
			}
		})
	}
}

func TestHandlers_ErrorPropagates(t *testing.T) {
	wantErr := errors.New("malformed payload")
	reducer := Handlers[counterState]{
		"BAD": func(s counterState, _ Action) (counterState, error) {
			return s, wantErr
		},
	}.Reducer()

	_, err := reducer(counterState{}, Action{Type: "BAD"})
	if !errors.Is(err, wantErr) {
		t.Errorf("reducer() error = %v, want %v", err, wantErr)
	}
}

func TestHandlers_EmptyTableIsIdentityReducer(t *testing.T) {
	reducer := Handlers[counterState]{}.Reducer()

	in := counterState{Clicks: 3}
	out, err := reducer(in, Action{Type: actionIncreaseCount})
	if err != nil {
		t.Fatalf("reducer() error = %v", err)
	}
	if out != in {
		t.Errorf("reducer() = %+v, want %+v", out, in)
	}
}
