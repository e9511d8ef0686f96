// Package loadstate models a keyed asynchronous load: loading until a
// result for the current key arrives, then ready or failed. Results for any
// other key are stale and discarded.
package loadstate

import (
	"context"
	"errors"
)

// Phase is the lifecycle position of a load.
type Phase int

const (
	// PhaseLoading renders nothing.
	PhaseLoading Phase = iota
	// PhaseReady holds a value.
	PhaseReady
	// PhaseFailed holds the load error.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the current load state for Key.
type State[T any] struct {
	Phase Phase
	Key   string
	Value T
	Err   error
}

// Result is the outcome of one fetch issued for Key.
type Result[T any] struct {
	Key   string
	Value T
	Err   error
}

// Loading returns the initial state for key.
func Loading[T any](key string) State[T] {
	return State[T]{Phase: PhaseLoading, Key: key}
}

// Resolve applies result to state. It reports false and leaves state
// unchanged when the result is stale: issued for another key, or cut short
// because its request was superseded.
func Resolve[T any](state State[T], result Result[T]) (State[T], bool) {
	if result.Key != state.Key {
		return state, false
	}
	if errors.Is(result.Err, context.Canceled) {
		return state, false
	}
	if result.Err != nil {
		return State[T]{Phase: PhaseFailed, Key: state.Key, Err: result.Err}, true
	}
	return State[T]{Phase: PhaseReady, Key: state.Key, Value: result.Value}, true
}

// Ready reports whether the state holds a value.
func (s State[T]) Ready() bool {
	return s.Phase == PhaseReady
}

// Failed reports whether the load failed.
func (s State[T]) Failed() bool {
	return s.Phase == PhaseFailed
}
