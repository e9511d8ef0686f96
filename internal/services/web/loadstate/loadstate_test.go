package loadstate

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestResolveReady(t *testing.T) {
	t.Parallel()

	state, applied := Resolve(Loading[string]("1"), Result[string]{Key: "1", Value: "period"})
	if !applied {
		t.Fatal("applied = false")
	}
	if !state.Ready() || state.Value != "period" || state.Key != "1" {
		t.Fatalf("state = %+v", state)
	}
}

func TestResolveFailed(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	state, applied := Resolve(Loading[int]("k"), Result[int]{Key: "k", Err: boom})
	if !applied || !state.Failed() || !errors.Is(state.Err, boom) {
		t.Fatalf("state = %+v applied = %v", state, applied)
	}
}

func TestResolveDiscardsStaleKey(t *testing.T) {
	t.Parallel()

	initial := Loading[string]("2")
	state, applied := Resolve(initial, Result[string]{Key: "1", Value: "old"})
	if applied {
		t.Fatal("stale result applied")
	}
	if state != initial {
		t.Fatalf("state changed: %+v", state)
	}
}

func TestResolveDiscardsCanceledRequest(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", context.Canceled)
	state, applied := Resolve(Loading[string]("1"), Result[string]{Key: "1", Err: err})
	if applied || state.Phase != PhaseLoading {
		t.Fatalf("canceled result applied: %+v", state)
	}
}

func TestResolveLateResultOverridesOutcome(t *testing.T) {
	t.Parallel()

	state, _ := Resolve(Loading[string]("1"), Result[string]{Key: "1", Err: errors.New("boom")})
	state, applied := Resolve(state, Result[string]{Key: "1", Value: "retry"})
	if !applied || !state.Ready() || state.Err != nil {
		t.Fatalf("state = %+v", state)
	}
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	for phase, want := range map[Phase]string{PhaseLoading: "loading", PhaseReady: "ready", PhaseFailed: "failed", Phase(9): "unknown"} {
		if got := phase.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
