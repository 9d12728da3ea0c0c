package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/apperror"
)

func TestExecute_PassesThrough(t *testing.T) {
	cb := New[int](DefaultConfig("test"))

	got, err := cb.Execute(func() (int, error) { return 7, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("result = %d, want 7", got)
	}
}

func TestExecute_TripsAfterConsecutiveFailures(t *testing.T) {
	cfg := Config{
		Name:                "test",
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 3,
	}
	cb := New[int](cfg)

	boom := errors.New("boom")
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
			t.Fatalf("attempt %d: error = %v, want boom", i, err)
		}
	}

	// Breaker is now open: calls are rejected without invoking fn.
	called := false
	_, err := cb.Execute(func() (int, error) { called = true; return 0, nil })
	if called {
		t.Error("fn invoked while breaker open")
	}
	if apperror.GetCode(err) != apperror.CodeCircuitOpen {
		t.Errorf("code = %s, want CIRCUIT_OPEN", apperror.GetCode(err))
	}
}
