package di_test

import (
	"testing"

	"github.com/Mriidul2508/Polygon-Arbitrage-Opportunity-Detector-Bot/internal/di"
)

func TestContainer_RegisterAndGet(t *testing.T) {
	c := di.NewContainer()
	c.Register("answer", 42)

	if got := c.Get("answer").(int); got != 42 {
		t.Errorf("Get = %d, want 42", got)
	}
}

func TestContainer_FactoryResolvedOnce(t *testing.T) {
	c := di.NewContainer()

	calls := 0
	di.RegisterToken(c, "counter", func(sr di.ServiceRegistry) *int {
		calls++
		v := calls
		return &v
	})

	first := di.GetToken[*int](c, "counter")
	second := di.GetToken[*int](c, "counter")

	if first != second {
		t.Error("expected memoized instance")
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}

func TestContainer_FactoryCanGetDependencies(t *testing.T) {
	c := di.NewContainer()
	c.Register("prefix", "arb")
	di.RegisterToken(c, "name", func(sr di.ServiceRegistry) string {
		return sr.Get("prefix").(string) + "-bot"
	})

	if got := di.GetToken[string](c, "name"); got != "arb-bot" {
		t.Errorf("Get = %q, want %q", got, "arb-bot")
	}
}

func TestContainer_UnknownKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown key")
		}
	}()
	di.NewContainer().Get("missing")
}
