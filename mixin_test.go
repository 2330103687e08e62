package graft_test

import (
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

func TestMixin_CarriesItsOwnPolicy(t *testing.T) {
	// The same collision resolves differently depending on which mixin is
	// applied, not on anything the call site chooses.
	loud := graft.NewMixin(
		graft.NewBehavior("Loud").Data("volume", 11),
		policy.Overwrite(),
	)
	polite := graft.NewMixin(
		graft.NewBehavior("Polite").Data("volume", 3),
		policy.FirstWins(),
	)

	t.Run("overwrite mixin replaces", func(t *testing.T) {
		target := graft.NewTarget("amp")
		target.Set("volume", 5)

		loud.Into(target)

		if v, _ := target.Get("volume"); v != 11 {
			t.Fatalf("volume = %v, want 11", v)
		}
	})

	t.Run("first-wins mixin yields", func(t *testing.T) {
		target := graft.NewTarget("amp")
		target.Set("volume", 5)

		polite.Into(target)

		if v, _ := target.Get("volume"); v != 5 {
			t.Fatalf("volume = %v, want 5", v)
		}
	})
}

func TestMixin_IntoChains(t *testing.T) {
	a := graft.NewMixin(graft.NewBehavior("A").Data("a", 1), nil)
	b := graft.NewMixin(graft.NewBehavior("B").Data("b", 2), nil)

	target := b.Into(a.Into(graft.NewTarget("t")))

	for _, name := range []string{"a", "b"} {
		if !target.Has(name) {
			t.Fatalf("missing member %q", name)
		}
	}
	if origin := target.Origin("a"); origin != "A" {
		t.Fatalf("origin(a) = %q, want %q", origin, "A")
	}
}

func TestMixin_ChainPolicyTravelsWithTheMixin(t *testing.T) {
	var calls []string
	record := func(tag string, result any) domain.Method {
		return func(self domain.Receiver, args ...any) (any, error) {
			calls = append(calls, tag)
			return result, nil
		}
	}

	target := graft.NewTarget("t")
	target.Set("emit", record("own", "own-result"))

	emitter := graft.NewMixin(
		graft.NewBehavior("Emitter").Method("emit", record("emitter", "emitter-result")),
		policy.Chain(),
	)
	emitter.Into(target)

	v, _ := target.Get("emit")
	m, ok := domain.AsMethod(v)
	if !ok {
		t.Fatal("emit is not callable after chaining")
	}

	out, err := m(nil)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if out != "emitter-result" {
		t.Fatalf("result = %v, want the incoming callable's result", out)
	}
	if len(calls) != 2 || calls[0] != "own" || calls[1] != "emitter" {
		t.Fatalf("call order = %v, want [own emitter]", calls)
	}
}

func TestMixin_DefaultPolicyName(t *testing.T) {
	m := graft.NewMixin(graft.NewBehavior("Quiet"), nil)
	if m.Policy().Name() != "overwrite" {
		t.Fatalf("policy = %q, want overwrite", m.Policy().Name())
	}
	if m.Name() != "Quiet" {
		t.Fatalf("name = %q, want Quiet", m.Name())
	}
}
