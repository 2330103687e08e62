package graft_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/object"
	"github.com/aretw0/graft/pkg/policy"
)

func TestFacade_AuthorScenario(t *testing.T) {
	// 1. Define the behaviors being mixed in.
	hasBooks := graft.NewBehavior("HasBooks").
		Init(func(self domain.Receiver, _ ...any) (any, error) {
			self.SetField("books", []string{})
			return nil, nil
		}).
		Method("addBook", func(self domain.Receiver, args ...any) (any, error) {
			books := self.Field("books").([]string)
			books = append(books, args[0].(string))
			self.SetField("books", books)
			return self, nil
		}).
		Method("books", func(self domain.Receiver, _ ...any) (any, error) {
			return self.Field("books"), nil
		})

	hasChildren := graft.NewBehavior("HasChildren").
		Init(func(self domain.Receiver, _ ...any) (any, error) {
			self.SetField("children", []string{})
			return nil, nil
		}).
		Method("addChild", func(self domain.Receiver, args ...any) (any, error) {
			children := self.Field("children").([]string)
			children = append(children, args[0].(string))
			self.SetField("children", children)
			return self, nil
		}).
		Method("numberOfChildren", func(self domain.Receiver, _ ...any) (any, error) {
			return len(self.Field("children").([]string)), nil
		})

	// 2. Build the person definition with its own initialize, then graft the
	// behaviors under Chain so every initializer runs at construction.
	person := object.Define("person")
	person.Members().Set(domain.MemberInitialize, domain.Method(func(self domain.Receiver, args ...any) (any, error) {
		self.SetField("name", args[0])
		return nil, nil
	}))
	person.Graft(policy.Chain(), hasBooks, hasChildren)

	// 3. Construct and exercise the composed object.
	author, err := person.New("Reginald")
	if err != nil {
		t.Fatalf("constructing author: %v", err)
	}

	for _, title := range []string{"JavaScript Spessore", "JavaScript Allongé"} {
		if _, err := author.Call("addBook", title); err != nil {
			t.Fatalf("addBook(%s): %v", title, err)
		}
	}
	for _, child := range []string{"Thomas", "Clara"} {
		if _, err := author.Call("addChild", child); err != nil {
			t.Fatalf("addChild(%s): %v", child, err)
		}
	}

	books, err := author.Call("books")
	if err != nil {
		t.Fatalf("books(): %v", err)
	}
	wantBooks := []string{"JavaScript Spessore", "JavaScript Allongé"}
	if !reflect.DeepEqual(books, wantBooks) {
		t.Errorf("books() = %v, want %v", books, wantBooks)
	}

	count, err := author.Call("numberOfChildren")
	if err != nil {
		t.Fatalf("numberOfChildren(): %v", err)
	}
	if count != 2 {
		t.Errorf("numberOfChildren() = %v, want 2", count)
	}

	if got := author.Field("name"); got != "Reginald" {
		t.Errorf("the object's own initialize did not run: name = %v", got)
	}

	// 4. Provenance of the grafted members.
	if origin := person.Members().Origin("addBook"); origin != "HasBooks" {
		t.Errorf("Origin(addBook) = %q, want HasBooks", origin)
	}
	if origin := person.Members().Origin("numberOfChildren"); origin != "HasChildren" {
		t.Errorf("Origin(numberOfChildren) = %q, want HasChildren", origin)
	}
}

func TestCompose_OrderSensitivity(t *testing.T) {
	a := graft.NewBehavior("A").Data("title", "from A")
	b := graft.NewBehavior("B").Data("title", "from B")

	ab := graft.Compose(graft.NewTarget("ab"), policy.Overwrite(), a, b)
	ba := graft.Compose(graft.NewTarget("ba"), policy.Overwrite(), b, a)

	vAB, _ := ab.Get("title")
	vBA, _ := ba.Get("title")

	if vAB != "from B" {
		t.Errorf("compose [A B] title = %v, want from B", vAB)
	}
	if vBA != "from A" {
		t.Errorf("compose [B A] title = %v, want from A", vBA)
	}
}

func TestCompose_ChainIsOrderSensitive(t *testing.T) {
	var calls []string
	rec := func(tag string) domain.Method {
		return func(domain.Receiver, ...any) (any, error) {
			calls = append(calls, tag)
			return tag, nil
		}
	}
	s1 := graft.NewBehavior("S1").Method("m", rec("s1"))
	s2 := graft.NewBehavior("S2").Method("m", rec("s2"))

	run := func(sources ...graft.Source) (any, []string) {
		calls = nil
		target := graft.NewTarget("t")
		graft.Compose(target, policy.Chain(), sources...)

		v, _ := target.Get("m")
		m, ok := domain.AsMethod(v)
		if !ok {
			t.Fatal("m is not callable after chaining")
		}
		out, err := m(nil)
		if err != nil {
			t.Fatalf("invoking chained m: %v", err)
		}
		return out, append([]string(nil), calls...)
	}

	out12, order12 := run(s1, s2)
	out21, order21 := run(s2, s1)

	if out12 != "s2" || out21 != "s1" {
		t.Errorf("chain results = %v / %v, want the last-mixed source's result each way", out12, out21)
	}
	if !reflect.DeepEqual(order12, []string{"s1", "s2"}) || !reflect.DeepEqual(order21, []string{"s2", "s1"}) {
		t.Errorf("call orders = %v / %v, want mix-in order each way", order12, order21)
	}
}

func TestCompose_OverwriteSymmetricOnlyWhenDisjoint(t *testing.T) {
	a := graft.NewBehavior("A").Data("x", 1)
	b := graft.NewBehavior("B").Data("y", 2)

	ab := graft.Compose(graft.NewTarget("ab"), policy.Overwrite(), a, b)
	ba := graft.Compose(graft.NewTarget("ba"), policy.Overwrite(), b, a)

	// Disjoint members: both orders end up with the same values.
	for _, name := range []string{"x", "y"} {
		vAB, _ := ab.Get(name)
		vBA, _ := ba.Get(name)
		if vAB != vBA {
			t.Errorf("member %q differs between orders: %v vs %v", name, vAB, vBA)
		}
	}
}

func TestCompose_ReturnsTargetForChaining(t *testing.T) {
	target := graft.NewTarget("chainable")
	a := graft.NewBehavior("A").Data("x", 1)
	b := graft.NewBehavior("B").Data("y", 2)

	got := graft.Compose(graft.Compose(target, policy.Overwrite(), a), policy.Overwrite(), b)
	if got != target {
		t.Fatal("Compose must return the mutated target")
	}
	if !target.Has("x") || !target.Has("y") {
		t.Errorf("chained composes lost members: %v", target.Names())
	}
}

func TestComposer_StrictSurfacesDuplicates(t *testing.T) {
	target := graft.NewTarget("strict")
	target.Set("emit", "own")

	src := graft.NewBehavior("Emitter").Data("emit", "mixed-in")

	_, err := graft.New(graft.WithStrict(true)).Compose(target, src)
	if !errors.Is(err, domain.ErrDuplicateMember) {
		t.Fatalf("strict compose error = %v, want ErrDuplicateMember", err)
	}
}

func TestTableSource(t *testing.T) {
	raw := domain.NewTable()
	raw.Set("legacy", 1)

	target := graft.NewTarget("modern")
	graft.Compose(target, policy.Overwrite(), graft.TableSource("Legacy", raw))

	if origin := target.Origin("legacy"); origin != "Legacy" {
		t.Errorf("Origin(legacy) = %q, want Legacy", origin)
	}
}

func TestCompose_NilSourceIsSkipped(t *testing.T) {
	target := graft.NewTarget("tolerant")
	a := graft.NewBehavior("A").Data("x", 1)

	graft.Compose(target, policy.Overwrite(), a, nil)

	if target.Len() != 1 {
		t.Errorf("Len() = %d, want 1", target.Len())
	}
}
