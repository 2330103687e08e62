package object_test

import (
	"errors"
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/object"
	"github.com/aretw0/graft/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition_NewWithoutInitialize(t *testing.T) {
	def := object.Define("bare")
	obj, err := def.New("ignored")
	require.NoError(t, err)
	assert.Equal(t, "bare", obj.Name())
	assert.Empty(t, obj.Fields())
}

func TestDefinition_NewRunsInitializeOnce(t *testing.T) {
	var calls int
	var seen []any

	def := object.Define("person")
	def.Members().Set(domain.MemberInitialize, domain.Method(func(self domain.Receiver, args ...any) (any, error) {
		calls++
		seen = args
		self.SetField("first", args[0])
		self.SetField("last", args[1])
		return "discarded", nil
	}))

	obj, err := def.New("Reginald", "Braithwaite")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "the hook must run exactly once per construction")
	assert.Equal(t, []any{"Reginald", "Braithwaite"}, seen, "the hook receives the constructor's arguments")
	assert.Equal(t, "Reginald", obj.Field("first"))
	assert.Equal(t, "Braithwaite", obj.Field("last"))
}

func TestDefinition_NewPropagatesInitializeError(t *testing.T) {
	boom := errors.New("bad args")
	def := object.Define("fragile")
	def.Members().Set(domain.MemberInitialize, domain.Method(func(domain.Receiver, ...any) (any, error) {
		return nil, boom
	}))

	obj, err := def.New()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, obj)
}

func TestDefinition_NewRejectsDataInitialize(t *testing.T) {
	def := object.Define("broken")
	def.Members().Set(domain.MemberInitialize, "not a method")

	_, err := def.New()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotCallable)
}

func TestDefinition_MustNewPanicsOnError(t *testing.T) {
	def := object.Define("fragile")
	def.Members().Set(domain.MemberInitialize, domain.Method(func(domain.Receiver, ...any) (any, error) {
		return nil, errors.New("boom")
	}))

	require.Panics(t, func() { def.MustNew() })
}

func TestObject_Call(t *testing.T) {
	def := object.Define("counter")
	def.Members().Set("increment", domain.Method(func(self domain.Receiver, _ ...any) (any, error) {
		n, _ := self.Field("count").(int)
		self.SetField("count", n+1)
		return n + 1, nil
	}))
	def.Members().Set("label", "just data")

	obj, err := def.New()
	require.NoError(t, err)

	t.Run("invokes callable members with the object as receiver", func(t *testing.T) {
		out, err := obj.Call("increment")
		require.NoError(t, err)
		assert.Equal(t, 1, out)

		out, err = obj.Call("increment")
		require.NoError(t, err)
		assert.Equal(t, 2, out)
	})

	t.Run("missing members are reported", func(t *testing.T) {
		_, err := obj.Call("decrement")
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("data members cannot be called", func(t *testing.T) {
		_, err := obj.Call("label")
		assert.ErrorIs(t, err, domain.ErrNotCallable)
	})
}

func TestObject_HookWithoutBackingStateFailsLoudly(t *testing.T) {
	def := object.Define("author")
	// addBook assumes initialize seeded the books slice. Constructed without
	// that setup, the assertion below must panic instead of limping on.
	def.Members().Set("addBook", domain.Method(func(self domain.Receiver, args ...any) (any, error) {
		books := self.Field("books").([]string)
		books = append(books, args[0].(string))
		self.SetField("books", books)
		return len(books), nil
	}))

	obj, err := def.New()
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = obj.Call("addBook", "JavaScript Spessore")
	})
}

func TestDefinition_MembersAreLive(t *testing.T) {
	def := object.Define("person")
	obj, err := def.New()
	require.NoError(t, err)

	_, err = obj.Call("greet")
	require.ErrorIs(t, err, domain.ErrMemberNotFound)

	greeter := graft.NewBehavior("Greeter").
		Method("greet", func(domain.Receiver, ...any) (any, error) { return "hi", nil })
	def.Graft(policy.Overwrite(), greeter)

	out, err := obj.Call("greet")
	require.NoError(t, err)
	assert.Equal(t, "hi", out, "objects see members grafted after construction")
}

func TestDefinition_ChainedInitializeRunsInMixinOrder(t *testing.T) {
	var order []string

	def := object.Define("person")
	def.Members().Set(domain.MemberInitialize, domain.Method(func(self domain.Receiver, args ...any) (any, error) {
		order = append(order, "own")
		self.SetField("name", args[0])
		return nil, nil
	}))

	hasChildren := graft.NewBehavior("HasChildren").
		Init(func(self domain.Receiver, args ...any) (any, error) {
			order = append(order, "HasChildren")
			self.SetField("children", []string{})
			return nil, nil
		})
	isAuthor := graft.NewBehavior("IsAuthor").
		Init(func(self domain.Receiver, args ...any) (any, error) {
			order = append(order, "IsAuthor")
			self.SetField("books", []string{})
			return nil, nil
		})

	def.Graft(policy.Chain(), hasChildren, isAuthor)

	obj, err := def.New("Reg")
	require.NoError(t, err)

	assert.Equal(t, []string{"own", "HasChildren", "IsAuthor"}, order,
		"the target's own hook runs first, then mixins in order")
	assert.Equal(t, "Reg", obj.Field("name"), "every link receives the constructor arguments")
	assert.NotNil(t, obj.Field("children"))
	assert.NotNil(t, obj.Field("books"))
}

func TestObject_AsSource(t *testing.T) {
	def := object.Define("emitter")
	def.Members().Set("emit", domain.Method(func(domain.Receiver, ...any) (any, error) { return "ping", nil }))
	obj := def.MustNew()

	target := graft.NewTarget("listener")
	graft.Compose(target, policy.Overwrite(), obj)

	assert.True(t, target.Has("emit"))
	assert.Equal(t, "emitter", target.Origin("emit"))
}

func TestObject_RequireField(t *testing.T) {
	def := object.Define("author")
	def.Members().Set(domain.MemberInitialize, domain.Method(func(self domain.Receiver, _ ...any) (any, error) {
		self.SetField("books", []string{})
		return nil, nil
	}))
	// shelve reports the backing state explicitly instead of panicking.
	def.Members().Set("shelve", domain.Method(func(self domain.Receiver, _ ...any) (any, error) {
		o := self.(*object.Object)
		return o.RequireField("books")
	}))

	t.Run("set fields are returned", func(t *testing.T) {
		obj := def.MustNew()
		out, err := obj.Call("shelve")
		require.NoError(t, err)
		assert.Equal(t, []string{}, out)
	})

	t.Run("unset fields surface the sentinel", func(t *testing.T) {
		bare := object.Define("bare").MustNew()
		_, err := bare.RequireField("books")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFieldNotInitialized)
	})
}

func TestObject_DetachIsolatesGrafts(t *testing.T) {
	def := object.Define("robot")
	def.Members().Set("beep", domain.Method(func(domain.Receiver, ...any) (any, error) { return "beep", nil }))

	stock := def.MustNew()
	custom := def.MustNew().Detach()

	whistle := graft.NewBehavior("Whistler").
		Method("whistle", func(domain.Receiver, ...any) (any, error) { return "phweee", nil })
	graft.Compose(custom.Members(), policy.Overwrite(), whistle)

	out, err := custom.Call("whistle")
	require.NoError(t, err)
	assert.Equal(t, "phweee", out)

	_, err = stock.Call("whistle")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound, "grafting onto a detached object must not leak to siblings")

	// The shared member survives on both.
	_, err = custom.Call("beep")
	assert.NoError(t, err)
}
