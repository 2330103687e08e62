package object

import (
	"fmt"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

// Definition is a named member table that objects are constructed from.
// It satisfies graft.Source, so a definition can itself be grafted onto
// other targets.
type Definition struct {
	name    string
	members *domain.Table
}

// Define starts an empty definition with the given name.
func Define(name string) *Definition {
	return &Definition{
		name:    name,
		members: domain.NewTable().SetLabel(name),
	}
}

// Name implements graft.Source.
func (d *Definition) Name() string { return d.name }

// Members implements graft.Source. The returned table is live: composing
// more behaviors onto it is visible to every object already constructed
// from this definition.
func (d *Definition) Members() *domain.Table { return d.members }

// Graft composes the sources onto the definition under p and returns the
// definition for chaining.
func (d *Definition) Graft(p policy.Policy, sources ...graft.Source) *Definition {
	graft.Compose(d.members, p, sources...)
	return d
}

// New constructs an object from the definition. Construction allocates the
// object's field storage and then, when the definition holds an
// "initialize" member, invokes it exactly once with the constructor's
// arguments. The hook's return value is discarded; its error aborts
// construction.
func (d *Definition) New(args ...any) (*Object, error) {
	obj := &Object{
		definition: d.name,
		members:    d.members,
		fields:     make(map[string]any),
	}

	init, ok := obj.members.Get(domain.MemberInitialize)
	if !ok {
		return obj, nil
	}
	hook, ok := domain.AsMethod(init)
	if !ok {
		return nil, fmt.Errorf("initialize on %s: %w", d.name, domain.ErrNotCallable)
	}
	if _, err := hook(obj, args...); err != nil {
		return nil, fmt.Errorf("initializing %s: %w", d.name, err)
	}
	return obj, nil
}

// MustNew is New that panics on construction errors. Intended for
// package-level prototypes and tests.
func (d *Definition) MustNew(args ...any) *Object {
	obj, err := d.New(args...)
	if err != nil {
		panic(err)
	}
	return obj
}
