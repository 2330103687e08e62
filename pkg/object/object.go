package object

import (
	"fmt"
	"sync"

	"github.com/aretw0/graft/pkg/domain"
)

// Object is a constructed instance: per-object field state plus the member
// table of the definition it was built from. It implements domain.Receiver,
// so callable members read and write its fields through the explicit self
// parameter.
type Object struct {
	definition string

	mu      sync.RWMutex
	members *domain.Table
	fields  map[string]any
}

// Field implements domain.Receiver. Absent fields return nil; methods that
// assert a concrete type on an absent field panic, which is the intended
// failure mode for hooks running without their backing state.
func (o *Object) Field(name string) any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.fields[name]
}

// RequireField returns the named field, or domain.ErrFieldNotInitialized
// when no hook has set it yet. Methods that prefer an explicit error over
// the panic of a failed type assertion use this accessor.
func (o *Object) RequireField(name string) (any, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.fields[name]
	if !ok {
		return nil, fmt.Errorf("field %q on %s: %w", name, o.definition, domain.ErrFieldNotInitialized)
	}
	return v, nil
}

// SetField implements domain.Receiver.
func (o *Object) SetField(name string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields[name] = value
}

// Fields returns a copy of the object's current field state.
func (o *Object) Fields() map[string]any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		out[k] = v
	}
	return out
}

// Call invokes a callable member with the object as receiver.
func (o *Object) Call(name string, args ...any) (any, error) {
	v, ok := o.table().Get(name)
	if !ok {
		return nil, fmt.Errorf("calling %q on %s: %w", name, o.definition, domain.ErrMemberNotFound)
	}
	m, ok := domain.AsMethod(v)
	if !ok {
		return nil, fmt.Errorf("calling %q on %s: %w", name, o.definition, domain.ErrNotCallable)
	}
	return m(o, args...)
}

// Member returns a member value from the object's member table.
func (o *Object) Member(name string) (any, bool) {
	return o.table().Get(name)
}

// Detach gives the object a private copy of its member table, so grafting
// onto this object leaves the definition and its other instances untouched.
// Returns the object for chaining.
func (o *Object) Detach() *Object {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.members = o.members.Clone()
	return o
}

// Name implements graft.Source: an object can be grafted onto other targets,
// contributing its members under the definition's name.
func (o *Object) Name() string { return o.definition }

// Members implements graft.Source. For a detached object this is its private
// table; otherwise it is the definition's live table.
func (o *Object) Members() *domain.Table { return o.table() }

func (o *Object) table() *domain.Table {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.members
}
