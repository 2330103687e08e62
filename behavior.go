package graft

import (
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

// Behavior is a named, reusable set of members built fluently. It
// implements Source, so it can be handed straight to Compose.
//
// The same Behavior can be grafted onto any number of targets; its member
// table is read, never written, by composition.
type Behavior struct {
	name    string
	members *domain.Table
}

// NewBehavior starts an empty behavior with the given name. The name
// becomes the provenance recorded on every member the behavior installs.
func NewBehavior(name string) *Behavior {
	return &Behavior{
		name:    name,
		members: domain.NewTable().SetLabel(name),
	}
}

// Method adds a callable member. Adding an existing name replaces it.
func (b *Behavior) Method(name string, m domain.Method) *Behavior {
	b.members.Set(name, m)
	return b
}

// Data adds a plain value member.
func (b *Behavior) Data(name string, value any) *Behavior {
	b.members.Set(name, value)
	return b
}

// Init adds the initialization hook that object constructors invoke once
// after core field setup. Sugar for Method(domain.MemberInitialize, m).
func (b *Behavior) Init(m domain.Method) *Behavior {
	return b.Method(domain.MemberInitialize, m)
}

// Name implements Source.
func (b *Behavior) Name() string { return b.name }

// Members implements Source. The returned table is the behavior's live
// member set, shared by every composition that uses it.
func (b *Behavior) Members() *domain.Table { return b.members }

// Into grafts the behavior onto target under the default overwrite policy
// and returns the target for chaining.
func (b *Behavior) Into(target *domain.Table) *domain.Table {
	return Compose(target, policy.Overwrite(), b)
}
