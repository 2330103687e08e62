package graft

import (
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

// Mixin binds a source to the policy that governs its application. Where a
// plain Source leaves conflict handling to each call site, a Mixin carries
// the decision with it: applying it resolves collisions the same way no
// matter who composes it.
type Mixin struct {
	source Source
	policy policy.Policy
}

// NewMixin binds src to p. A nil policy means overwrite.
func NewMixin(src Source, p policy.Policy) *Mixin {
	if p == nil {
		p = policy.Overwrite()
	}
	return &Mixin{source: src, policy: p}
}

// Name returns the underlying source's name.
func (m *Mixin) Name() string { return m.source.Name() }

// Policy returns the policy the mixin applies itself with.
func (m *Mixin) Policy() policy.Policy { return m.policy }

// Into grafts the mixin's members onto target under the mixin's own policy
// and returns the target for chaining. Like package-level Compose, this is
// the never-failing contract; wrap the source in a Composer instead when a
// custom policy's error matters.
func (m *Mixin) Into(target *domain.Table) *domain.Table {
	return Compose(target, m.policy, m.source)
}
