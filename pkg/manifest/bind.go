package manifest

import (
	"fmt"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/object"
	"github.com/aretw0/graft/pkg/policy"
	"github.com/aretw0/graft/pkg/registry"
)

// Bind materializes a plan: method references are resolved through reg,
// behaviors become live sources, and the fully composed definition is
// returned, ready to construct objects.
func Bind(p *Plan, reg *registry.Registry, opts ...graft.Option) (*object.Definition, error) {
	pol, err := policy.Parse(p.Policy)
	if err != nil {
		return nil, err
	}

	def := object.Define(p.Target.Name)
	if err := installMembers(def.Members(), "target", p.Target.Members, reg); err != nil {
		return nil, err
	}

	sources := make([]graft.Source, 0, len(p.Behaviors))
	for _, spec := range p.Behaviors {
		b := graft.NewBehavior(spec.Name)
		if err := installMembers(b.Members(), fmt.Sprintf("behavior %s", spec.Name), spec.Members, reg); err != nil {
			return nil, err
		}
		sources = append(sources, b)
	}

	composeOpts := append([]graft.Option{
		graft.WithPolicy(pol),
		graft.WithStrict(p.Strict),
	}, opts...)

	composer := graft.New(composeOpts...)
	if _, err := composer.Compose(def.Members(), sources...); err != nil {
		return nil, fmt.Errorf("binding plan %q: %w", p.Target.Name, err)
	}
	return def, nil
}

func installMembers(table *domain.Table, owner string, members []MemberSpec, reg *registry.Registry) error {
	for _, m := range members {
		if !m.IsCallable() {
			table.Set(m.Name, m.Value)
			continue
		}
		impl, err := reg.Resolve(m.Method)
		if err != nil {
			return fmt.Errorf("%s member %q: %w", owner, m.Name, err)
		}
		table.Set(m.Name, impl)
	}
	return nil
}
