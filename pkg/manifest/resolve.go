package manifest

import (
	"fmt"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

// Resolution reports where every member of the composed target would come
// from, without binding any real implementation.
type Resolution struct {
	Target    string             `json:"target"`
	Policy    string             `json:"policy"`
	Sources   []string           `json:"sources,omitempty"`
	Conflicts int                `json:"conflicts"`
	Members   []MemberResolution `json:"members"`
}

// MemberResolution traces one member name through the pass.
type MemberResolution struct {
	Name string      `json:"name"`
	Kind domain.Kind `json:"kind"`
	// Origin is the final provenance; "" means the target's own.
	Origin string      `json:"origin,omitempty"`
	Steps  []TraceStep `json:"steps,omitempty"`
}

// TraceStep is one source's attempt on the member name.
type TraceStep struct {
	Source string              `json:"source"`
	Action domain.AssignAction `json:"action"`
}

// placeholder stands in for registry methods during static resolution, so
// kind-sensitive policies see the members a bound plan would produce.
var placeholder = domain.Method(func(domain.Receiver, ...any) (any, error) { return nil, nil })

// Resolve simulates the plan's composition with placeholder members and
// returns the provenance report. No user code runs. In strict plans a
// member collision surfaces here as domain.ErrDuplicateMember.
func Resolve(p *Plan) (*Resolution, error) {
	pol, err := policy.Parse(p.Policy)
	if err != nil {
		return nil, err
	}

	steps := make(map[string][]TraceStep)
	var conflicts int
	hooks := domain.Hooks{
		OnMemberAssign: func(ev *domain.AssignEvent) {
			steps[ev.Member] = append(steps[ev.Member], TraceStep{Source: ev.Source, Action: ev.Action})
		},
		OnComposeEnd: func(ev *domain.ComposeEvent) {
			conflicts = ev.Conflicts
		},
	}

	target := specTable(p.Target.Name, p.Target.Members)
	sources := make([]graft.Source, 0, len(p.Behaviors))
	for _, b := range p.Behaviors {
		sources = append(sources, graft.TableSource(b.Name, specTable(b.Name, b.Members)))
	}

	composer := graft.New(
		graft.WithPolicy(pol),
		graft.WithHooks(hooks),
		graft.WithStrict(p.Strict),
	)
	if _, err := composer.Compose(target, sources...); err != nil {
		return nil, fmt.Errorf("resolving plan %q: %w", p.Target.Name, err)
	}

	res := &Resolution{
		Target:    p.Target.Name,
		Policy:    pol.Name(),
		Sources:   p.SourceNames(),
		Conflicts: conflicts,
	}
	for _, name := range target.Names() {
		v, _ := target.Get(name)
		res.Members = append(res.Members, MemberResolution{
			Name:   name,
			Kind:   domain.KindOf(v),
			Origin: target.Origin(name),
			Steps:  steps[name],
		})
	}
	return res, nil
}

func specTable(label string, members []MemberSpec) *domain.Table {
	t := domain.NewTable().SetLabel(label)
	for _, m := range members {
		if m.IsCallable() {
			t.Set(m.Name, placeholder)
		} else {
			t.Set(m.Name, m.Value)
		}
	}
	return t
}
