package manifest

import (
	"fmt"

	"github.com/aretw0/graft/pkg/policy"
)

// Validate statically checks a plan: version, policy name, naming rules and
// member specs. It returns an AggregateError listing every problem found,
// or nil when the plan is sound.
func Validate(p *Plan) error {
	var errs []error

	add := func(path, reason string) {
		errs = append(errs, &ValidationError{Path: path, Reason: reason})
	}

	// 1. Format version. Zero means "current" so hand-written plans can
	// omit it.
	if p.Version != 0 && p.Version != PlanVersion {
		add("version", fmt.Sprintf("unsupported plan version %d (this build understands %d)", p.Version, PlanVersion))
	}

	// 2. Policy must be resolvable up front, not at bind time.
	if _, err := policy.Parse(p.Policy); err != nil {
		add("policy", err.Error())
	}

	// 3. Target and its own members.
	if p.Target.Name == "" {
		add("target.name", "target must be named")
	}
	validateMembers(&errs, "target", p.Target.Members)

	// 4. Behaviors: named, unique, well-formed members.
	seen := make(map[string]int)
	for i, b := range p.Behaviors {
		path := fmt.Sprintf("behaviors[%d]", i)
		if b.Name == "" {
			add(path+".name", "behavior must be named")
			continue
		}
		if prev, dup := seen[b.Name]; dup {
			add(path+".name", fmt.Sprintf("duplicate behavior name %q (first declared at behaviors[%d])", b.Name, prev))
		} else {
			seen[b.Name] = i
		}
		validateMembers(&errs, path, b.Members)
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func validateMembers(errs *[]error, owner string, members []MemberSpec) {
	names := make(map[string]int)
	for i, m := range members {
		path := fmt.Sprintf("%s.members[%d]", owner, i)
		if m.Name == "" {
			*errs = append(*errs, &ValidationError{Path: path + ".name", Reason: "member must be named"})
			continue
		}
		if prev, dup := names[m.Name]; dup {
			*errs = append(*errs, &ValidationError{
				Path:   path,
				Reason: fmt.Sprintf("duplicate member %q (first declared at %s.members[%d])", m.Name, owner, prev),
			})
		} else {
			names[m.Name] = i
		}
		if m.Method != "" && m.Value != nil {
			*errs = append(*errs, &ValidationError{
				Path:   path,
				Reason: fmt.Sprintf("member %q declares both a method reference and a literal value", m.Name),
			})
		}
	}
}
