package engine

import (
	"fmt"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

// Source pairs a member table with the name recorded as provenance for
// every member it contributes.
type Source struct {
	Name    string
	Members *domain.Table
}

// Compose copies the members of each source, in order, onto the target and
// returns the mutated target for chaining. Member names the target does not
// hold are assigned directly; collisions go through the configured policy,
// or fail with domain.ErrDuplicateMember in strict mode.
//
// On error the target keeps the members assigned before the failure; the
// remaining sources are not applied.
func (e *Engine) Compose(target *domain.Table, sources ...Source) (*domain.Table, error) {
	if target == nil {
		target = domain.NewTable()
	}

	var composeErr error
	target.Exclusive(func() {
		composeErr = e.composeLocked(target, sources)
	})
	return target, composeErr
}

func (e *Engine) composeLocked(target *domain.Table, sources []Source) error {
	label := target.Label()
	if label == "" {
		label = "target"
	}

	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name)
	}

	// 1. Capture pre-existence before any source writes, so protection
	// policies can tell the target's own members from same-pass writes.
	pre := target.Snapshot()

	e.emitComposeStart(label, names)
	e.logger.Debug("composition started",
		"target", label, "policy", e.policy.Name(), "sources", names, "strict", e.strict)

	// 2. Apply each source's members in installation order.
	var assigned, conflicts int
	for _, src := range sources {
		if src.Members == nil {
			continue
		}

		var failure error
		src.Members.Range(func(member string, incoming any) bool {
			existing, exists := target.Get(member)
			if !exists {
				target.SetFrom(member, incoming, src.Name)
				assigned++
				e.emitMemberAssign(label, member, src.Name, domain.KindOf(incoming), domain.AssignAdded, "")
				return true
			}

			conflicts++
			displaced := target.Origin(member)

			if e.strict {
				failure = fmt.Errorf("member %q from %s already present on %s: %w",
					member, src.Name, label, domain.ErrDuplicateMember)
				return false
			}

			_, preExisting := pre[member]
			res, err := e.policy.Resolve(policy.Conflict{
				Member:      member,
				Target:      label,
				Source:      src.Name,
				Existing:    existing,
				Incoming:    incoming,
				PreExisting: preExisting,
			})
			if err != nil {
				failure = fmt.Errorf("resolving member %q from %s: %w", member, src.Name, err)
				return false
			}

			if res.Action != domain.AssignKept {
				target.SetFrom(member, res.Value, src.Name)
			}
			e.logger.Debug("member conflict resolved",
				"target", label, "member", member, "source", src.Name, "action", res.Action)
			e.emitMemberAssign(label, member, src.Name, domain.KindOf(res.Value), res.Action, displaced)
			return true
		})
		if failure != nil {
			e.logger.Debug("composition aborted", "target", label, "error", failure)
			return failure
		}
	}

	// 3. Close the pass.
	e.emitComposeEnd(label, names, assigned, conflicts)
	e.logger.Debug("composition finished",
		"target", label, "assigned", assigned, "conflicts", conflicts)
	return nil
}
