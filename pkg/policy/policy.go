package policy

import (
	"fmt"

	"github.com/aretw0/graft/pkg/domain"
)

// Conflict describes a member-name collision during composition.
type Conflict struct {
	// Member is the colliding name.
	Member string
	// Target is the label of the table being composed into.
	Target string
	// Source is the name of the source supplying the incoming value.
	Source string
	// Existing is the value currently installed on the target.
	Existing any
	// Incoming is the value the source wants to install.
	Incoming any
	// PreExisting reports whether the existing member was already on the
	// target before the current composition pass began, as opposed to
	// written by an earlier source in the same pass.
	PreExisting bool
}

// Resolution is the outcome of resolving one conflict.
type Resolution struct {
	// Action classifies the outcome for observers: kept, overwritten or chained.
	Action domain.AssignAction
	// Value is the member that ends up installed on the target.
	Value any
}

// Policy decides which value survives a member-name collision.
// Implementations must be stateless: the same Policy value is reused across
// passes and targets.
type Policy interface {
	// Name returns the strategy's stable identifier (e.g. "overwrite").
	Name() string
	// Resolve picks the surviving member for one collision.
	Resolve(c Conflict) (Resolution, error)
}

// --- Built-in Policy Implementations ---

// OverwritePolicy lets the latest source win unconditionally.
type OverwritePolicy struct{}

func (p *OverwritePolicy) Name() string { return "overwrite" }

func (p *OverwritePolicy) Resolve(c Conflict) (Resolution, error) {
	return Resolution{Action: domain.AssignOverwritten, Value: c.Incoming}, nil
}

// TargetWinsPolicy protects members the target held before the composition
// pass began. Members written by earlier sources in the same pass are not
// protected and behave as under OverwritePolicy.
type TargetWinsPolicy struct{}

func (p *TargetWinsPolicy) Name() string { return "target-wins" }

func (p *TargetWinsPolicy) Resolve(c Conflict) (Resolution, error) {
	if c.PreExisting {
		return Resolution{Action: domain.AssignKept, Value: c.Existing}, nil
	}
	return Resolution{Action: domain.AssignOverwritten, Value: c.Incoming}, nil
}

// FirstWinsPolicy keeps whichever member landed first, whether it came from
// the target itself or from an earlier source in the pass.
type FirstWinsPolicy struct{}

func (p *FirstWinsPolicy) Name() string { return "first-wins" }

func (p *FirstWinsPolicy) Resolve(c Conflict) (Resolution, error) {
	return Resolution{Action: domain.AssignKept, Value: c.Existing}, nil
}

// ChainPolicy links callable collisions into a pipeline that preserves
// mix-in order: the earlier-installed callable runs first, its result is
// discarded, and the incoming callable's result is returned. An error from
// either link stops the pipeline. Collisions involving plain data fall back
// to overwrite semantics.
type ChainPolicy struct{}

func (p *ChainPolicy) Name() string { return "chain" }

func (p *ChainPolicy) Resolve(c Conflict) (Resolution, error) {
	prev, prevOK := domain.AsMethod(c.Existing)
	next, nextOK := domain.AsMethod(c.Incoming)
	if !prevOK || !nextOK {
		return Resolution{Action: domain.AssignOverwritten, Value: c.Incoming}, nil
	}

	chained := domain.Method(func(self domain.Receiver, args ...any) (any, error) {
		if _, err := prev(self, args...); err != nil {
			return nil, err
		}
		return next(self, args...)
	})
	return Resolution{Action: domain.AssignChained, Value: chained}, nil
}

// CustomPolicy applies a user-defined resolver.
type CustomPolicy struct {
	name    string
	resolve func(Conflict) (Resolution, error)
}

func (p *CustomPolicy) Name() string { return p.name }

func (p *CustomPolicy) Resolve(c Conflict) (Resolution, error) {
	return p.resolve(c)
}

// --- Factory Functions ---

// Overwrite creates the last-wins policy. It is the engine default.
func Overwrite() Policy { return &OverwritePolicy{} }

// TargetWins creates a policy protecting the target's pre-existing members.
func TargetWins() Policy { return &TargetWinsPolicy{} }

// FirstWins creates a policy keeping the earliest installed member.
func FirstWins() Policy { return &FirstWinsPolicy{} }

// Chain creates a policy linking colliding callables into a pipeline.
func Chain() Policy { return &ChainPolicy{} }

// Custom creates a policy with a user-defined resolver.
func Custom(name string, resolve func(Conflict) (Resolution, error)) Policy {
	return &CustomPolicy{name: name, resolve: resolve}
}

// Parse converts a policy name to a Policy.
// Supports the built-in strategies: "overwrite", "target-wins",
// "first-wins" and "chain".
func Parse(name string) (Policy, error) {
	switch name {
	case "overwrite", "":
		return Overwrite(), nil
	case "target-wins":
		return TargetWins(), nil
	case "first-wins":
		return FirstWins(), nil
	case "chain":
		return Chain(), nil
	default:
		return nil, fmt.Errorf("unsupported policy: %s", name)
	}
}
