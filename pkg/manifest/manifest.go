// Package manifest gives compositions a declarative form: a plan names a
// target, an ordered list of behaviors, and the policy arbitrating
// collisions. Plans are written in YAML (JSON works too), validated
// statically, resolved into a provenance report without running any user
// code, and finally bound against a method registry to produce a live
// definition.
package manifest

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// PlanVersion is the plan format this package understands.
const PlanVersion = 1

// Plan is the declarative form of one composition.
type Plan struct {
	Version   int            `json:"version" mapstructure:"version"`
	Policy    string         `json:"policy" mapstructure:"policy"`
	Strict    bool           `json:"strict" mapstructure:"strict"`
	Target    TargetSpec     `json:"target" mapstructure:"target"`
	Behaviors []BehaviorSpec `json:"behaviors" mapstructure:"behaviors"`
}

// TargetSpec declares the table being composed into, with the members it
// owns before any behavior applies.
type TargetSpec struct {
	Name    string       `json:"name" mapstructure:"name"`
	Members []MemberSpec `json:"members" mapstructure:"members"`
}

// BehaviorSpec declares one ordered source of members.
type BehaviorSpec struct {
	Name    string       `json:"name" mapstructure:"name"`
	Members []MemberSpec `json:"members" mapstructure:"members"`
}

// MemberSpec declares one member: either a literal value or a named method
// resolved from a registry at bind time. A spec with neither declares a
// member whose value is nil, which is still a real member.
type MemberSpec struct {
	Name   string `json:"name" mapstructure:"name"`
	Method string `json:"method,omitempty" mapstructure:"method"`
	Value  any    `json:"value,omitempty" mapstructure:"value"`
}

// IsCallable reports whether the spec declares a method reference.
func (m MemberSpec) IsCallable() bool { return m.Method != "" }

// Decode converts loosely-typed plan data (as produced by YAML or JSON
// parsers) into a Plan.
func Decode(raw map[string]any) (*Plan, error) {
	var p Plan
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &p,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("building plan decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &p, nil
}

// ParseYAML parses a plan document.
func ParseYAML(data []byte) (*Plan, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing plan yaml: %w", err)
	}
	return Decode(raw)
}

// SourceNames returns the behavior names in application order.
func (p *Plan) SourceNames() []string {
	out := make([]string, 0, len(p.Behaviors))
	for _, b := range p.Behaviors {
		out = append(out, b.Name)
	}
	return out
}
