package cli

import (
	"fmt"
	"log/slog"

	loamadapter "github.com/aretw0/graft/pkg/adapters/loam"
	"github.com/aretw0/graft/pkg/manifest"
	"github.com/aretw0/graft/pkg/ports"
)

// OpenLoader initializes the plan loader for a project directory.
func OpenLoader(cfg Config, dir string) (*loamadapter.Loader, error) {
	loader, err := loamadapter.Open(cfg.PlansDir(dir))
	if err != nil {
		return nil, fmt.Errorf("opening plan store: %w", err)
	}
	return loader, nil
}

// LoadPlan fetches and decodes one plan, layering config defaults.
func LoadPlan(loader ports.PlanLoader, cfg Config, id string) (*manifest.Plan, error) {
	raw, err := loader.GetPlan(id)
	if err != nil {
		return nil, err
	}
	p, err := manifest.ParseYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", id, err)
	}
	applyDefaults(p, cfg)
	return p, nil
}

// ValidateAll lints every plan in the project: parse, validate, and resolve
// statically so strict plans surface member collisions. It returns the plan
// count and an AggregateError listing every problem found.
func ValidateAll(loader ports.PlanLoader, cfg Config, logger *slog.Logger) (int, error) {
	ids, err := loader.ListPlans()
	if err != nil {
		return 0, fmt.Errorf("listing plans: %w", err)
	}

	var problems []error
	for _, id := range ids {
		logger.Debug("validating plan", "plan", id)

		p, err := LoadPlan(loader, cfg, id)
		if err != nil {
			problems = append(problems, &manifest.ValidationError{Path: id, Reason: err.Error()})
			continue
		}
		if err := manifest.Validate(p); err != nil {
			for _, sub := range flatten(err) {
				problems = append(problems, &manifest.ValidationError{Path: id, Reason: sub.Error()})
			}
			continue
		}
		// Static resolution catches what structural checks cannot, like
		// duplicate members under a strict plan.
		if _, err := manifest.Resolve(p); err != nil {
			problems = append(problems, &manifest.ValidationError{Path: id, Reason: err.Error()})
		}
	}

	if len(problems) > 0 {
		return len(ids), &manifest.AggregateError{Errors: problems}
	}
	return len(ids), nil
}

func flatten(err error) []error {
	if subs := manifest.ValidationErrors(err); subs != nil {
		return subs
	}
	return []error{err}
}
