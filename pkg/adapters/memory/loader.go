package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/graft/pkg/manifest"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.PlanLoader using an in-memory map.
type Loader struct {
	plans map[string][]byte
}

// NewLoader creates a new memory Loader from raw plan documents (YAML strings).
func NewLoader(data map[string]string) *Loader {
	plans := make(map[string][]byte)
	for k, v := range data {
		plans[k] = []byte(v)
	}
	return &Loader{
		plans: plans,
	}
}

// NewFromPlans creates a new memory Loader from decoded plans.
// This handles serialization automatically, improving DX for tests.
func NewFromPlans(plans map[string]*manifest.Plan) (*Loader, error) {
	data := make(map[string][]byte)
	for id, p := range plans {
		if id == "" {
			return nil, fmt.Errorf("plan missing ID")
		}
		bytes, err := yaml.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal plan %s: %w", id, err)
		}
		data[id] = bytes
	}
	return &Loader{plans: data}, nil
}

// GetPlan retrieves the raw bytes of a plan document by ID.
func (l *Loader) GetPlan(id string) ([]byte, error) {
	content, ok := l.plans[id]
	if !ok {
		return nil, fmt.Errorf("plan not found: %s", id)
	}
	return content, nil
}

// ListPlans returns all available plan IDs.
func (l *Loader) ListPlans() ([]string, error) {
	keys := make([]string, 0, len(l.plans))
	for k := range l.plans {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
