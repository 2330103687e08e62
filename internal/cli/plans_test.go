package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/graft/pkg/adapters/memory"
	"github.com/aretw0/graft/pkg/manifest"
)

const soundPlan = `
version: 1
target:
  name: person
behaviors:
  - name: HasGreeting
    members:
      - name: greeting
        value: hello
`

const collidingPlan = `
version: 1
target:
  name: gadget
behaviors:
  - name: A
    members:
      - name: power
        value: 1
  - name: B
    members:
      - name: power
        value: 2
`

func TestLoadPlanAppliesConfigDefaults(t *testing.T) {
	loader := memory.NewLoader(map[string]string{"person": soundPlan})
	cfg := Config{Policy: "chain", Strict: true}

	p, err := LoadPlan(loader, cfg, "person")
	require.NoError(t, err)
	assert.Equal(t, "chain", p.Policy)
	assert.True(t, p.Strict)
}

func TestLoadPlanKeepsExplicitPolicy(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"person": "version: 1\npolicy: first-wins\ntarget:\n  name: person\n",
	})
	cfg := Config{Policy: "chain"}

	p, err := LoadPlan(loader, cfg, "person")
	require.NoError(t, err)
	assert.Equal(t, "first-wins", p.Policy)
}

func TestValidateAllReportsPerPlan(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"good": soundPlan,
		"bad":  "version: 1\ntarget:\n  name: \"\"\n",
	})

	checked, err := ValidateAll(loader, DefaultConfig(), NewLogger(false))
	assert.Equal(t, 2, checked)
	require.Error(t, err)

	errs := manifest.ValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bad:")
}

func TestValidateAllCleanProject(t *testing.T) {
	loader := memory.NewLoader(map[string]string{"person": soundPlan})

	checked, err := ValidateAll(loader, DefaultConfig(), NewLogger(false))
	require.NoError(t, err)
	assert.Equal(t, 1, checked)
}

func TestValidateAllStrictFloorSurfacesCollisions(t *testing.T) {
	loader := memory.NewLoader(map[string]string{"gadget": collidingPlan})

	// The plan itself is quiet about strictness; the project config makes
	// every plan strict, so the duplicate member becomes a lint failure.
	checked, err := ValidateAll(loader, Config{Strict: true}, NewLogger(false))
	assert.Equal(t, 1, checked)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate member")
}
