package graft

import (
	"io"
	"log/slog"

	"github.com/aretw0/graft/internal/engine"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

// Source is anything that can contribute members to a composition.
type Source interface {
	// Name identifies the source in provenance records and events.
	Name() string
	// Members returns the source's member table. Composition only reads it.
	Members() *domain.Table
}

// TableSource adapts a raw member table into a Source.
func TableSource(name string, members *domain.Table) Source {
	return tableSource{name: name, members: members}
}

type tableSource struct {
	name    string
	members *domain.Table
}

func (s tableSource) Name() string           { return s.name }
func (s tableSource) Members() *domain.Table { return s.members }

// NewTarget returns an empty, labeled member table ready to be composed into.
func NewTarget(label string) *domain.Table {
	return domain.NewTable().SetLabel(label)
}

// Composer is the high-level entry point for the Graft library.
// It wraps the internal engine and provides a simplified API for consumers.
type Composer struct {
	engine *engine.Engine
	policy policy.Policy
	hooks  domain.Hooks
	logger *slog.Logger
	strict bool
}

// Option defines a functional option for configuring the Composer.
type Option func(*Composer)

// WithPolicy sets the conflict-resolution strategy.
// Defaults to policy.Overwrite.
func WithPolicy(p policy.Policy) Option {
	return func(c *Composer) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithHooks registers observability hooks fired during composition.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Composer) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the composer.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}

// WithStrict makes every member collision an error instead of consulting
// the policy. Use it when duplicated names indicate a bug in the behavior
// catalogue rather than an expected overlap.
func WithStrict(strict bool) Option {
	return func(c *Composer) {
		c.strict = strict
	}
}

// New initializes a new Graft Composer.
func New(opts ...Option) *Composer {
	c := &Composer{policy: policy.Overwrite()}
	for _, opt := range opts {
		opt(c)
	}

	// Ensure logger is initialized (so we don't pass nil to the engine,
	// which would overwrite its default).
	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	c.logger = c.logger.With("policy", c.policy.Name())

	c.engine = engine.New(
		engine.WithPolicy(c.policy),
		engine.WithHooks(c.hooks),
		engine.WithLogger(c.logger),
		engine.WithStrict(c.strict),
	)
	return c
}

// Policy returns the strategy this composer resolves collisions with.
func (c *Composer) Policy() policy.Policy { return c.policy }

// Compose copies each source's members onto target in order and returns the
// mutated target. A nil target is allocated. In strict mode any collision
// fails with domain.ErrDuplicateMember; otherwise errors can only come from
// a failing custom policy. On error the target keeps the members assigned
// before the failure.
func (c *Composer) Compose(target *domain.Table, sources ...Source) (*domain.Table, error) {
	return c.engine.Compose(target, engineSources(sources)...)
}

// Compose is the package-level convenience for one-off compositions. It
// applies the sources to target under p and returns the mutated target for
// chaining. Built-in policies never fail; to observe errors from strict
// mode or failing custom policies, use a Composer.
func Compose(target *domain.Table, p policy.Policy, sources ...Source) *domain.Table {
	composed, _ := New(WithPolicy(p)).Compose(target, sources...)
	return composed
}

func engineSources(sources []Source) []engine.Source {
	out := make([]engine.Source, 0, len(sources))
	for _, s := range sources {
		if s == nil {
			continue
		}
		out = append(out, engine.Source{Name: s.Name(), Members: s.Members()})
	}
	return out
}
