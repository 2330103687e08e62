// Package engine implements the composition pass: walking source member
// tables in order, resolving collisions through the configured policy, and
// emitting lifecycle events. The public entry points live in the root graft
// package; this package works on raw tables so it stays free of facade types.
package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/policy"
)

// Engine applies sources to targets under one policy configuration.
// The zero value is not usable; construct with New.
type Engine struct {
	policy policy.Policy
	hooks  domain.Hooks
	logger *slog.Logger
	strict bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the conflict-resolution strategy. Defaults to
// policy.Overwrite, matching plain last-wins extension.
func WithPolicy(p policy.Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithHooks registers observability callbacks fired during composition.
func WithHooks(h domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStrict makes any member collision an error. The policy is not
// consulted in strict mode.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		policy: policy.Overwrite(),
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the strategy the engine resolves collisions with.
func (e *Engine) Policy() policy.Policy { return e.policy }

// Strict reports whether collisions are treated as errors.
func (e *Engine) Strict() bool { return e.strict }

func (e *Engine) emitComposeStart(target string, sources []string) {
	if e.hooks.OnComposeStart == nil {
		return
	}
	e.hooks.OnComposeStart(&domain.ComposeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventComposeStart, Target: target},
		Policy:    e.policy.Name(),
		Sources:   sources,
	})
}

func (e *Engine) emitComposeEnd(target string, sources []string, assigned, conflicts int) {
	if e.hooks.OnComposeEnd == nil {
		return
	}
	e.hooks.OnComposeEnd(&domain.ComposeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventComposeEnd, Target: target},
		Policy:    e.policy.Name(),
		Sources:   sources,
		Assigned:  assigned,
		Conflicts: conflicts,
	})
}

func (e *Engine) emitMemberAssign(target, member, source string, kind domain.Kind, action domain.AssignAction, displaced string) {
	if e.hooks.OnMemberAssign == nil {
		return
	}
	e.hooks.OnMemberAssign(&domain.AssignEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventMemberAssign, Target: target},
		Member:    member,
		Source:    source,
		Kind:      kind,
		Action:    action,
		Displaced: displaced,
	})
}
