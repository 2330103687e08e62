/*
Package graft is a behavior-composition engine: it merges ordered sets of
members (mixins) into a target member table under a pluggable
conflict-resolution policy.

It implements "composition over inheritance" as a first-class operation,
separating behavior definitions (Sources) from the objects that receive them
(Tables) and from the rules that arbitrate collisions (Policies).

# Concept

Graft treats an object's capabilities as a flat, ordered table of named
members. Behaviors contribute members to that table; when two behaviors
claim the same name, the composition policy in effect decides which one
survives, whether the target's own definition is protected, or whether
colliding callables are chained into a pipeline. Provenance is recorded for
every member, so a composed table can always explain where each capability
came from.

# Key Features

  - Deterministic Composition: Sources apply in order; the same inputs
    always produce the same table.
  - Pluggable Policies: Overwrite, TargetWins, FirstWins, Chain, or custom
    resolvers.
  - Initialization Protocol: Constructed objects run their "initialize"
    member once, with the constructor's arguments, after field setup.
  - Provenance: Every member knows which behavior installed it.

# Usage

Build behaviors fluently, compose them onto a target, then construct
objects from the composed definition.

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/graft"
		"github.com/aretw0/graft/pkg/domain"
		"github.com/aretw0/graft/pkg/policy"
	)

	func main() {
		hasName := graft.NewBehavior("HasName").
			Init(func(self domain.Receiver, args ...any) (any, error) {
				if len(args) > 0 {
					self.SetField("name", args[0])
				}
				return nil, nil
			}).
			Method("name", func(self domain.Receiver, _ ...any) (any, error) {
				return self.Field("name"), nil
			})

		person := graft.NewTarget("person")
		graft.Compose(person, policy.Chain(), hasName)

		composer := graft.New(graft.WithPolicy(policy.TargetWins()))
		if _, err := composer.Compose(person); err != nil {
			log.Fatal(err)
		}

		fmt.Println(person.Names())
	}
*/
package graft
