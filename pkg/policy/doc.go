// Package policy defines the conflict-resolution strategies used when a
// composition writes a member name the target already holds.
//
// A Policy receives a Conflict describing both values and answers with the
// member that survives. Built-in policies cover the common stances:
//
//	policy.Overwrite()   // latest source wins (the default)
//	policy.TargetWins()  // members present before the pass are protected
//	policy.FirstWins()   // whoever landed first wins, target or mixin
//	policy.Chain()       // callable collisions are linked into a pipeline
//
// Chain deserves a note: when both sides are callable it produces a new
// member that runs the earlier-installed callable first, discards its
// result, and returns the incoming callable's result. Errors from either
// link stop the pipeline. Collisions involving plain data fall back to
// overwrite semantics.
//
// Custom policies can be built from a function:
//
//	shout := policy.Custom("shout-wins", func(c policy.Conflict) (policy.Resolution, error) {
//	    if s, ok := c.Incoming.(string); ok && strings.ToUpper(s) == s {
//	        return policy.Resolution{Action: domain.AssignOverwritten, Value: c.Incoming}, nil
//	    }
//	    return policy.Resolution{Action: domain.AssignKept, Value: c.Existing}, nil
//	})
//
// Policy names round-trip through Parse, so manifests and CLI flags can
// select strategies by string.
package policy
