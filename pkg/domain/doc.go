/*
Package domain contains the core domain models for the Graft composition
engine.

It defines the fundamental entities of behavior composition, such as member
Tables, callable Methods, and the lifecycle events emitted while a
composition runs. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Table: An ordered, named collection of members (the target of a composition).
  - Method: The callable member shape, invoked with an explicit receiver.
  - Receiver: The minimal field-access surface a Method sees at call time.
  - Hooks: Optional observation callbacks fired during composition.
*/
package domain
