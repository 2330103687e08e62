package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventComposeStart EventType = "compose_start"
	EventMemberAssign EventType = "member_assign"
	EventComposeEnd   EventType = "compose_end"
)

// AssignAction describes what the engine did with an incoming member.
type AssignAction string

const (
	// AssignAdded means the member name was free and the value was installed.
	AssignAdded AssignAction = "added"
	// AssignOverwritten means an existing member was replaced.
	AssignOverwritten AssignAction = "overwritten"
	// AssignKept means the existing member won and the incoming value was discarded.
	AssignKept AssignAction = "kept"
	// AssignChained means existing and incoming callables were linked into one.
	AssignChained AssignAction = "chained"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Target    string    `json:"target"`
}

// ComposeEvent brackets one composition pass over a target table.
type ComposeEvent struct {
	EventBase
	Policy  string   `json:"policy"`
	Sources []string `json:"sources"`

	// Assigned counts members newly added to the target; Conflicts counts
	// the collisions the pass resolved. Both are filled in on compose_end.
	Assigned  int `json:"assigned,omitempty"`
	Conflicts int `json:"conflicts,omitempty"`
}

// AssignEvent records the fate of one incoming member.
type AssignEvent struct {
	EventBase
	Member string       `json:"member"`
	Source string       `json:"source"`
	Kind   Kind         `json:"kind"`
	Action AssignAction `json:"action"`

	// Displaced is the origin of the member that previously held the name,
	// when the assignment replaced, kept or chained over one.
	Displaced string `json:"displaced,omitempty"`
}

// Hooks defines callbacks for composition observability. All hooks are
// optional and run synchronously on the composing goroutine.
type Hooks struct {
	OnComposeStart func(*ComposeEvent)
	OnMemberAssign func(*AssignEvent)
	OnComposeEnd   func(*ComposeEvent)
}
