package domain

import "sync"

// memberEntry holds one installed member together with its provenance.
type memberEntry struct {
	value  any
	origin string
}

// Table is an ordered collection of named members. It is the unit the
// composition engine mutates: targets, mixin member sets and object
// definitions are all Tables underneath.
//
// Individual operations are safe for concurrent use. A whole composition
// pass is serialized separately through Exclusive, so readers of single
// members never block for the duration of a pass.
type Table struct {
	mu    sync.RWMutex
	label string
	order []string
	items map[string]memberEntry

	// composeMu serializes whole composition passes over this table.
	composeMu sync.Mutex
}

// NewTable returns an empty member table.
func NewTable() *Table {
	return &Table{items: make(map[string]memberEntry)}
}

// SetLabel names the table for logs, events and provenance reports.
func (t *Table) SetLabel(label string) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.label = label
	return t
}

// Label returns the table's display name, or "" when unnamed.
func (t *Table) Label() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.label
}

// Set installs a member as the table's own (origin-less) definition.
// Setting an existing name replaces the value but keeps its position.
func (t *Table) Set(name string, value any) *Table {
	return t.SetFrom(name, value, "")
}

// SetFrom installs a member recording the source it came from. An empty
// origin marks the member as the table's own.
func (t *Table) SetFrom(name string, value any, origin string) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[name]; !ok {
		t.order = append(t.order, name)
	}
	t.items[name] = memberEntry{value: value, origin: origin}
	return t
}

// Get returns a member value by name.
func (t *Table) Get(name string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.items[name]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Has reports whether a member with the given name is installed.
func (t *Table) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.items[name]
	return ok
}

// Origin returns the recorded provenance of a member: the name of the
// source that installed it, or "" for the table's own members.
func (t *Table) Origin(name string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.items[name].origin
}

// Names returns member names in installation order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of installed members.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Range calls fn for each member in installation order until fn returns
// false. The iteration works on a snapshot, so fn may mutate the table.
func (t *Table) Range(fn func(name string, value any) bool) {
	t.mu.RLock()
	names := make([]string, len(t.order))
	copy(names, t.order)
	t.mu.RUnlock()

	for _, name := range names {
		v, ok := t.Get(name)
		if !ok {
			continue
		}
		if !fn(name, v) {
			return
		}
	}
}

// Delete removes a member. It reports whether the member existed.
func (t *Table) Delete(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.items[name]; !ok {
		return false
	}
	delete(t.items, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Clone returns an independent copy of the table. Member values are shared,
// not deep-copied: Methods and data values are treated as immutable.
func (t *Table) Clone() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := &Table{
		label: t.label,
		order: make([]string, len(t.order)),
		items: make(map[string]memberEntry, len(t.items)),
	}
	copy(c.order, t.order)
	for k, v := range t.items {
		c.items[k] = v
	}
	return c
}

// Snapshot returns the set of member names present right now. The engine
// captures one before a composition pass so that protection policies can
// distinguish pre-existing members from ones written earlier in the same
// pass.
func (t *Table) Snapshot() map[string]struct{} {
	t.mu.RLock()
	defer t.mu.RUnlock()
	set := make(map[string]struct{}, len(t.order))
	for _, n := range t.order {
		set[n] = struct{}{}
	}
	return set
}

// Exclusive runs fn while holding the table's composition lock, so at most
// one composition is in flight for this table at a time. Member operations
// inside fn use the regular member lock and stay deadlock-free.
func (t *Table) Exclusive(fn func()) {
	t.composeMu.Lock()
	defer t.composeMu.Unlock()
	fn()
}
