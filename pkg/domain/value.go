package domain

// Receiver is the field-access surface a Method sees at call time. It is the
// explicit replacement for an implicit method receiver: callable members
// never close over their home object, they are handed one when invoked.
type Receiver interface {
	// Field returns the value of a named state field, or nil when absent.
	Field(name string) any

	// SetField writes a named state field on the receiver.
	SetField(name string, value any)
}

// Method is the shape of a callable member. The same Method value can be
// installed on any number of tables; binding to a receiver happens per call,
// not per installation.
type Method func(self Receiver, args ...any) (any, error)

// Kind classifies a member value for conflict resolution.
type Kind string

const (
	// KindData marks plain values (strings, numbers, structs, ...).
	KindData Kind = "data"
	// KindCallable marks Method values.
	KindCallable Kind = "callable"
)

// KindOf reports the Kind of a member value.
func KindOf(v any) Kind {
	if _, ok := v.(Method); ok {
		return KindCallable
	}
	return KindData
}

// IsCallable reports whether a member value is a Method.
func IsCallable(v any) bool {
	return KindOf(v) == KindCallable
}

// AsMethod returns v as a Method when it is callable.
func AsMethod(v any) (Method, bool) {
	m, ok := v.(Method)
	return m, ok
}
