package domain

// Member name constants shared by the engine and the object runtime.
const (
	// MemberInitialize is the conventional name of the initialization hook.
	// When present on a freshly constructed object it is invoked once, with
	// the constructor's arguments, after core field setup.
	MemberInitialize = "initialize"
)
