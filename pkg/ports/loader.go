package ports

import "context"

// PlanLoader defines how tooling retrieves plan documents.
// This allows the storage layer (Loam, FS, Memory) to be decoupled.
type PlanLoader interface {
	// GetPlan retrieves the raw bytes of a plan document by ID.
	// The bytes are a YAML (or JSON) plan for manifest.ParseYAML.
	GetPlan(id string) ([]byte, error)

	// ListPlans returns the IDs of all plan documents available, sorted.
	// This is used for introspection and visualization tooling.
	ListPlans() ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend
// changes. This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch emits the ID of each plan document that changes, until ctx is
	// cancelled or the backend closes the stream.
	Watch(ctx context.Context) (<-chan string, error)
}
