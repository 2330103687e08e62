package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
)

// Loader adapts the Loam library to the Graft PlanLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[PlanMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[PlanMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a Loam repository at dir and wraps it in a Loader.
// Strict mode keeps numeric types consistent across adapters and ReadOnly
// avoids Loam's sandbox behavior in dev mode: plan tooling only reads.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[PlanMetadata](repo)), nil
}

// GetPlan retrieves a plan document from the Loam repository.
// Frontmatter-style documents carry the plan in their metadata; plain YAML
// documents carry it in the body. Either way the caller gets bytes that
// manifest.ParseYAML accepts.
func (l *Loader) GetPlan(id string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	if doc.Data.empty() {
		return []byte(doc.Content), nil
	}

	bytes, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan data: %w", err)
	}
	return bytes, nil
}

// ListPlans returns the IDs of all plan documents in the repository.
func (l *Loader) ListPlans() ([]string, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]bool)
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id := trimExtension(doc.ID)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids, nil
}

// Watch emits the ID of each changed document until ctx is cancelled.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	// Watch all relevant files (recursive) using the doublestar pattern
	// supported by Loam.
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				// Loam debounces on its side. Pass the changed ID up the
				// chain, respecting context cancellation.
				select {
				case ch <- evt.ID:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	switch strings.ToLower(ext) {
	case ".md", ".json", ".yaml", ".yml":
		return strings.TrimSuffix(id, ext)
	}
	return id
}
