package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/manifest"
)

// NewLogger configures the tool logger.
// In debug mode, it writes to stderr (to separate from stdout reports).
func NewLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// applyDefaults layers project configuration under a plan's own settings.
// A blank plan policy falls back to the config policy. Project-level strict
// raises the floor: it enforces strict resolution for every plan.
func applyDefaults(p *manifest.Plan, cfg Config) {
	if strings.TrimSpace(p.Policy) == "" {
		p.Policy = cfg.Policy
	}
	if cfg.Strict {
		p.Strict = true
	}
}
