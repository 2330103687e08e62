package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/graft/pkg/manifest"
)

// BuildMarkdown renders a resolution as a provenance report in Markdown.
// The result is readable as-is and prettier after glamour rendering.
func BuildMarkdown(res *manifest.Resolution) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Composition: %s\n\n", res.Target))
	sb.WriteString(fmt.Sprintf("- **Policy:** %s\n", res.Policy))
	if len(res.Sources) > 0 {
		sb.WriteString(fmt.Sprintf("- **Sources:** %s\n", strings.Join(res.Sources, ", ")))
	}
	sb.WriteString(fmt.Sprintf("- **Members:** %d\n", len(res.Members)))
	sb.WriteString(fmt.Sprintf("- **Conflicts:** %d\n\n", res.Conflicts))

	sb.WriteString("| Member | Kind | Origin | Trace |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	for _, m := range res.Members {
		origin := m.Origin
		if origin == "" {
			origin = "(own)"
		}
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n", m.Name, m.Kind, origin, formatTrace(m.Steps)))
	}

	return sb.String()
}

func formatTrace(steps []manifest.TraceStep) string {
	if len(steps) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		parts = append(parts, fmt.Sprintf("%s (%s)", s.Source, s.Action))
	}
	return strings.Join(parts, ", ")
}
