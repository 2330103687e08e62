package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/manifest"
)

// GenerateMermaid produces a Mermaid flowchart from a composition
// resolution: sources on the left, the target on the right, one edge per
// member assignment. It applies semantic styling:
//   - Target: ((Circle))
//   - Source: [[Subroutine]]
//   - Added/Overwritten: solid arrow
//   - Chained: thick arrow
//   - Kept: dotted arrow (the attempt that lost)
func GenerateMermaid(res *manifest.Resolution) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	safeTarget := sanitizeMermaidID(res.Target)
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", safeTarget, res.Target))

	for _, src := range res.Sources {
		sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", sanitizeMermaidID(src), src))
	}

	// Own members get a single annotation node instead of per-member edges.
	var own []string
	for _, m := range res.Members {
		if m.Origin == "" {
			own = append(own, m.Name)
		}
	}
	if len(own) > 0 {
		sb.WriteString(fmt.Sprintf("    %s_own[\"own: %s\"]\n", safeTarget, strings.Join(own, ", ")))
		sb.WriteString(fmt.Sprintf("    %s_own --> %s\n", safeTarget, safeTarget))
	}

	for _, m := range res.Members {
		for _, step := range m.Steps {
			safeSrc := sanitizeMermaidID(step.Source)

			var arrow string
			switch step.Action {
			case domain.AssignChained:
				arrow = fmt.Sprintf("== \"%s (chained)\" ==>", m.Name)
			case domain.AssignKept:
				arrow = fmt.Sprintf("-. \"%s (kept)\" .->", m.Name)
			case domain.AssignOverwritten:
				arrow = fmt.Sprintf("-- \"%s (overwrite)\" -->", m.Name)
			default:
				arrow = fmt.Sprintf("-- \"%s\" -->", m.Name)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeSrc, arrow, safeTarget))
		}
	}

	// Styles
	sb.WriteString("\n    %% Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("    classDef target fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef source fill:#f1f8e9,stroke:#33691e,stroke-width:1px,color:#000;\n")
	sb.WriteString(fmt.Sprintf("    class %s target;\n", safeTarget))

	seen := make(map[string]bool)
	for _, src := range res.Sources {
		safeSrc := sanitizeMermaidID(src)
		if safeSrc == "" || seen[safeSrc] {
			continue
		}
		seen[safeSrc] = true
		sb.WriteString(fmt.Sprintf("    class %s source;\n", safeSrc))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
