package loam

// PlanMetadata represents the frontmatter of a Graft plan document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys and
// stays loosely typed: manifest.Decode performs the strict conversion.
type PlanMetadata struct {
	Version   int              `json:"version" mapstructure:"version"`
	Policy    string           `json:"policy" mapstructure:"policy"`
	Strict    bool             `json:"strict" mapstructure:"strict"`
	Target    map[string]any   `json:"target" mapstructure:"target"`
	Behaviors []map[string]any `json:"behaviors" mapstructure:"behaviors"`
}

// empty reports whether the frontmatter carried no plan at all, in which
// case the document body is treated as the plan source.
func (m PlanMetadata) empty() bool {
	return m.Target == nil && len(m.Behaviors) == 0 && m.Policy == ""
}
