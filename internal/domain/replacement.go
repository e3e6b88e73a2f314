package domain

// Replacement is one topic spliced in place of a replaced topic.
type Replacement struct {
	Slug            string             `yaml:"slug"`
	TranslatedTitle string             `yaml:"translatedTitle"`
	Description     string             `yaml:"description,omitempty"`
	Children        []ReplacementChild `yaml:"children"`
}

// ReplacementChild is either a reference to an existing source node (no
// Children) or an intermediate topic grouping the referenced grandchildren.
type ReplacementChild struct {
	Slug            string   `yaml:"slug"`
	TranslatedTitle string   `yaml:"translatedTitle,omitempty"`
	Description     string   `yaml:"description,omitempty"`
	Children        []string `yaml:"children,omitempty"`
}

// IsNested reports whether the child defines an intermediate topic. A
// present but empty children list still counts.
func (c ReplacementChild) IsNested() bool {
	return c.Children != nil
}
