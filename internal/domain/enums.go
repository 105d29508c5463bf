package domain

// Category is the grammatical class of a label's leading word.
type Category string

const (
	CategoryVerb  Category = "verb"
	CategoryNoun  Category = "noun"
	CategoryOther Category = "other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryVerb, CategoryNoun, CategoryOther:
		return true
	}
	return false
}

// Title is the human-readable section name for the category.
func (c Category) Title() string {
	switch c {
	case CategoryVerb:
		return "Action phrases (verb-led)"
	case CategoryNoun:
		return "Object/state phrases (noun-led)"
	default:
		return "Unclassified"
	}
}

// OutputFormat selects how an analysis is rendered by the CLI.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

func (f OutputFormat) String() string { return string(f) }

func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return true
	}
	return false
}
