package domain

// Confidence calibration constants. They are fixed per category, not
// derived from evidence.
const (
	ConfidenceClassified   = 0.9
	ConfidenceUnclassified = 0.5
)

// ClassifiedLabel is a label together with the category of its first word.
type ClassifiedLabel struct {
	Text       string   `json:"text"       yaml:"text"`
	FirstWord  string   `json:"firstWord"  yaml:"firstWord"`
	Category   Category `json:"category"   yaml:"category"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
}

// Statistics holds per-category counts and percentages of the total.
type Statistics struct {
	VerbCount       int     `json:"verbCount"       yaml:"verbCount"`
	NounCount       int     `json:"nounCount"       yaml:"nounCount"`
	OtherCount      int     `json:"otherCount"      yaml:"otherCount"`
	VerbPercentage  float64 `json:"verbPercentage"  yaml:"verbPercentage"`
	NounPercentage  float64 `json:"nounPercentage"  yaml:"nounPercentage"`
	OtherPercentage float64 `json:"otherPercentage" yaml:"otherPercentage"`
}

// AnalysisResult is the output of one analysis run. The three buckets keep
// the input label order.
type AnalysisResult struct {
	TotalLabels int               `json:"totalLabels" yaml:"totalLabels"`
	VerbPhrases []ClassifiedLabel `json:"verbPhrases" yaml:"verbPhrases"`
	NounPhrases []ClassifiedLabel `json:"nounPhrases" yaml:"nounPhrases"`
	Others      []ClassifiedLabel `json:"others"      yaml:"others"`
	Statistics  Statistics        `json:"statistics"  yaml:"statistics"`
}

// Bucket returns the phrases classified as c.
func (r AnalysisResult) Bucket(c Category) []ClassifiedLabel {
	switch c {
	case CategoryVerb:
		return r.VerbPhrases
	case CategoryNoun:
		return r.NounPhrases
	default:
		return r.Others
	}
}

// Count returns the number of phrases classified as c.
func (s Statistics) Count(c Category) int {
	switch c {
	case CategoryVerb:
		return s.VerbCount
	case CategoryNoun:
		return s.NounCount
	default:
		return s.OtherCount
	}
}

// Percentage returns the share of phrases classified as c.
func (s Statistics) Percentage(c Category) float64 {
	switch c {
	case CategoryVerb:
		return s.VerbPercentage
	case CategoryNoun:
		return s.NounPercentage
	default:
		return s.OtherPercentage
	}
}

// FileAnalysis is the result for one diagram file in a batch run.
type FileAnalysis struct {
	Path   string         `json:"path"            yaml:"path"`
	Size   int64          `json:"size"            yaml:"size"`
	Labels []string       `json:"labels,omitempty" yaml:"labels,omitempty"`
	Result AnalysisResult `json:"result"          yaml:"result"`
}
