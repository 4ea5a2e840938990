package models

// Analysis provenance categories.
const (
	CategoryAIAnalyzed      = "ai_analyzed"
	CategoryFallback        = "fallback-analysis"
	CategoryManualExtracted = "manual_extracted"
	CategoryPatternMatched  = "pattern_matched"
)

// AnalysisResult is the externally visible outcome of one image analysis.
// It is built once per request and never mutated afterwards.
type AnalysisResult struct {
	Tags               []string `json:"tags"`
	Confidence         float64  `json:"confidence"`
	Category           string   `json:"category"`
	Description        string   `json:"description,omitempty"`
	Template           string   `json:"template,omitempty"`
	Emotions           []string `json:"emotions,omitempty"`
	Topics             []string `json:"topics,omitempty"`
	Context            string   `json:"context,omitempty"`
	SearchKeywords     []string `json:"searchKeywords,omitempty"`
	PrimaryTags        []string `json:"primaryTags,omitempty"`
	SecondaryTags      []string `json:"secondaryTags,omitempty"`
	SituationalTags    []string `json:"situationalTags,omitempty"`
	CulturalReferences []string `json:"culturalReferences,omitempty"`
}

// ClassifiedTagSet is the ephemeral result of bucketing raw tags through the
// hierarchy table. Invariants: Primary/Secondary/Situational are subsets of
// All; Template, when set, is a member of Primary.
type ClassifiedTagSet struct {
	All            []string
	Primary        []string
	Secondary      []string
	SearchKeywords []string
	Situational    []string
	Template       string
	Emotions       []string
	Topics         []string
}

// TagContext is the optional free-text context supplied alongside raw tags.
type TagContext struct {
	Description string
	Template    string
	ContextText string
}
