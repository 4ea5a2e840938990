package models

import "time"

// User actions accepted by the feedback endpoint.
const (
	FeedbackActionAdd     = "add"
	FeedbackActionRemove  = "remove"
	FeedbackActionReplace = "replace"
)

// FeedbackRequest is the body of POST /api/meme-feedback.
type FeedbackRequest struct {
	MemeID        string   `json:"memeId"`
	OriginalTags  []string `json:"originalTags"`
	CorrectedTags []string `json:"correctedTags"`
	UserAction    string   `json:"userAction"`
	Description   string   `json:"description,omitempty"`
	Template      string   `json:"template,omitempty"`
	Confidence    float64  `json:"confidence,omitempty"`
}

// Improvements is the derived diff between original and corrected tags.
type Improvements struct {
	Added          []string `json:"added"`
	Removed        []string `json:"removed"`
	CommonPatterns []string `json:"common_patterns"`
}

// Feedback is one stored correction, timestamped at ingestion.
type Feedback struct {
	Timestamp     time.Time    `json:"timestamp"`
	MemeID        string       `json:"memeId"`
	OriginalTags  []string     `json:"originalTags"`
	CorrectedTags []string     `json:"correctedTags"`
	UserAction    string       `json:"userAction"`
	Description   string       `json:"description,omitempty"`
	Template      string       `json:"template,omitempty"`
	Confidence    float64      `json:"confidence,omitempty"`
	Improvements  Improvements `json:"improvements"`
}
