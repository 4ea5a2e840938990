package feedback

import (
	"strings"
	"time"

	"github.com/xaenox/memedb/internal/models"
	"github.com/xaenox/memedb/internal/tagging"
)

// Tags too vague to be worth keeping once a user supplied better ones.
var genericTags = map[string]bool{
	"funny":    true,
	"meme":     true,
	"lol":      true,
	"humor":    true,
	"image":    true,
	"picture":  true,
	"content":  true,
	"general":  true,
	"random":   true,
	"internet": true,
}

// Pattern labels attached to a correction.
const (
	PatternGenericToSpecific  = "generic-to-specific"
	PatternTemplateCorrection = "template-correction"
	PatternSituationalContext = "situational-context"
	PatternCulturalReference  = "cultural-reference"
)

// AnalyzePatterns diffs the original and corrected tag sets and labels the
// correction with the heuristic patterns it exhibits.
func AnalyzePatterns(originalTags, correctedTags []string) models.Improvements {
	original := toSet(originalTags)
	corrected := toSet(correctedTags)

	improvements := models.Improvements{
		Added:          []string{},
		Removed:        []string{},
		CommonPatterns: []string{},
	}

	for _, tag := range correctedTags {
		if !original[tag] {
			improvements.Added = append(improvements.Added, tag)
		}
	}
	for _, tag := range originalTags {
		if !corrected[tag] {
			improvements.Removed = append(improvements.Removed, tag)
		}
	}

	if removedGeneric(improvements.Removed) && addedSpecific(improvements.Added) {
		improvements.CommonPatterns = append(improvements.CommonPatterns, PatternGenericToSpecific)
	}
	if touchesTemplate(improvements.Added) || touchesTemplate(improvements.Removed) {
		improvements.CommonPatterns = append(improvements.CommonPatterns, PatternTemplateCorrection)
	}
	if anySituational(improvements.Added) {
		improvements.CommonPatterns = append(improvements.CommonPatterns, PatternSituationalContext)
	}
	if anyCultural(improvements.Added) {
		improvements.CommonPatterns = append(improvements.CommonPatterns, PatternCulturalReference)
	}

	return improvements
}

// Build turns an incoming request into a stored feedback entry.
func Build(req *models.FeedbackRequest, now time.Time) *models.Feedback {
	return &models.Feedback{
		Timestamp:     now,
		MemeID:        req.MemeID,
		OriginalTags:  req.OriginalTags,
		CorrectedTags: req.CorrectedTags,
		UserAction:    req.UserAction,
		Description:   req.Description,
		Template:      req.Template,
		Confidence:    req.Confidence,
		Improvements:  AnalyzePatterns(req.OriginalTags, req.CorrectedTags),
	}
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}
	return set
}

func removedGeneric(removed []string) bool {
	for _, tag := range removed {
		if genericTags[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}

// A compound tag reads as more specific than a single word.
func addedSpecific(added []string) bool {
	for _, tag := range added {
		if strings.Contains(tag, "-") && !genericTags[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}

func touchesTemplate(tags []string) bool {
	for _, tag := range tags {
		if tagging.Weight(tag) >= 0.9 {
			return true
		}
	}
	return false
}

func anySituational(tags []string) bool {
	for _, tag := range tags {
		if tagging.IsSituational(tag) {
			return true
		}
	}
	return false
}

func anyCultural(tags []string) bool {
	for _, tag := range tags {
		if strings.HasSuffix(tag, "-culture") {
			return true
		}
	}
	return false
}
