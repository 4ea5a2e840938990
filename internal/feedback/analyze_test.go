package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xaenox/memedb/internal/models"
)

func TestAnalyzePatternsGenericToSpecific(t *testing.T) {
	improvements := AnalyzePatterns(
		[]string{"funny", "meme"},
		[]string{"programming-bug", "debugging-life"},
	)

	assert.Equal(t, []string{"programming-bug", "debugging-life"}, improvements.Added)
	assert.Equal(t, []string{"funny", "meme"}, improvements.Removed)
	assert.Contains(t, improvements.CommonPatterns, PatternGenericToSpecific)
}

func TestAnalyzePatternsNoChange(t *testing.T) {
	improvements := AnalyzePatterns(
		[]string{"work-deadline", "stress"},
		[]string{"work-deadline", "stress"},
	)

	assert.Empty(t, improvements.Added)
	assert.Empty(t, improvements.Removed)
	assert.Empty(t, improvements.CommonPatterns)
}

func TestAnalyzePatternsTemplateCorrection(t *testing.T) {
	improvements := AnalyzePatterns(
		[]string{"distracted-boyfriend"},
		[]string{"drake-pointing"},
	)

	assert.Contains(t, improvements.CommonPatterns, PatternTemplateCorrection)
}

func TestAnalyzePatternsCulturalReference(t *testing.T) {
	improvements := AnalyzePatterns(
		[]string{"funny"},
		[]string{"funny", "gen-z-culture"},
	)

	assert.Contains(t, improvements.CommonPatterns, PatternCulturalReference)
}

func TestBuildStampsTimestamp(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	req := &models.FeedbackRequest{
		MemeID:        "m-1",
		OriginalTags:  []string{"funny"},
		CorrectedTags: []string{"work-deadline"},
		UserAction:    models.FeedbackActionReplace,
	}

	entry := Build(req, now)

	assert.Equal(t, now, entry.Timestamp)
	assert.Equal(t, "m-1", entry.MemeID)
	assert.Equal(t, []string{"work-deadline"}, entry.Improvements.Added)
	assert.Equal(t, []string{"funny"}, entry.Improvements.Removed)
}

func TestBuildInsights(t *testing.T) {
	entries := []*models.Feedback{
		{
			UserAction:   models.FeedbackActionAdd,
			Improvements: models.Improvements{Added: []string{"work-deadline", "stress"}},
		},
		{
			UserAction:   models.FeedbackActionReplace,
			Improvements: models.Improvements{Added: []string{"work-deadline"}, Removed: []string{"funny"}},
		},
	}

	insights := BuildInsights(entries)

	assert.Equal(t, 2, insights.TotalFeedback)
	assert.Equal(t, 1, insights.ActionCounts[models.FeedbackActionAdd])
	assert.Equal(t, 1, insights.ActionCounts[models.FeedbackActionReplace])
	assert.Equal(t, TagCount{Tag: "work-deadline", Count: 2}, insights.TopAddedTags[0])
	assert.Equal(t, TagCount{Tag: "funny", Count: 1}, insights.TopRemovedTags[0])
}

func TestBuildPatternsRecommendations(t *testing.T) {
	entries := []*models.Feedback{
		{Improvements: models.Improvements{CommonPatterns: []string{PatternGenericToSpecific}}},
		{Improvements: models.Improvements{CommonPatterns: []string{PatternGenericToSpecific, PatternSituationalContext}}},
	}

	patterns := BuildPatterns(entries)

	assert.Equal(t, 2, patterns.PatternCounts[PatternGenericToSpecific])
	assert.Equal(t, 1, patterns.PatternCounts[PatternSituationalContext])
	assert.Len(t, patterns.Recommendations, 2)
}

func TestBuildInsightsEmptyLog(t *testing.T) {
	insights := BuildInsights(nil)

	assert.Equal(t, 0, insights.TotalFeedback)
	assert.Empty(t, insights.TopAddedTags)
	assert.Empty(t, insights.TopRemovedTags)
}
