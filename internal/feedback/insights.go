package feedback

import (
	"sort"

	"github.com/xaenox/memedb/internal/models"
)

// TagCount is one entry of a ranked tag frequency list.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Insights summarizes the whole feedback log.
type Insights struct {
	TotalFeedback  int            `json:"totalFeedback"`
	ActionCounts   map[string]int `json:"actionCounts"`
	TopAddedTags   []TagCount     `json:"topAddedTags"`
	TopRemovedTags []TagCount     `json:"topRemovedTags"`
}

// Patterns aggregates the per-correction pattern labels and derives
// recommendations for the analysis prompt.
type Patterns struct {
	PatternCounts   map[string]int `json:"patternCounts"`
	Recommendations []string       `json:"recommendations"`
}

const topTagLimit = 10

// BuildInsights computes aggregate statistics over all stored feedback.
func BuildInsights(entries []*models.Feedback) Insights {
	insights := Insights{
		TotalFeedback:  len(entries),
		ActionCounts:   map[string]int{},
		TopAddedTags:   []TagCount{},
		TopRemovedTags: []TagCount{},
	}

	added := map[string]int{}
	removed := map[string]int{}
	for _, entry := range entries {
		insights.ActionCounts[entry.UserAction]++
		for _, tag := range entry.Improvements.Added {
			added[tag]++
		}
		for _, tag := range entry.Improvements.Removed {
			removed[tag]++
		}
	}

	insights.TopAddedTags = rankTags(added, topTagLimit)
	insights.TopRemovedTags = rankTags(removed, topTagLimit)
	return insights
}

// BuildPatterns counts pattern labels across all feedback and turns the
// dominant ones into recommendations.
func BuildPatterns(entries []*models.Feedback) Patterns {
	patterns := Patterns{
		PatternCounts:   map[string]int{},
		Recommendations: []string{},
	}

	for _, entry := range entries {
		for _, pattern := range entry.Improvements.CommonPatterns {
			patterns.PatternCounts[pattern]++
		}
	}

	if patterns.PatternCounts[PatternGenericToSpecific] > 0 {
		patterns.Recommendations = append(patterns.Recommendations,
			"Prefer specific compound tags over generic ones like 'funny' or 'meme'")
	}
	if patterns.PatternCounts[PatternTemplateCorrection] > 0 {
		patterns.Recommendations = append(patterns.Recommendations,
			"Double-check meme template identification before tagging")
	}
	if patterns.PatternCounts[PatternSituationalContext] > 0 {
		patterns.Recommendations = append(patterns.Recommendations,
			"Include situational context tags describing when the meme applies")
	}
	if patterns.PatternCounts[PatternCulturalReference] > 0 {
		patterns.Recommendations = append(patterns.Recommendations,
			"Capture cultural reference tags when the meme leans on shared context")
	}

	return patterns
}

// rankTags sorts by count descending, breaking ties alphabetically so the
// output is stable across runs.
func rankTags(counts map[string]int, limit int) []TagCount {
	ranked := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		ranked = append(ranked, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
