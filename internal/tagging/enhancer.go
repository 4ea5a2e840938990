package tagging

import (
	"strings"

	"github.com/xaenox/memedb/internal/models"
)

// enhancementRule fires when any keyword is a substring of the combined
// context text; all tags of every firing rule are unioned.
type enhancementRule struct {
	keywords []string
	tags     []string
}

var enhancementRules = []enhancementRule{
	{keywords: []string{"deadline", "due", "urgent"}, tags: []string{"work-deadline", "time-pressure"}},
	{keywords: []string{"bug", "error", "debug", "code"}, tags: []string{"programming-bug", "debugging"}},
	{keywords: []string{"dating", "match", "swipe", "profile"}, tags: []string{"dating-app-fail", "modern-dating"}},
	{keywords: []string{"work", "office", "meeting", "boss"}, tags: []string{"office-culture", "work-life"}},
	{keywords: []string{"anxious", "nervous", "awkward"}, tags: []string{"social-anxiety", "uncomfortable"}},
	{keywords: []string{"tired", "exhausted", "sleep"}, tags: []string{"burnout", "work-life-balance"}},
	{keywords: []string{"procrastinate", "later", "tomorrow"}, tags: []string{"procrastination", "avoidance"}},
	{keywords: []string{"ai", "chatgpt", "artificial"}, tags: []string{"ai-hype", "tech-trend"}},
	{keywords: []string{"remote", "home", "wfh"}, tags: []string{"remote-work-life", "work-from-home"}},
	{keywords: []string{"productivity", "optimize", "hustle"}, tags: []string{"productivity-guilt", "hustle-culture"}},
}

// Enhance returns tags to add based on free-text context, excluding any
// already present in tags. Rule order is fixed; no rule outranks another.
func Enhance(tags []string, ctx *models.TagContext) []string {
	if ctx == nil {
		return nil
	}

	text := strings.ToLower(ctx.Description + " " + ctx.ContextText)
	existing := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		existing[t] = struct{}{}
	}

	added := newOrderedSet()
	for _, rule := range enhancementRules {
		fired := false
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				fired = true
				break
			}
		}
		if !fired {
			continue
		}
		for _, tag := range rule.tags {
			if _, ok := existing[tag]; !ok {
				added.add(tag)
			}
		}
	}
	return added.slice()
}
