package tagging

import "strings"

// trendingTags backfills suggestions when the hierarchy has little to offer.
var trendingTags = []string{
	"relatable", "mood", "funny", "reaction", "wholesome", "cursed",
	"blessed", "cringe", "based", "sus", "meta", "deep-fried",
	"low-effort", "high-quality", "original", "template",
}

// legacy keyword groups kept from before the hierarchy carried related tags.
type suggestionGroup struct {
	triggers    []string
	suggestions []string
}

var suggestionGroups = []suggestionGroup{
	{triggers: []string{"cat", "dog", "animal"}, suggestions: []string{"cute", "pet", "wholesome"}},
	{triggers: []string{"funny", "humor", "lol"}, suggestions: []string{"comedy", "hilarious", "joke"}},
	{triggers: []string{"gaming", "game"}, suggestions: []string{"gamer", "videogame", "esports"}},
	{triggers: []string{"work", "office", "job"}, suggestions: []string{"relatable", "monday", "stress"}},
}

const maxSuggestions = 3

// SuggestAdditionalTags proposes up to three tags related to the existing
// set, drawing on hierarchy synonyms/relations, legacy keyword groups and
// finally the trending pool.
func SuggestAdditionalTags(existing []string) []string {
	existingSet := make(map[string]struct{}, len(existing))
	for _, tag := range existing {
		existingSet[normalize(tag)] = struct{}{}
	}

	suggestions := newOrderedSet()
	addNew := func(tag string) {
		if _, ok := existingSet[tag]; !ok {
			suggestions.add(tag)
		}
	}

	for _, tag := range existing {
		lower := normalize(tag)

		if def, ok := hierarchy[lower]; ok {
			for _, syn := range def.Synonyms {
				addNew(syn)
			}
			for _, rel := range def.Related {
				addNew(rel)
			}
		}

		for _, group := range suggestionGroups {
			for _, trigger := range group.triggers {
				if strings.Contains(lower, trigger) {
					for _, s := range group.suggestions {
						addNew(s)
					}
					break
				}
			}
		}
	}

	if len(suggestions.slice()) < 2 {
		for _, tag := range trendingTags {
			if len(suggestions.slice()) >= maxSuggestions {
				break
			}
			addNew(tag)
		}
	}

	result := suggestions.slice()
	if len(result) > maxSuggestions {
		result = result[:maxSuggestions]
	}
	return result
}

// QuickSuggestions returns high-weight hierarchy tags plus a few trending
// picks, for one-tap tag selection. Order is stable across calls.
func QuickSuggestions() []string {
	var high []string
	for name, def := range hierarchy {
		if def.Weight >= emotionWeight {
			high = append(high, name)
		}
	}
	sortByWeightThenName(high)
	if len(high) > 10 {
		high = high[:10]
	}
	return append(high, trendingTags[:5]...)
}
