package tagging

import (
	"regexp"

	"github.com/xaenox/memedb/internal/models"
)

// situationalBank matches tags that describe a concrete life scenario rather
// than a static hierarchy category.
var situationalBank = []*regexp.Regexp{
	regexp.MustCompile(`(?i)deadline`),
	regexp.MustCompile(`(?i)stress`),
	regexp.MustCompile(`(?i)anxiety`),
	regexp.MustCompile(`(?i)work`),
	regexp.MustCompile(`(?i)dating`),
	regexp.MustCompile(`(?i)social`),
	regexp.MustCompile(`(?i)programming`),
	regexp.MustCompile(`(?i)bug`),
	regexp.MustCompile(`(?i)remote`),
	regexp.MustCompile(`(?i)student`),
	regexp.MustCompile(`(?i)adult`),
	regexp.MustCompile(`(?i)burnout`),
	regexp.MustCompile(`(?i)procrastination`),
	regexp.MustCompile(`(?i)productivity`),
	regexp.MustCompile(`(?i)overthinking`),
	regexp.MustCompile(`(?i)self-care`),
	regexp.MustCompile(`(?i)crisis`),
	regexp.MustCompile(`(?i)nostalgia`),
	regexp.MustCompile(`(?i)hype`),
	regexp.MustCompile(`(?i)life`),
	regexp.MustCompile(`(?i)syndrome`),
	regexp.MustCompile(`(?i)fail`),
}

// IsSituational reports whether a tag matches the situational pattern bank.
func IsSituational(tag string) bool {
	for _, re := range situationalBank {
		if re.MatchString(tag) {
			return true
		}
	}
	return false
}

// orderedSet keeps insertion order while deduplicating, so classification
// output is stable for a given input.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(item string) {
	if _, ok := s.seen[item]; ok {
		return
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
}

func (s *orderedSet) has(item string) bool {
	_, ok := s.seen[item]
	return ok
}

func (s *orderedSet) slice() []string {
	return s.items
}

// Classify buckets raw tags through the hierarchy table. It is a pure
// function of its input: unknown tags are accepted as opaque strings, empty
// strings should be trimmed by the caller, and it never fails.
//
// Bucketing by hierarchy weight:
//
//	>= 0.9  template (first match wins the Template slot) + primary
//	>= 0.8  primary + emotion
//	>= 0.7  primary + topic
//	>= 0.6  secondary, plus situational when the pattern bank matches
//	other   secondary, plus situational when the pattern bank matches
//
// When ctx is non-nil the context enhancer runs and its additions are routed
// into situational or secondary by the same pattern test.
func Classify(rawTags []string, ctx *models.TagContext) models.ClassifiedTagSet {
	all := newOrderedSet()
	primary := newOrderedSet()
	secondary := newOrderedSet()
	keywords := newOrderedSet()
	emotions := newOrderedSet()
	topics := newOrderedSet()
	situational := newOrderedSet()
	template := ""

	for _, raw := range rawTags {
		tag := normalize(raw)
		if tag == "" {
			continue
		}
		all.add(tag)

		def, known := hierarchy[tag]
		switch {
		case known && def.Weight >= templateWeight:
			if template == "" {
				template = tag
			}
			primary.add(tag)
			for _, syn := range def.Synonyms {
				keywords.add(syn)
			}
		case known && def.Weight >= emotionWeight:
			primary.add(tag)
			emotions.add(tag)
			for _, syn := range def.Synonyms {
				keywords.add(syn)
			}
		case known && def.Weight >= topicWeight:
			primary.add(tag)
			topics.add(tag)
			for _, syn := range def.Synonyms {
				keywords.add(syn)
			}
		case known && def.Weight >= relatedWeight:
			secondary.add(tag)
			if IsSituational(tag) {
				situational.add(tag)
			}
			for _, syn := range def.Synonyms {
				keywords.add(syn)
			}
		default:
			secondary.add(tag)
			if IsSituational(tag) {
				situational.add(tag)
			}
		}
	}

	if ctx != nil {
		for _, tag := range Enhance(all.slice(), ctx) {
			all.add(tag)
			if IsSituational(tag) {
				situational.add(tag)
			} else {
				secondary.add(tag)
			}
		}
	}

	// Guarantee at least one primary tag whenever any tag exists.
	if len(primary.slice()) == 0 && len(all.slice()) > 0 {
		primary.add(all.slice()[0])
	}

	return models.ClassifiedTagSet{
		All:            all.slice(),
		Primary:        primary.slice(),
		Secondary:      secondary.slice(),
		SearchKeywords: keywords.slice(),
		Situational:    situational.slice(),
		Template:       template,
		Emotions:       emotions.slice(),
		Topics:         topics.slice(),
	}
}
