package tagging

import (
	"regexp"
	"strings"
	"time"
)

// templateRule pairs a set of text patterns with the template they indicate.
// The first rule with any matching pattern wins.
type templateRule struct {
	patterns []*regexp.Regexp
	template string
}

var templateRules = []templateRule{
	{
		patterns: compile(`reject.*accept`, `no.*yes`, `bad.*good`, `old.*new`, `before.*after`),
		template: "drake-pointing",
	},
	{
		patterns: compile(`this is fine`, `everything.*fine`, `fire.*fine`, `burning.*okay`, `chaos.*fine`),
		template: "this-is-fine",
	},
	{
		patterns: compile(`surprised`, `shocked`, `unexpected`, `who.*thought`, `obvious.*surprise`),
		template: "surprised-pikachu",
	},
	{
		patterns: compile(`change my mind`, `prove me wrong`, `convince me`, `debate me`, `fight me`),
		template: "change-my-mind",
	},
	{
		patterns: compile(`small brain.*big brain`, `stupid.*smart`, `basic.*advanced`, `level.*intelligence`, `evolution.*thought`),
		template: "expanding-brain",
	},
	{
		patterns: compile(`distracted`, `tempted`, `looking at`, `attracted to`, `cheating`),
		template: "distracted-boyfriend",
	},
	{
		patterns: compile(`hard choice`, `difficult decision`, `can't decide`, `both.*good`, `impossible.*choose`),
		template: "two-buttons",
	},
	{
		patterns: compile(`always has been`, `wait.*all`, `realize.*always`, `never was`, `betrayal`),
		template: "always-has-been",
	},
	{
		patterns: compile(`stonks`, `investment`, `stock.*up`, `profit`, `money.*go.*up`),
		template: "stonks",
	},
	{
		patterns: compile(`yelling.*confused`, `argument.*cat`, `misunderstanding`, `talking past`, `not listening`),
		template: "woman-yelling-at-cat",
	},
	{
		patterns: compile(`agree`, `unity`, `handshake`, `common ground`, `alliance`),
		template: "epic-handshake",
	},
	{
		patterns: compile(`doomer`, `bloomer`, `coomer`, `wojak`, `feels.*man`),
		template: "wojak",
	},
	{
		patterns: compile(`chad.*virgin`, `alpha.*beta`, `strong.*weak`, `confident.*insecure`, `vs`),
		template: "chad-vs-virgin",
	},
}

// keywordTemplateRule is the plain-substring fallback tier of template
// detection, consulted only when no regex rule matched.
type keywordTemplateRule struct {
	keywords []string
	template string
}

var keywordTemplateRules = []keywordTemplateRule{
	{keywords: []string{"bernie", "mittens", "sitting"}, template: "bernie-mittens"},
	{keywords: []string{"salt", "bae", "chef"}, template: "salt-bae"},
	{keywords: []string{"coffin", "dance", "funeral"}, template: "coffin-dance"},
	{keywords: []string{"leonardo", "dicaprio", "pointing"}, template: "leonardo-dicaprio"},
	{keywords: []string{"monkey", "puppet", "side eye"}, template: "monkey-puppet"},
	{keywords: []string{"arthur", "fist", "clenched"}, template: "arthur-fist"},
	{keywords: []string{"pepe", "frog", "rare"}, template: "pepe"},
	{keywords: []string{"gigachad", "alpha", "perfect"}, template: "gigachad"},
	{keywords: []string{"soyjak", "soy", "crying"}, template: "soyjak"},
}

// DetectTemplate infers a meme template from extracted text. Absence of a
// template is a valid outcome, not an error.
func DetectTemplate(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)

	for _, rule := range templateRules {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.template, true
			}
		}
	}
	for _, rule := range keywordTemplateRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.template, true
			}
		}
	}
	return "", false
}

// culturalRule labels text that references a recognizable internet subculture.
type culturalRule struct {
	pattern *regexp.Regexp
	ref     string
}

var culturalRules = []culturalRule{
	{pattern: regexp.MustCompile(`(?i)gen-?z|zoomer|tiktok`), ref: "gen-z-culture"},
	{pattern: regexp.MustCompile(`(?i)millennial|avocado|toast`), ref: "millennial-culture"},
	{pattern: regexp.MustCompile(`(?i)\bai\b|chatgpt|artificial`), ref: "ai-culture"},
	{pattern: regexp.MustCompile(`(?i)remote|wfh|zoom`), ref: "remote-work-culture"},
	{pattern: regexp.MustCompile(`(?i)dating|\bapp\b|swipe|match`), ref: "dating-app-culture"},
	{pattern: regexp.MustCompile(`(?i)programming|code|developer`), ref: "tech-culture"},
	{pattern: regexp.MustCompile(`(?i)social|media|instagram|twitter`), ref: "social-media-culture"},
	{pattern: regexp.MustCompile(`(?i)crypto|nft|blockchain`), ref: "crypto-culture"},
	{pattern: regexp.MustCompile(`(?i)startup|entrepreneur|hustle`), ref: "startup-culture"},
	{pattern: regexp.MustCompile(`(?i)student|college|university`), ref: "student-culture"},
}

const maxCulturalRefs = 3

// DetectCulturalReferences collects every matching cultural label from the
// text, truncated to three in rule-declaration order.
func DetectCulturalReferences(text string) []string {
	if text == "" {
		return nil
	}
	var refs []string
	for _, rule := range culturalRules {
		if rule.pattern.MatchString(text) {
			refs = append(refs, rule.ref)
			if len(refs) == maxCulturalRefs {
				break
			}
		}
	}
	return refs
}

type seasonalRule struct {
	months   []time.Month
	keywords []string
	tags     []string
}

var seasonalRules = []seasonalRule{
	{months: []time.Month{time.December, time.January}, keywords: []string{"christmas", "new year", "holiday", "winter"}, tags: []string{"holiday-season", "winter-vibes"}},
	{months: []time.Month{time.February}, keywords: []string{"valentine", "love", "heart", "romantic"}, tags: []string{"valentines-day", "love-season"}},
	{months: []time.Month{time.March, time.April}, keywords: []string{"spring", "easter", "bloom", "fresh"}, tags: []string{"spring-season", "renewal"}},
	{months: []time.Month{time.June, time.July, time.August}, keywords: []string{"summer", "vacation", "beach", "hot"}, tags: []string{"summer-vibes", "vacation-mode"}},
	{months: []time.Month{time.September, time.October}, keywords: []string{"fall", "autumn", "school", "back to"}, tags: []string{"back-to-school", "autumn-vibes"}},
	{months: []time.Month{time.October}, keywords: []string{"halloween", "spooky", "scary", "costume"}, tags: []string{"halloween-season", "spooky-vibes"}},
	{months: []time.Month{time.November}, keywords: []string{"thanksgiving", "gratitude", "family"}, tags: []string{"thanksgiving-season", "family-time"}},
}

type yearlyRule struct {
	years    []int
	keywords []string
	tags     []string
}

var yearlyRules = []yearlyRule{
	{years: []int{2024, 2025, 2026}, keywords: []string{"ai revolution", "chatgpt", "artificial intelligence"}, tags: []string{"ai-era", "current-trends"}},
	{years: []int{2024, 2025, 2026}, keywords: []string{"climate crisis", "extreme weather", "sustainability"}, tags: []string{"climate-awareness", "environmental"}},
	{years: []int{2024, 2025, 2026}, keywords: []string{"remote work", "hybrid", "digital nomad"}, tags: []string{"future-work", "post-pandemic"}},
	{years: []int{2024, 2025, 2026}, keywords: []string{"gen alpha", "gen z", "generational"}, tags: []string{"generational-shift", "youth-culture"}},
}

type weekdayRule struct {
	day      time.Weekday
	keywords []string
	tags     []string
}

var weekdayRules = []weekdayRule{
	{day: time.Monday, keywords: []string{"monday", "week start", "back to work"}, tags: []string{"monday-blues", "week-start"}},
	{day: time.Friday, keywords: []string{"friday", "weekend", "tgif"}, tags: []string{"friday-feeling", "weekend-prep"}},
	{day: time.Sunday, keywords: []string{"sunday", "sunday scaries", "tomorrow"}, tags: []string{"sunday-scaries", "weekend-end"}},
}

const maxTrendingTags = 2

// DetectTrendingContext unions seasonal, yearly and day-of-week rule matches
// against the current date and text, truncated to two in declaration order.
func DetectTrendingContext(text string, now time.Time) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	tags := newOrderedSet()

	for _, rule := range seasonalRules {
		if !containsMonth(rule.months, now.Month()) {
			continue
		}
		if containsAny(lower, rule.keywords) {
			for _, tag := range rule.tags {
				tags.add(tag)
			}
		}
	}

	for _, rule := range yearlyRules {
		if !containsYear(rule.years, now.Year()) {
			continue
		}
		if containsAny(lower, rule.keywords) {
			for _, tag := range rule.tags {
				tags.add(tag)
			}
		}
	}

	for _, rule := range weekdayRules {
		if rule.day == now.Weekday() || containsAny(lower, rule.keywords) {
			for _, tag := range rule.tags {
				tags.add(tag)
			}
		}
	}

	result := tags.slice()
	if len(result) > maxTrendingTags {
		result = result[:maxTrendingTags]
	}
	return result
}

func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(expr)
	}
	return res
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func containsMonth(months []time.Month, m time.Month) bool {
	for _, month := range months {
		if month == m {
			return true
		}
	}
	return false
}

func containsYear(years []int, y int) bool {
	for _, year := range years {
		if year == y {
			return true
		}
	}
	return false
}
