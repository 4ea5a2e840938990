package classifier

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// ParseKind tags how much of the AI response survived parsing.
type ParseKind int

const (
	// ParseSuccess means the response parsed as the JSON we asked for.
	ParseSuccess ParseKind = iota
	// ParsePartial means a recovery strategy salvaged usable fields.
	ParsePartial
	// ParseUnrecoverable means every strategy failed.
	ParseUnrecoverable
)

// ParsedFields is the duck-typed AI response pinned down to a struct.
type ParsedFields struct {
	Tags           []string `json:"tags"`
	Confidence     float64  `json:"confidence"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Template       string   `json:"template"`
	Emotions       []string `json:"emotions"`
	Topics         []string `json:"topics"`
	Context        string   `json:"context"`
	SearchKeywords []string `json:"searchKeywords"`
}

// ParseResult is the tagged outcome of the recovery ladder.
type ParseResult struct {
	Kind   ParseKind
	Fields ParsedFields
}

var (
	codeBlockRe  = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	tagsFieldRe  = regexp.MustCompile(`"?tags"?\s*:\s*\[([^\]]*)\]`)
	descFieldRe  = regexp.MustCompile(`"?description"?\s*:\s*["']([^"']*)["']`)
	templFieldRe = regexp.MustCompile(`"template"\s*:\s*"([^"]*)"`)
	confFieldRe  = regexp.MustCompile(`"confidence"\s*:\s*([\d.]+)`)
	wordRe       = regexp.MustCompile(`\b[a-z-]+\b`)
)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "had": {}, "her": {}, "was": {},
	"one": {}, "our": {}, "out": {}, "day": {}, "get": {}, "has": {},
	"him": {}, "his": {}, "how": {}, "its": {}, "new": {}, "now": {},
	"old": {}, "see": {}, "two": {}, "way": {}, "who": {}, "your": {},
	"each": {}, "make": {}, "most": {}, "over": {}, "said": {}, "some": {},
	"time": {}, "very": {}, "what": {}, "with": {}, "have": {}, "from": {},
	"they": {}, "know": {}, "want": {}, "been": {}, "good": {}, "much": {},
	"would": {}, "there": {}, "could": {}, "where": {}, "these": {},
	"think": {}, "first": {}, "after": {}, "back": {}, "other": {},
	"many": {}, "than": {}, "then": {}, "them": {}, "well": {}, "were": {},
	"only": {}, "json": {}, "image": {}, "this": {},
}

// ParseResponse runs the recovery ladder over a raw AI completion: direct
// JSON parse, code-block extraction, brace-trim repair, regex field
// extraction, and finally keyword harvesting from free text. The first
// strategy yielding tags wins.
func ParseResponse(content string) ParseResult {
	content = strings.TrimSpace(content)
	if content == "" {
		return ParseResult{Kind: ParseUnrecoverable}
	}

	type strategy struct {
		partial bool
		run     func(string) (ParsedFields, bool)
	}
	ladder := []strategy{
		{partial: false, run: parseDirect},
		{partial: true, run: parseCodeBlock},
		{partial: true, run: parseBraceTrim},
		{partial: true, run: parseFieldRegex},
		{partial: true, run: parseKeywordHarvest},
	}

	for _, s := range ladder {
		if fields, ok := s.run(content); ok {
			kind := ParseSuccess
			if s.partial {
				kind = ParsePartial
			}
			return ParseResult{Kind: kind, Fields: fields}
		}
	}
	return ParseResult{Kind: ParseUnrecoverable}
}

func parseDirect(content string) (ParsedFields, bool) {
	return tryUnmarshal(content)
}

func parseCodeBlock(content string) (ParsedFields, bool) {
	m := codeBlockRe.FindStringSubmatch(content)
	if m == nil {
		return ParsedFields{}, false
	}
	return tryUnmarshal(m[1])
}

func parseBraceTrim(content string) (ParsedFields, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ParsedFields{}, false
	}
	return tryUnmarshal(content[start : end+1])
}

func parseFieldRegex(content string) (ParsedFields, bool) {
	fields := ParsedFields{
		Confidence: 0.7,
		Category:   "manual_extracted",
	}

	if m := tagsFieldRe.FindStringSubmatch(content); m != nil {
		for _, raw := range strings.Split(m[1], ",") {
			tag := strings.Trim(strings.TrimSpace(raw), `"' `)
			if tag != "" {
				fields.Tags = append(fields.Tags, tag)
			}
		}
	}
	if len(fields.Tags) == 0 {
		return ParsedFields{}, false
	}

	if m := descFieldRe.FindStringSubmatch(content); m != nil {
		fields.Description = m[1]
	}
	if m := templFieldRe.FindStringSubmatch(content); m != nil {
		fields.Template = m[1]
	}
	if m := confFieldRe.FindStringSubmatch(content); m != nil {
		if conf, err := strconv.ParseFloat(m[1], 64); err == nil {
			fields.Confidence = conf
		}
	}
	return fields, true
}

// parseKeywordHarvest is the last resort: pull meaningful words out of the
// free text and call them tags.
func parseKeywordHarvest(content string) (ParsedFields, bool) {
	words := wordRe.FindAllString(strings.ToLower(content), -1)

	var tags []string
	seen := make(map[string]struct{})
	for _, word := range words {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		tags = append(tags, word)
		if len(tags) == 3 {
			break
		}
	}
	if len(tags) == 0 {
		return ParsedFields{}, false
	}

	return ParsedFields{
		Tags:        tags,
		Confidence:  0.7,
		Category:    "manual_extracted",
		Description: "Extracted from AI response text",
	}, true
}

func tryUnmarshal(payload string) (ParsedFields, bool) {
	var fields ParsedFields
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return ParsedFields{}, false
	}
	if len(fields.Tags) == 0 {
		return ParsedFields{}, false
	}
	return fields, true
}
