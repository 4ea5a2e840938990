package tagging

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/models"
)

// TextExtractor is the optional OCR-ish collaborator used by the fallback
// analyzer. Implementations are best-effort; an error just means no text.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageBase64, mimeType string) (string, error)
}

// tagBundle is one curated pick for images we know nothing about.
type tagBundle struct {
	tags        []string
	confidence  float64
	description string
}

var fallbackBundles = []tagBundle{
	{tags: []string{"reaction", "relatable"}, confidence: 0.8, description: "General reaction meme"},
	{tags: []string{"funny", "humor"}, confidence: 0.75, description: "Humorous content"},
	{tags: []string{"mood", "feeling"}, confidence: 0.7, description: "Mood expression"},
	{tags: []string{"work", "office"}, confidence: 0.65, description: "Work-related meme"},
	{tags: []string{"gaming", "gamer"}, confidence: 0.6, description: "Gaming content"},
	{tags: []string{"programming", "code"}, confidence: 0.6, description: "Programming humor"},
	{tags: []string{"wholesome", "positive"}, confidence: 0.7, description: "Feel-good content"},
	{tags: []string{"cursed", "weird"}, confidence: 0.6, description: "Strange content"},
}

var popularTags = []string{"meme", "internet", "viral", "social"}

// Fallback result constants. Confidence is fixed regardless of which branch
// fired, signalling "not AI-verified".
const (
	fallbackConfidence  = 0.6
	fallbackDescription = "Generated using smart pattern analysis (AI unavailable)"
	minFallbackTags     = 3

	highQualityBytes = 50000
	lowResBytes      = 10000
)

// FallbackAnalyzer produces a tag set without the external AI classifier,
// from time-of-day context, best-effort text extraction and a constrained
// random pick among curated bundles. The random source is injected so tests
// can pin the selection.
type FallbackAnalyzer struct {
	extractor TextExtractor
	logger    *zap.Logger
	now       func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewFallbackAnalyzer(extractor TextExtractor, rng *rand.Rand, logger *zap.Logger) *FallbackAnalyzer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FallbackAnalyzer{
		extractor: extractor,
		logger:    logger,
		now:       time.Now,
		rng:       rng,
	}
}

// WithClock overrides the time source, for tests.
func (a *FallbackAnalyzer) WithClock(now func() time.Time) *FallbackAnalyzer {
	a.now = now
	return a
}

// Analyze builds a fallback analysis for an image we could not classify
// through the AI path. It cannot fail.
func (a *FallbackAnalyzer) Analyze(ctx context.Context, imageBase64, mimeType string) *models.AnalysisResult {
	tags := newOrderedSet()
	now := a.now()

	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		tags.add("weekend")
	case time.Monday:
		tags.add("monday")
	case time.Friday:
		tags.add("friday")
	}
	if hour := now.Hour(); hour >= 9 && hour <= 17 {
		tags.add("work-hours")
	} else if hour >= 18 && hour <= 23 {
		tags.add("evening")
	}

	var extractedText string
	if a.extractor != nil {
		text, err := a.extractor.ExtractText(ctx, imageBase64, mimeType)
		if err != nil {
			a.logger.Warn("text extraction failed, continuing without text", zap.Error(err))
		} else {
			extractedText = text
		}
	}

	for _, tag := range AnalyzeTextContext(extractedText) {
		tags.add(tag)
	}

	template, hasTemplate := DetectTemplate(extractedText)
	if hasTemplate {
		tags.add(template)
	}

	cultural := DetectCulturalReferences(extractedText)
	for _, tag := range cultural {
		tags.add(tag)
	}
	for _, tag := range DetectTrendingContext(extractedText, now) {
		tags.add(tag)
	}

	// Rough size from base64 length; larger files tend to be higher quality.
	sizeInBytes := len(imageBase64) * 3 / 4
	if sizeInBytes > highQualityBytes {
		tags.add("high-quality")
	} else if sizeInBytes > 0 && sizeInBytes < lowResBytes {
		tags.add("low-res")
	}

	a.mu.Lock()
	bundle := fallbackBundles[a.rng.Intn(len(fallbackBundles))]
	popular := popularTags[a.rng.Intn(len(popularTags))]
	a.mu.Unlock()

	for _, tag := range bundle.tags {
		tags.add(tag)
	}
	tags.add(popular)

	if len(tags.slice()) < minFallbackTags {
		tags.add("general")
		tags.add("content")
	}

	var situational []string
	for _, tag := range tags.slice() {
		if IsSituational(tag) {
			situational = append(situational, tag)
		}
	}

	return &models.AnalysisResult{
		Tags:               tags.slice(),
		Confidence:         fallbackConfidence,
		Category:           models.CategoryFallback,
		Description:        fallbackDescription,
		Template:           template,
		CulturalReferences: cultural,
		SituationalTags:    situational,
	}
}
