package tagging

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/models"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ context.Context, _, _ string) (string, error) {
	return s.text, s.err
}

func tuesdayMorning() time.Time {
	// 2026-09-01 is a Tuesday; 08:00 is outside both hour buckets.
	return time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
}

func TestFallbackFloorAndConfidence(t *testing.T) {
	a := NewFallbackAnalyzer(nil, rand.New(rand.NewSource(1)), zap.NewNop()).
		WithClock(tuesdayMorning)

	result := a.Analyze(context.Background(), "aGVsbG8=", "image/png")

	require.NotNil(t, result)
	assert.GreaterOrEqual(t, len(result.Tags), 3)
	assert.Equal(t, 0.6, result.Confidence)
	assert.Equal(t, models.CategoryFallback, result.Category)
	assert.NotEmpty(t, result.Description)
}

func TestFallbackDeterministicWithSeededSource(t *testing.T) {
	run := func() *models.AnalysisResult {
		a := NewFallbackAnalyzer(nil, rand.New(rand.NewSource(42)), zap.NewNop()).
			WithClock(tuesdayMorning)
		return a.Analyze(context.Background(), "aGVsbG8=", "image/png")
	}

	assert.Equal(t, run().Tags, run().Tags)
}

func TestFallbackTimeTags(t *testing.T) {
	mondayWork := func() time.Time {
		return time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	}
	a := NewFallbackAnalyzer(nil, rand.New(rand.NewSource(1)), zap.NewNop()).
		WithClock(mondayWork)

	result := a.Analyze(context.Background(), "aGVsbG8=", "image/png")
	assert.Contains(t, result.Tags, "monday")
	assert.Contains(t, result.Tags, "work-hours")
}

func TestFallbackUsesExtractedText(t *testing.T) {
	a := NewFallbackAnalyzer(
		&stubExtractor{text: "this is fine, everything is on fire"},
		rand.New(rand.NewSource(1)),
		zap.NewNop(),
	).WithClock(tuesdayMorning)

	result := a.Analyze(context.Background(), "aGVsbG8=", "image/png")
	assert.Equal(t, "this-is-fine", result.Template)
	assert.Contains(t, result.Tags, "this-is-fine")
}

func TestFallbackSurvivesExtractorFailure(t *testing.T) {
	a := NewFallbackAnalyzer(
		&stubExtractor{err: errors.New("ocr down")},
		rand.New(rand.NewSource(1)),
		zap.NewNop(),
	).WithClock(tuesdayMorning)

	result := a.Analyze(context.Background(), "aGVsbG8=", "image/png")
	require.NotNil(t, result)
	assert.GreaterOrEqual(t, len(result.Tags), 3)
	assert.Equal(t, 0.6, result.Confidence)
}

func TestFallbackSizeHeuristics(t *testing.T) {
	big := make([]byte, 80000)
	for i := range big {
		big[i] = 'A'
	}

	a := NewFallbackAnalyzer(nil, rand.New(rand.NewSource(1)), zap.NewNop()).
		WithClock(tuesdayMorning)

	result := a.Analyze(context.Background(), string(big), "image/png")
	assert.Contains(t, result.Tags, "high-quality")

	small := a.Analyze(context.Background(), "aGVsbG8=", "image/png")
	assert.Contains(t, small.Tags, "low-res")
}
