package memes

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/models"
	"github.com/xaenox/memedb/internal/tagging"
)

type fakeBackend struct {
	uploadTags    []string
	uploadURLTags []string
	uploadErr     error
	searchResult  []models.Meme
}

func (f *fakeBackend) Upload(_ context.Context, _ string, _ []byte, tags []string, _ string) (*models.Meme, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploadTags = tags
	return &models.Meme{ID: "m-1", Tags: tags}, nil
}

func (f *fakeBackend) UploadURL(_ context.Context, _, _ string, tags []string) (*models.Meme, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploadURLTags = tags
	return &models.Meme{ID: "m-2", Tags: tags}, nil
}

func (f *fakeBackend) Search(_ context.Context, _ models.SearchQuery) ([]models.Meme, error) {
	return f.searchResult, nil
}

func (f *fakeBackend) Tags(_ context.Context) ([]string, error) {
	return []string{"funny"}, nil
}

type fakeVision struct {
	result *models.AnalysisResult
	err    error
}

func (f *fakeVision) AnalyzeImage(_ context.Context, _, _ string) (*models.AnalysisResult, error) {
	return f.result, f.err
}

func newTestService(be *fakeBackend, vision *fakeVision) *Service {
	fallback := tagging.NewFallbackAnalyzer(nil, rand.New(rand.NewSource(1)), zap.NewNop())
	svc := NewService(be, nil, fallback, zap.NewNop())
	if vision != nil {
		svc.vision = vision
	}
	return svc
}

func TestAnalyzeFallsBackOnAIFailure(t *testing.T) {
	svc := newTestService(&fakeBackend{}, &fakeVision{err: errors.New("timeout")})

	result := svc.Analyze(context.Background(), "aGVsbG8=", "image/png")

	assert.Equal(t, models.CategoryFallback, result.Category)
	assert.GreaterOrEqual(t, len(result.Tags), 3)
}

func TestAnalyzeUsesAIResult(t *testing.T) {
	svc := newTestService(&fakeBackend{}, &fakeVision{result: &models.AnalysisResult{
		Tags:     []string{"work-deadline"},
		Category: models.CategoryAIAnalyzed,
	}})

	result := svc.Analyze(context.Background(), "aGVsbG8=", "image/png")

	assert.Equal(t, models.CategoryAIAnalyzed, result.Category)
	assert.Equal(t, []string{"work-deadline"}, result.Tags)
}

func TestUploadFromBookmarkletAddsMarkerTag(t *testing.T) {
	be := &fakeBackend{}
	svc := newTestService(be, &fakeVision{result: &models.AnalysisResult{
		Tags:     []string{"programming-bug"},
		Category: models.CategoryAIAnalyzed,
	}})

	result, err := svc.UploadFromBookmarklet(context.Background(), "meme.png", []byte{0x89}, "https://reddit.com")
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Contains(t, be.uploadTags, "programming-bug")
	assert.Contains(t, be.uploadTags, "bookmarklet")
}

func TestUploadFromBookmarkletDegradesToFallback(t *testing.T) {
	be := &fakeBackend{}
	svc := newTestService(be, &fakeVision{err: errors.New("no credit")})

	result, err := svc.UploadFromBookmarklet(context.Background(), "meme.png", []byte{0x89}, "")
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Contains(t, be.uploadTags, "bookmarklet")
	assert.GreaterOrEqual(t, len(be.uploadTags), 3)
}

func TestUploadFromBookmarkletBackendFailure(t *testing.T) {
	be := &fakeBackend{uploadErr: errors.New("storage full")}
	svc := newTestService(be, &fakeVision{err: errors.New("no credit")})

	_, err := svc.UploadFromBookmarklet(context.Background(), "meme.png", []byte{0x89}, "")
	assert.Error(t, err)
}

func TestUploadFromURLDropsMarkerTagsWhenAISucceeds(t *testing.T) {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterResponder("GET", "http://img.test/meme.png",
		httpmock.NewBytesResponder(200, []byte{0x89, 0x50, 0x4e, 0x47}))

	be := &fakeBackend{}
	svc := newTestService(be, &fakeVision{result: &models.AnalysisResult{
		Tags:     []string{"drake-pointing", "programming-bug"},
		Category: models.CategoryAIAnalyzed,
	}}).WithHTTPClient(httpClient)

	result, err := svc.UploadFromURL(context.Background(),
		"http://img.test/meme.png", "https://www.reddit.com/r/memes",
		[]string{"bookmarklet", "reaction"})
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.NotContains(t, be.uploadURLTags, "bookmarklet")
	assert.Contains(t, be.uploadURLTags, "reaction")
	assert.Contains(t, be.uploadURLTags, "drake-pointing")
}

func TestUploadFromURLDownloadFailure(t *testing.T) {
	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterResponder("GET", "http://img.test/meme.png",
		httpmock.NewStringResponder(403, "forbidden"))

	be := &fakeBackend{}
	svc := newTestService(be, nil).WithHTTPClient(httpClient)

	result, err := svc.UploadFromURL(context.Background(),
		"http://img.test/meme.png", "https://www.reddit.com/r/memes",
		[]string{"reaction"})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Contains(t, be.uploadURLTags, "reaction")
	assert.Contains(t, be.uploadURLTags, "browser-extension")
	assert.Contains(t, be.uploadURLTags, "reddit.com")
	assert.Contains(t, be.uploadURLTags, "auto-tag-failed")
}

func TestUploadFromBookmarkletEmptyTagsGetsWeekdayMarker(t *testing.T) {
	be := &fakeBackend{}
	svc := newTestService(be, &fakeVision{result: &models.AnalysisResult{
		Tags:     []string{},
		Category: models.CategoryAIAnalyzed,
	}})
	svc.WithClock(func() time.Time {
		return time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC) // a Monday
	})

	result, err := svc.UploadFromBookmarklet(context.Background(), "meme.png", []byte{0x89}, "")
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, []string{"meme", "funny", "image", "monday", "bookmarklet"}, be.uploadTags)
}
