package memes

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/backend"
	"github.com/xaenox/memedb/internal/classifier"
	"github.com/xaenox/memedb/internal/models"
	"github.com/xaenox/memedb/internal/tagging"
)

// Marker tags injected by browser-side save paths. They are dropped when the
// AI produced a real tag set and kept as provenance otherwise.
var genericMarkerTags = map[string]bool{
	"bookmarklet":       true,
	"web-saved":         true,
	"browser-extension": true,
}

const downloadUserAgent = "Mozilla/5.0 (compatible; MemeDB/1.0)"

// Backend is the slice of the backend client the service needs.
type Backend interface {
	Upload(ctx context.Context, filename string, content []byte, tags []string, source string) (*models.Meme, error)
	UploadURL(ctx context.Context, imageURL, sourceURL string, tags []string) (*models.Meme, error)
	Search(ctx context.Context, query models.SearchQuery) ([]models.Meme, error)
	Tags(ctx context.Context) ([]string, error)
}

var _ Backend = (*backend.Client)(nil)

// Service wires analysis and backend persistence together. It is shared by
// the HTTP handlers and the Telegram bot.
type Service struct {
	backend  Backend
	vision   classifier.Classifier
	fallback *tagging.FallbackAnalyzer
	http     *http.Client
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(be Backend, vision classifier.Classifier, fallback *tagging.FallbackAnalyzer, logger *zap.Logger) *Service {
	return &Service{
		backend:  be,
		vision:   vision,
		fallback: fallback,
		http:     &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithHTTPClient overrides the download transport, for tests.
func (s *Service) WithHTTPClient(client *http.Client) *Service {
	s.http = client
	return s
}

// Analyze runs the AI classifier and degrades to pattern analysis on any
// failure. It never returns an error.
func (s *Service) Analyze(ctx context.Context, imageBase64, mimeType string) *models.AnalysisResult {
	if s.vision != nil {
		result, err := s.vision.AnalyzeImage(ctx, imageBase64, mimeType)
		if err == nil {
			return result
		}
		s.logger.Warn("ai analysis failed, using fallback", zap.Error(err))
	}
	return s.fallback.Analyze(ctx, imageBase64, mimeType)
}

// UploadResult reports what was saved and how the tags were obtained.
type UploadResult struct {
	Meme     *models.Meme
	Analysis *models.AnalysisResult
	Degraded bool
}

// UploadFromBookmarklet stores an image dragged into the bookmarklet overlay.
// Tagging is best-effort: when even the fallback path yields nothing useful
// the image is still saved under generic marker tags.
func (s *Service) UploadFromBookmarklet(ctx context.Context, filename string, content []byte, source string) (*UploadResult, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(content)
	mimeType := http.DetectContentType(content)

	analysis := s.Analyze(ctx, imageBase64, mimeType)

	tags := analysis.Tags
	degraded := analysis.Category != models.CategoryAIAnalyzed
	if len(tags) == 0 {
		tags = []string{"meme", "funny", "image", strings.ToLower(s.now().Weekday().String())}
		degraded = true
	}
	tags = appendUnique(tags, "bookmarklet")

	meme, err := s.backend.Upload(ctx, filename, content, tags, source)
	if err != nil {
		return nil, fmt.Errorf("backend upload failed: %w", err)
	}
	return &UploadResult{Meme: meme, Analysis: analysis, Degraded: degraded}, nil
}

// UploadFromURL downloads the image to analyze it, then asks the backend to
// store it by URL. A failed download still saves the meme, tagged with
// provenance markers instead of content tags.
func (s *Service) UploadFromURL(ctx context.Context, imageURL, sourceURL string, manualTags []string) (*UploadResult, error) {
	content, mimeType, err := s.downloadImage(ctx, imageURL)
	if err != nil {
		s.logger.Warn("image download failed, uploading with provenance tags only",
			zap.String("url", imageURL), zap.Error(err))

		tags := append([]string{}, manualTags...)
		tags = appendUnique(tags, "browser-extension")
		if domain := hostOf(sourceURL); domain != "" {
			tags = appendUnique(tags, domain)
		}
		tags = appendUnique(tags, "auto-tag-failed")

		meme, uploadErr := s.backend.UploadURL(ctx, imageURL, sourceURL, tags)
		if uploadErr != nil {
			return nil, fmt.Errorf("backend upload failed: %w", uploadErr)
		}
		return &UploadResult{Meme: meme, Degraded: true}, nil
	}

	imageBase64 := base64.StdEncoding.EncodeToString(content)
	analysis := s.Analyze(ctx, imageBase64, mimeType)

	tags := append([]string{}, analysis.Tags...)
	aiSucceeded := analysis.Category == models.CategoryAIAnalyzed
	for _, tag := range manualTags {
		if aiSucceeded && genericMarkerTags[strings.ToLower(tag)] {
			continue
		}
		tags = appendUnique(tags, tag)
	}

	meme, err := s.backend.UploadURL(ctx, imageURL, sourceURL, tags)
	if err != nil {
		return nil, fmt.Errorf("backend upload failed: %w", err)
	}
	return &UploadResult{Meme: meme, Analysis: analysis, Degraded: !aiSucceeded}, nil
}

// Search proxies a query to the backend.
func (s *Service) Search(ctx context.Context, query models.SearchQuery) ([]models.Meme, error) {
	return s.backend.Search(ctx, query)
}

// Tags proxies the backend tag list.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	return s.backend.Tags(ctx)
}

func (s *Service) downloadImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create download request: %w", err)
	}
	// Some image hosts reject requests without a browser user agent.
	req.Header.Set("User-Agent", downloadUserAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image body: %w", err)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}
	return content, mimeType, nil
}

func appendUnique(tags []string, tag string) []string {
	for _, existing := range tags {
		if existing == tag {
			return tags
		}
	}
	return append(tags, tag)
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
