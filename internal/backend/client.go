package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/models"
)

// Client talks to the external meme backend that owns meme persistence.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// apiResponse is the backend's uniform envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// NewClientWithHTTP allows injecting a custom transport, mainly for tests.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

func (c *Client) List(ctx context.Context) ([]models.Meme, error) {
	var memes []models.Meme
	if err := c.doJSON(ctx, http.MethodGet, "/api/memes", nil, &memes); err != nil {
		return nil, fmt.Errorf("failed to list memes: %w", err)
	}
	return memes, nil
}

func (c *Client) Get(ctx context.Context, id string) (*models.Meme, error) {
	var meme models.Meme
	if err := c.doJSON(ctx, http.MethodGet, "/api/memes/"+url.PathEscape(id), nil, &meme); err != nil {
		return nil, fmt.Errorf("failed to get meme %s: %w", id, err)
	}
	return &meme, nil
}

func (c *Client) Create(ctx context.Context, meme *models.Meme) (*models.Meme, error) {
	body, err := json.Marshal(meme)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meme: %w", err)
	}

	var created models.Meme
	if err := c.doJSON(ctx, http.MethodPost, "/api/memes", bytes.NewReader(body), &created); err != nil {
		return nil, fmt.Errorf("failed to create meme: %w", err)
	}
	return &created, nil
}

// Upload sends raw image bytes as a multipart form together with tags and the
// page the image was saved from.
func (c *Client) Upload(ctx context.Context, filename string, content []byte, tags []string, source string) (*models.Meme, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write image part: %w", err)
	}
	if err := writer.WriteField("tags", strings.Join(tags, ",")); err != nil {
		return nil, fmt.Errorf("failed to write tags field: %w", err)
	}
	if source != "" {
		if err := writer.WriteField("source", source); err != nil {
			return nil, fmt.Errorf("failed to write source field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var meme models.Meme
	if err := c.send(req, &meme); err != nil {
		return nil, fmt.Errorf("failed to upload meme: %w", err)
	}
	return &meme, nil
}

// UploadURL asks the backend to fetch and store an image by URL.
func (c *Client) UploadURL(ctx context.Context, imageURL, sourceURL string, tags []string) (*models.Meme, error) {
	payload := map[string]any{
		"image_url":  imageURL,
		"source_url": sourceURL,
		"tags":       tags,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload-url payload: %w", err)
	}

	var meme models.Meme
	if err := c.doJSON(ctx, http.MethodPost, "/api/upload-url", bytes.NewReader(body), &meme); err != nil {
		return nil, fmt.Errorf("failed to upload meme by url: %w", err)
	}
	return &meme, nil
}

func (c *Client) Search(ctx context.Context, query models.SearchQuery) ([]models.Meme, error) {
	params := url.Values{}
	if query.Q != "" {
		params.Set("q", query.Q)
	}
	if query.Tag != "" {
		params.Set("tag", query.Tag)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Template != "" {
		params.Set("template", query.Template)
	}
	if query.Emotion != "" {
		params.Set("emotion", query.Emotion)
	}
	if query.Topic != "" {
		params.Set("topic", query.Topic)
	}
	if query.Sort != "" {
		params.Set("sort", query.Sort)
	}

	var memes []models.Meme
	if err := c.doJSON(ctx, http.MethodGet, "/api/search?"+params.Encode(), nil, &memes); err != nil {
		return nil, fmt.Errorf("failed to search memes: %w", err)
	}
	return memes, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/memes/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete meme %s: %w", id, err)
	}
	return nil
}

func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := c.doJSON(ctx, http.MethodGet, "/api/tags", nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("backend request failed",
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("backend rejected request: %s", envelope.Message)
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
