package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xaenox/memedb/internal/models"
	"github.com/xaenox/memedb/internal/tagging"
)

// Classifier analyzes meme images through an external vision model.
type Classifier interface {
	AnalyzeImage(ctx context.Context, imageBase64, mimeType string) (*models.AnalysisResult, error)
}

// ErrNotConfigured is returned when no API credential is available; callers
// are expected to degrade to the fallback analyzer.
var ErrNotConfigured = errors.New("vision classifier: api key not configured")

const analysisPrompt = `You are a meme culture expert. Analyze this meme image with deep contextual understanding.

Priorities:
1. Read ALL text overlays, captions and any text in the image.
2. Identify the specific meme template and its cultural meaning.
3. What real-life situation, feeling or experience does this represent?
4. Note internet culture, trending topics or social references.
5. Capture the deeper emotion beyond surface level.

Generate specific, searchable tags someone would actually type:
situations like "programming-bug" or "work-deadline", compound contexts like
"monday-motivation", cultural moments like "ai-hype", emotional contexts like
"imposter-syndrome". Avoid generic tags such as "funny", "meme" or "image"
unless they add specific context.

CRITICAL: respond ONLY with valid JSON, no extra text or formatting:
{
  "tags": ["programming-bug", "debugging-life", "developer-struggle"],
  "confidence": 0.95,
  "category": "ai_analyzed",
  "description": "short description of the meme",
  "template": "drake-pointing",
  "emotions": ["frustration", "relief"],
  "topics": ["programming", "developer-culture"],
  "context": "the specific life situation this meme captures",
  "searchKeywords": ["coding", "bug-fixes", "programming-humor"]
}`

const extractTextPrompt = `Extract ALL text visible in this image: main text overlays, captions, speech bubbles, any readable text, watermarks or signatures.

Return only the extracted text, nothing else. If no text is found, return "NO_TEXT_FOUND".`

// VisionClassifier calls a vision-capable chat model and pushes the raw tag
// output through the local classification pipeline.
type VisionClassifier struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
	logger      *zap.Logger
}

func NewVisionClassifier(apiKey, model string, maxTokens int, temperature float64, timeout time.Duration, logger *zap.Logger) *VisionClassifier {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &VisionClassifier{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     timeout,
		logger:      logger,
	}
}

// NewVisionClassifierWithConfig builds a classifier from an explicit client
// config, used by tests to point at a mock transport.
func NewVisionClassifierWithConfig(cfg openai.ClientConfig, model string, logger *zap.Logger) *VisionClassifier {
	return &VisionClassifier{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   500,
		temperature: 0.1,
		timeout:     10 * time.Second,
		logger:      logger,
	}
}

// AnalyzeImage runs the vision model over the image and classifies the
// returned tags. Any failure (missing credential, transport error, timeout,
// unrecoverable response) is returned as an error so the caller can fall
// back to pattern analysis.
func (c *VisionClassifier) AnalyzeImage(ctx context.Context, imageBase64, mimeType string) (*models.AnalysisResult, error) {
	if c.client == nil {
		return nil, ErrNotConfigured
	}

	content, err := c.complete(ctx, analysisPrompt, imageBase64, mimeType, c.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("vision analysis request: %w", err)
	}

	parsed := ParseResponse(content)
	if parsed.Kind == ParseUnrecoverable {
		c.logger.Warn("ai response unrecoverable after all parse strategies",
			zap.String("response", content))
		return nil, errors.New("vision classifier: no usable fields in response")
	}
	if parsed.Kind == ParsePartial {
		c.logger.Info("ai response recovered partially", zap.Strings("tags", parsed.Fields.Tags))
	}

	fields := parsed.Fields
	classified := tagging.Classify(fields.Tags, &models.TagContext{
		Description: fields.Description,
		Template:    fields.Template,
		ContextText: fields.Context,
	})

	confidence := fields.Confidence
	if confidence == 0 {
		confidence = 0.8
	}
	category := fields.Category
	if category == "" {
		category = models.CategoryAIAnalyzed
	}
	template := fields.Template
	if template == "" {
		template = classified.Template
	}
	emotions := fields.Emotions
	if len(emotions) == 0 {
		emotions = classified.Emotions
	}
	topics := fields.Topics
	if len(topics) == 0 {
		topics = classified.Topics
	}

	cultural := tagging.DetectCulturalReferences(strings.Join(fields.Tags, " ") + " " + fields.Description)

	return &models.AnalysisResult{
		Tags:               classified.All,
		Confidence:         confidence,
		Category:           category,
		Description:        fields.Description,
		Template:           template,
		Emotions:           emotions,
		Topics:             topics,
		Context:            fields.Context,
		SearchKeywords:     classified.SearchKeywords,
		PrimaryTags:        classified.Primary,
		SecondaryTags:      classified.Secondary,
		SituationalTags:    classified.Situational,
		CulturalReferences: cultural,
	}, nil
}

// ExtractText asks the model to read any text out of the image. Best-effort:
// the fallback analyzer treats an error the same as empty text.
func (c *VisionClassifier) ExtractText(ctx context.Context, imageBase64, mimeType string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	content, err := c.complete(ctx, extractTextPrompt, imageBase64, mimeType, 200)
	if err != nil {
		return "", fmt.Errorf("text extraction request: %w", err)
	}

	text := strings.TrimSpace(content)
	if text == "NO_TEXT_FOUND" {
		return "", nil
	}
	return text, nil
}

func (c *VisionClassifier) complete(ctx context.Context, prompt, imageBase64, mimeType string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: float32(c.temperature),
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    toDataURL(imageBase64, mimeType),
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// toDataURL accepts either a bare base64 payload or a full data URL.
func toDataURL(imageBase64, mimeType string) string {
	if strings.HasPrefix(imageBase64, "data:") {
		return imageBase64
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + imageBase64
}
