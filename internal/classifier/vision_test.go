package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mockedClassifier(t *testing.T) *VisionClassifier {
	t.Helper()

	httpClient := &http.Client{}
	httpmock.ActivateNonDefault(httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	cfg := openai.DefaultConfig("test-key")
	cfg.HTTPClient = httpClient
	return NewVisionClassifierWithConfig(cfg, "gpt-4o-mini", zap.NewNop())
}

func completionBody(t *testing.T, content string) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return string(body)
}

func TestAnalyzeImageSuccess(t *testing.T) {
	clf := mockedClassifier(t)

	aiJSON := `{"tags":["programming-bug","debugging-life","funny"],"confidence":0.95,"description":"developer fighting a bug","template":"drake-pointing","context":"daily debugging struggle"}`
	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/chat/completions",
		httpmock.NewStringResponder(200, completionBody(t, aiJSON)))

	result, err := clf.AnalyzeImage(context.Background(), "aGVsbG8=", "image/png")
	require.NoError(t, err)

	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "ai_analyzed", result.Category)
	assert.Equal(t, "drake-pointing", result.Template)
	assert.Contains(t, result.Tags, "programming-bug")
	assert.Contains(t, result.Tags, "funny")
	assert.NotEmpty(t, result.PrimaryTags)
	assert.Contains(t, result.CulturalReferences, "tech-culture")
}

func TestAnalyzeImageRecoversWrappedJSON(t *testing.T) {
	clf := mockedClassifier(t)

	content := "Here you go:\n```json\n{\"tags\":[\"work-deadline\"],\"confidence\":0.9}\n```"
	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/chat/completions",
		httpmock.NewStringResponder(200, completionBody(t, content)))

	result, err := clf.AnalyzeImage(context.Background(), "aGVsbG8=", "image/png")
	require.NoError(t, err)
	assert.Contains(t, result.Tags, "work-deadline")
}

func TestAnalyzeImageTransportError(t *testing.T) {
	clf := mockedClassifier(t)

	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/chat/completions",
		httpmock.NewStringResponder(500, `{"error":{"message":"boom"}}`))

	_, err := clf.AnalyzeImage(context.Background(), "aGVsbG8=", "image/png")
	assert.Error(t, err)
}

func TestAnalyzeImageNotConfigured(t *testing.T) {
	clf := NewVisionClassifier("", "gpt-4o-mini", 500, 0.1, 10*time.Second, zap.NewNop())

	_, err := clf.AnalyzeImage(context.Background(), "aGVsbG8=", "image/png")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestExtractText(t *testing.T) {
	clf := mockedClassifier(t)

	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/chat/completions",
		httpmock.NewStringResponder(200, completionBody(t, "THIS IS FINE")))

	text, err := clf.ExtractText(context.Background(), "aGVsbG8=", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "THIS IS FINE", text)
}

func TestExtractTextNoText(t *testing.T) {
	clf := mockedClassifier(t)

	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/chat/completions",
		httpmock.NewStringResponder(200, completionBody(t, "NO_TEXT_FOUND")))

	text, err := clf.ExtractText(context.Background(), "aGVsbG8=", "image/png")
	require.NoError(t, err)
	assert.Empty(t, text)
}
