package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAI translates with an OpenAI chat completion model
type OpenAI struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAI creates a new OpenAI backend. An empty model selects
// gpt-4o-mini; a non-empty baseURL targets an OpenAI compatible endpoint.
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

// Name returns the backend name
func (o *OpenAI) Name() string {
	return ProviderOpenAI
}

// Translate translates English text to Spanish
func (o *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   1024,
		Temperature: 0.3,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", fmt.Errorf("empty translation returned")
	}
	return translation, nil
}
