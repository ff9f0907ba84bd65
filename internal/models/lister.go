package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL uses the
// public OpenAI endpoint.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ChatModels returns the sorted IDs of the chat models usable for translation
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .vocabmt.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)
	return chatModels, nil
}

// isChatModel excludes audio, realtime and image variants of gpt models
func isChatModel(id string) bool {
	if !strings.Contains(id, "gpt") && !strings.Contains(id, "chat") {
		return false
	}
	for _, skip := range []string{"tts", "audio", "realtime", "transcribe", "image", "dall-e"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return true
}

// PrintModels writes the chat models to w, marking the configured one
func (l *Lister) PrintModels(ctx context.Context, w io.Writer, current string) error {
	chatModels, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Chat/Translation Models (usable as primary translator):")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		marker := " "
		if model == current {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %s\n", marker, model)
	}
	return nil
}
