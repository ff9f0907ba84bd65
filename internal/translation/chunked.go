package translation

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// DefaultMaxChunkTokens is the default token budget for one model call.
const DefaultMaxChunkTokens = 512

// EstimateTokens estimates the token count for a text.
// Uses a simple heuristic: ~4 characters per token for Latin languages.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	tokens := len(text) / 4
	if tokens == 0 {
		tokens = 1
	}
	return tokens
}

// SplitSentences splits text after sentence-ending punctuation that is
// followed by whitespace. Sentences are trimmed; empty ones are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// ChunkByTokens groups sentences into chunks that don't exceed maxTokens.
// Each sentence is kept whole; an oversized sentence gets its own chunk.
func ChunkByTokens(sentences []string, maxTokens int) [][]string {
	if len(sentences) == 0 {
		return nil
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxChunkTokens
	}

	var chunks [][]string
	var current []string
	currentTokens := 0

	for _, s := range sentences {
		tokens := EstimateTokens(s)

		if tokens > maxTokens {
			if len(current) > 0 {
				chunks = append(chunks, current)
				current = nil
				currentTokens = 0
			}
			chunks = append(chunks, []string{s})
			continue
		}

		if currentTokens+tokens > maxTokens && len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
			currentTokens = 0
		}

		current = append(current, s)
		currentTokens += tokens
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// Chunked keeps each call to the wrapped backend within a token budget by
// translating long texts sentence group by sentence group.
type Chunked struct {
	backend   Backend
	maxTokens int
}

// NewChunked wraps backend with a per-call token budget
func NewChunked(backend Backend, maxTokens int) *Chunked {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxChunkTokens
	}
	return &Chunked{backend: backend, maxTokens: maxTokens}
}

// Name returns the wrapped backend's name
func (c *Chunked) Name() string {
	return c.backend.Name()
}

// Translate translates text in one call when it fits the budget, otherwise
// chunk by chunk, joining the results with a single space.
func (c *Chunked) Translate(ctx context.Context, text string) (string, error) {
	if EstimateTokens(text) <= c.maxTokens {
		return c.backend.Translate(ctx, text)
	}

	chunks := ChunkByTokens(SplitSentences(text), c.maxTokens)
	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := c.backend.Translate(ctx, strings.Join(chunk, " "))
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d failed: %w", i+1, len(chunks), err)
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, " "), nil
}
