package translation

import (
	"context"
	"os"
	"testing"
)

func TestNewGemini_NoAPIKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if err.Error() != "Gemini API key not found" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGeminiTranslate_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GEMINI_API_KEY not set")
	}

	backend, err := NewGemini(context.Background(), apiKey, "")
	if err != nil {
		t.Fatalf("NewGemini() error = %v", err)
	}
	if backend.Name() != ProviderGemini {
		t.Errorf("unexpected name %q", backend.Name())
	}

	translation, err := backend.Translate(context.Background(), "Good morning")
	if err != nil {
		t.Errorf("Translate failed: %v", err)
	}
	t.Logf("Translation of 'Good morning': %s", translation)
}
