package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func newChatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request body: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewOpenAI(t *testing.T) {
	backend := NewOpenAI("test-api-key", "", "")

	if backend == nil {
		t.Fatal("NewOpenAI returned nil")
	}
	if backend.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", backend.apiKey)
	}
	if backend.model != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got '%s'", backend.model)
	}
	if backend.client == nil {
		t.Error("OpenAI client not initialized")
	}
	if backend.Name() != ProviderOpenAI {
		t.Errorf("unexpected name %q", backend.Name())
	}
}

func TestOpenAITranslate_NoAPIKey(t *testing.T) {
	_, err := NewOpenAI("", "", "").Translate(context.Background(), "hello")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if err.Error() != "OpenAI API key not found" {
		t.Errorf("Expected 'OpenAI API key not found' error, got: %v", err)
	}
}

func TestOpenAITranslate(t *testing.T) {
	server := newChatServer(t, http.StatusOK, "  Por favor revise el alcance hoy.  ")
	backend := NewOpenAI("test-key", "gpt-4o-mini", server.URL+"/v1")

	got, err := backend.Translate(context.Background(), "Please review the scope today.")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "Por favor revise el alcance hoy." {
		t.Errorf("Translate() = %q", got)
	}
}

func TestOpenAITranslate_ServerError(t *testing.T) {
	server := newChatServer(t, http.StatusInternalServerError, "")
	backend := NewOpenAI("test-key", "", server.URL+"/v1")

	if _, err := backend.Translate(context.Background(), "hello"); err == nil {
		t.Error("expected error for failing API")
	}
}

func TestOpenAITranslate_EmptyText(t *testing.T) {
	got, err := NewOpenAI("test-key", "", "http://127.0.0.1:0/v1").Translate(context.Background(), "   ")
	if err != nil || got != "" {
		t.Errorf("Translate(blank) = %q, %v", got, err)
	}
}

func TestOpenAITranslate_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translation, err := NewOpenAI(apiKey, "", "").Translate(context.Background(), "Good morning")
	if err != nil {
		t.Errorf("Translate failed: %v", err)
	}
	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'Good morning': %s", translation)
}
