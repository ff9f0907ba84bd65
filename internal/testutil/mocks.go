package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"codeberg.org/snonux/vocabmt/internal/vocabulary"
)

// MockBackend mocks a translation backend
type MockBackend struct {
	BackendName  string
	Translations map[string]string
	Err          error

	mu    sync.Mutex
	calls []string
}

// Name returns the configured backend name
func (m *MockBackend) Name() string {
	if m.BackendName == "" {
		return "mock"
	}
	return m.BackendName
}

// Translate records the call and returns the canned translation
func (m *MockBackend) Translate(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if out, ok := m.Translations[text]; ok {
		return out, nil
	}
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Calls returns the texts passed to Translate
func (m *MockBackend) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockGate mocks the user service API key check
type MockGate struct {
	ValidKeys map[string]bool
	Err       error

	mu    sync.Mutex
	calls []string
}

// Validate accepts only keys listed in ValidKeys
func (m *MockGate) Validate(ctx context.Context, apiKey string) error {
	m.mu.Lock()
	m.calls = append(m.calls, apiKey)
	m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if !m.ValidKeys[apiKey] {
		return fmt.Errorf("invalid API key")
	}
	return nil
}

// Calls returns the keys passed to Validate
func (m *MockGate) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockVocabulary mocks the vocabulary service
type MockVocabulary struct {
	Entries []vocabulary.Entry
	Err     error

	mu    sync.Mutex
	calls []string
}

// Fetch returns the configured entries
func (m *MockVocabulary) Fetch(ctx context.Context, apiKey string) ([]vocabulary.Entry, error) {
	m.mu.Lock()
	m.calls = append(m.calls, apiKey)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Entries, nil
}

// Calls returns the keys passed to Fetch
func (m *MockVocabulary) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// NewUserServer starts a fake user service accepting apiKey on /validate-key
func NewUserServer(apiKey string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/validate-key" || r.Header.Get("X-API-Key") != apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"valid": true, "user_id": 1, "username": "test"})
	}))
}

// NewVocabularyServer starts a fake vocabulary service serving entries on /translations
func NewVocabularyServer(apiKey string, entries []vocabulary.Entry) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translations" || r.Header.Get("X-API-Key") != apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}))
}
