package server

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"codeberg.org/snonux/vocabmt/internal/service"
	"codeberg.org/snonux/vocabmt/internal/testutil"
	"codeberg.org/snonux/vocabmt/internal/translation"
	"codeberg.org/snonux/vocabmt/internal/vocabulary"
)

const testKey = "good-key"

func newTranslateRouter(backends ...translation.Backend) http.Handler {
	gate := &testutil.MockGate{ValidKeys: map[string]bool{testKey: true}}
	vocab := &testutil.MockVocabulary{Entries: []vocabulary.Entry{{Term: "SOW", Definition: "Scope of Work"}}}
	return NewTranslateRouter(service.New(gate, vocab, service.Options{}, backends...))
}

func TestTranslate(t *testing.T) {
	primary := &testutil.MockBackend{
		Translations: map[string]string{"Please send the Scope of Work.": "Por favor envíe el Scope of Work."},
	}
	router := newTranslateRouter(primary)

	rec := do(t, router, http.MethodPost, "/translate", testKey, map[string]string{"text": "Please send the SOW."})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	decode(t, rec, &got)
	if got["translation"] != "Por favor envíe el Scope of Work." {
		t.Errorf("translation = %v", got["translation"])
	}
	if got["preprocessed"] != true {
		t.Errorf("preprocessed = %v, want true", got["preprocessed"])
	}
	if got["preprocessedText"] != "Please send the Scope of Work." {
		t.Errorf("preprocessedText = %v", got["preprocessedText"])
	}
	if _, ok := got["note"]; ok {
		t.Errorf("note should be omitted, got %v", got["note"])
	}
}

func TestTranslate_NotPreprocessed(t *testing.T) {
	router := newTranslateRouter(&testutil.MockBackend{Translations: map[string]string{"Hello": "Hola"}})

	rec := do(t, router, http.MethodPost, "/translate", testKey, map[string]string{"text": "Hello"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	decode(t, rec, &got)
	if got["preprocessed"] != false {
		t.Errorf("preprocessed = %v, want false", got["preprocessed"])
	}
	if _, ok := got["preprocessedText"]; ok {
		t.Error("preprocessedText should be omitted when nothing changed")
	}
}

func TestTranslate_Errors(t *testing.T) {
	failing := &testutil.MockBackend{Err: errors.New("model overloaded")}
	broken := &testutil.MockBackend{Err: errors.New("dictionary missing")}

	tests := []struct {
		name      string
		router    http.Handler
		apiKey    string
		body      any
		wantCode  int
		wantError string
	}{
		{
			name:      "missing key",
			router:    newTranslateRouter(&testutil.MockBackend{}),
			body:      map[string]string{"text": "hello"},
			wantCode:  http.StatusUnauthorized,
			wantError: "Unauthorized",
		},
		{
			name:      "bad key",
			router:    newTranslateRouter(&testutil.MockBackend{}),
			apiKey:    "bad-key",
			body:      map[string]string{"text": "hello"},
			wantCode:  http.StatusUnauthorized,
			wantError: "Unauthorized",
		},
		{
			name:      "missing text",
			router:    newTranslateRouter(&testutil.MockBackend{}),
			apiKey:    testKey,
			body:      map[string]string{},
			wantCode:  http.StatusBadRequest,
			wantError: "Missing text to translate",
		},
		{
			name:      "empty text",
			router:    newTranslateRouter(&testutil.MockBackend{}),
			apiKey:    testKey,
			body:      map[string]string{"text": ""},
			wantCode:  http.StatusBadRequest,
			wantError: "Missing text to translate",
		},
		{
			name:      "malformed body",
			router:    newTranslateRouter(&testutil.MockBackend{}),
			apiKey:    testKey,
			body:      "not json",
			wantCode:  http.StatusBadRequest,
			wantError: "Missing text to translate",
		},
		{
			name:      "no backend",
			router:    newTranslateRouter(),
			apiKey:    testKey,
			body:      map[string]string{"text": "hello"},
			wantCode:  http.StatusServiceUnavailable,
			wantError: "Translation model is not available",
		},
		{
			name:      "both backends fail",
			router:    newTranslateRouter(failing, broken),
			apiKey:    testKey,
			body:      map[string]string{"text": "hello"},
			wantCode:  http.StatusInternalServerError,
			wantError: "Translation failed: model overloaded, Fallback also failed: dictionary missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, tt.router, http.MethodPost, "/translate", tt.apiKey, tt.body)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}

			var got map[string]string
			decode(t, rec, &got)
			if got["error"] != tt.wantError {
				t.Errorf("error = %q, want %q", got["error"], tt.wantError)
			}
		})
	}
}

func TestTranslate_MalformedBodyIsLogged(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	router := newTranslateRouter(&testutil.MockBackend{})
	rec := do(t, router, http.MethodPost, "/translate", testKey, "not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(logs.String(), "server: POST /translate: invalid body") {
		t.Errorf("log output = %q, want the bind error", logs.String())
	}
}

func TestTranslate_FallbackNote(t *testing.T) {
	router := newTranslateRouter(&testutil.MockBackend{Err: errors.New("cold")}, translation.NewDictionary())

	rec := do(t, router, http.MethodPost, "/translate", testKey, map[string]string{"text": "thank you"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	decode(t, rec, &got)
	if got["translation"] != "gracias" || got["note"] != "Used fallback translator" {
		t.Errorf("response = %v", got)
	}
}

func TestTranslateAPIHealthAndCORS(t *testing.T) {
	router := newTranslateRouter(&testutil.MockBackend{})

	rec := do(t, router, http.MethodGet, "/api", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "Translation API is running!" {
		t.Errorf("GET /api = %d %q", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodOptions, "/translate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "X-API-Key, Content-Type")
	preflight := httptest.NewRecorder()
	router.ServeHTTP(preflight, req)

	if preflight.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("preflight missing Access-Control-Allow-Origin, status %d", preflight.Code)
	}
}
