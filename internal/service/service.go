package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"codeberg.org/snonux/vocabmt/internal/language"
	"codeberg.org/snonux/vocabmt/internal/translation"
	"codeberg.org/snonux/vocabmt/internal/vocabulary"
)

// FallbackNote is set on results served by a backend other than the first
const FallbackNote = "Used fallback translator"

// DefaultRequestTimeout bounds each call to the user and vocabulary services
const DefaultRequestTimeout = 10 * time.Second

// Gate validates API keys
type Gate interface {
	Validate(ctx context.Context, apiKey string) error
}

// VocabularySource returns the vocabulary of the caller owning apiKey
type VocabularySource interface {
	Fetch(ctx context.Context, apiKey string) ([]vocabulary.Entry, error)
}

// Request is one translation request
type Request struct {
	Text       string
	Credential string
}

// Result is the outcome of a successful translation request
type Result struct {
	Translation      string `json:"translation"`
	Preprocessed     bool   `json:"preprocessed"`
	PreprocessedText string `json:"preprocessedText,omitempty"`
	UsedFallback     bool   `json:"-"`
	Note             string `json:"note,omitempty"`
	Backend          string `json:"backend,omitempty"`
	SourceLanguage   string `json:"sourceLanguage,omitempty"`
}

// Options tune a Service
type Options struct {
	RequestTimeout time.Duration
	DetectLanguage bool
}

// Service handles translation requests
type Service struct {
	gate     Gate
	vocab    VocabularySource
	backends []translation.Backend
	options  Options
}

// New creates a Service. Backends are tried in the given order; nil
// backends are skipped, so an unconfigured primary can be passed as nil.
func New(gate Gate, vocab VocabularySource, options Options, backends ...translation.Backend) *Service {
	if options.RequestTimeout <= 0 {
		options.RequestTimeout = DefaultRequestTimeout
	}

	s := &Service{
		gate:    gate,
		vocab:   vocab,
		options: options,
	}
	for _, b := range backends {
		if b != nil {
			s.backends = append(s.backends, b)
		}
	}
	return s
}

// Backends returns the names of the configured backends in order
func (s *Service) Backends() []string {
	names := make([]string, len(s.backends))
	for i, b := range s.backends {
		names[i] = b.Name()
	}
	return names
}

// Handle authenticates, preprocesses and translates a request
func (s *Service) Handle(ctx context.Context, req Request) (*Result, error) {
	if err := s.authenticate(ctx, req.Credential); err != nil {
		return nil, err
	}

	if len(s.backends) == 0 {
		return nil, ErrBackendUnavailable
	}

	if req.Text == "" {
		return nil, ErrBadRequest
	}

	entries := s.fetchVocabulary(ctx, req.Credential)
	preprocessed := vocabulary.Preprocess(req.Text, entries)

	result := &Result{Preprocessed: preprocessed != req.Text}
	if result.Preprocessed {
		result.PreprocessedText = preprocessed
	}
	if s.options.DetectLanguage {
		result.SourceLanguage = language.SourceCode(req.Text)
	}

	var errs []error
	for i, backend := range s.backends {
		out, err := backend.Translate(ctx, preprocessed)
		if err != nil {
			log.Printf("translation: %s failed: %v", backend.Name(), err)
			errs = append(errs, err)
			continue
		}

		result.Translation = out
		result.Backend = backend.Name()
		if i > 0 {
			result.UsedFallback = true
			result.Note = FallbackNote
		}
		return result, nil
	}

	return nil, &TranslationFailedError{Errors: errs}
}

func (s *Service) authenticate(ctx context.Context, apiKey string) error {
	if s.gate == nil {
		return fmt.Errorf("%w: no user service configured", ErrUnauthorized)
	}

	ctx, cancel := context.WithTimeout(ctx, s.options.RequestTimeout)
	defer cancel()

	if err := s.gate.Validate(ctx, apiKey); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return nil
}

// fetchVocabulary never fails: an unreachable vocabulary service only
// disables preprocessing for this request.
func (s *Service) fetchVocabulary(ctx context.Context, apiKey string) []vocabulary.Entry {
	if s.vocab == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.options.RequestTimeout)
	defer cancel()

	entries, err := s.vocab.Fetch(ctx, apiKey)
	if err != nil {
		log.Printf("vocabulary: fetch failed, translating without preprocessing: %v", err)
		return nil
	}
	return entries
}
