package translation

import "context"

// Backend translates English text to Spanish.
type Backend interface {
	// Name identifies the backend in logs and responses
	Name() string

	// Translate returns the translation of text or an error
	Translate(ctx context.Context, text string) (string, error)
}

const (
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderNone       = "none"
	ProviderDictionary = "dictionary"
)

// systemPrompt instructs chat models to behave as a plain translator.
const systemPrompt = "You are a professional English to Spanish translator. " +
	"Translate the user's text into Spanish. Keep any Spanish words already present unchanged. " +
	"Preserve punctuation and line breaks. Respond with only the translation, nothing else."
