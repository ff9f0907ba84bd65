package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string

	// Translation flags
	Provider       string
	OpenAIModel    string
	GeminiModel    string
	DetectLanguage bool
	NoFallback     bool

	// serve flags
	Addr string

	// translate flags
	VocabularyFile string

	// vocab import flags
	SkipBackup bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:    "openai",
		GeminiModel: "gemini-2.0-flash",
	}
}
