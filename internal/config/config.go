// Package config maps viper settings onto typed configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/vocabmt/internal/translation"
)

// Config is the complete runtime configuration
type Config struct {
	Server      ServerConfig
	Services    ServicesConfig
	Database    DatabaseConfig
	Translation TranslationConfig
}

// ServerConfig holds the listen addresses of the three HTTP services
type ServerConfig struct {
	TranslateAddr  string
	VocabularyAddr string
	UsersAddr      string
}

// ServicesConfig locates the collaborating services
type ServicesConfig struct {
	UserServiceURL       string
	VocabularyServiceURL string
	RequestTimeout       time.Duration
}

// DatabaseConfig holds the SQLite database locations
type DatabaseConfig struct {
	VocabularyPath string
	UsersPath      string
	BackupDir      string
}

// TranslationConfig selects and tunes the translation backends
type TranslationConfig struct {
	Provider           string
	OpenAIKey          string
	OpenAIModel        string
	OpenAIBaseURL      string
	GeminiKey          string
	GeminiModel        string
	ReadyTimeout       time.Duration
	MaxChunkTokens     int
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	FallbackEnabled    bool
	DictionaryFile     string
	DetectLanguage     bool
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.translate_addr", ":5002")
	v.SetDefault("server.vocab_addr", ":5000")
	v.SetDefault("server.users_addr", ":5001")

	v.SetDefault("services.user_url", "http://user-service:5001")
	v.SetDefault("services.vocab_url", "http://vocab-service:5000")
	v.SetDefault("services.request_timeout_seconds", 10)

	v.SetDefault("database.vocab_path", "data/vocab.db")
	v.SetDefault("database.users_path", "data/users.db")
	v.SetDefault("database.backup_dir", "data/backups")

	v.SetDefault("translation.provider", translation.ProviderOpenAI)
	v.SetDefault("translation.openai_model", "")
	v.SetDefault("translation.openai_base_url", "")
	v.SetDefault("translation.gemini_model", translation.DefaultGeminiModel)
	v.SetDefault("translation.ready_timeout_seconds", int(translation.DefaultReadyTimeout/time.Second))
	v.SetDefault("translation.max_chunk_tokens", translation.DefaultMaxChunkTokens)
	v.SetDefault("translation.breaker_max_failures", 5)
	v.SetDefault("translation.breaker_open_seconds", 60)
	v.SetDefault("translation.fallback_enabled", true)
	v.SetDefault("translation.dictionary_file", "")
	v.SetDefault("translation.detect_language", false)
}

// BindLegacyEnv binds the unprefixed environment variables used by
// container deployments. DATABASE_PATH sets the database of whichever
// service the process runs.
func BindLegacyEnv(v *viper.Viper) {
	v.BindEnv("services.user_url", "USER_SERVICE_URL")
	v.BindEnv("services.vocab_url", "VOCAB_SERVICE_URL")
	v.BindEnv("database.vocab_path", "DATABASE_PATH")
	v.BindEnv("database.users_path", "DATABASE_PATH")
	v.BindEnv("translation.openai_key", "OPENAI_API_KEY")
	v.BindEnv("translation.gemini_key", "GEMINI_API_KEY")
}

// Load builds a Config from the global viper instance
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom builds a Config from v
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	config := &Config{
		Server: ServerConfig{
			TranslateAddr:  v.GetString("server.translate_addr"),
			VocabularyAddr: v.GetString("server.vocab_addr"),
			UsersAddr:      v.GetString("server.users_addr"),
		},
		Services: ServicesConfig{
			UserServiceURL:       v.GetString("services.user_url"),
			VocabularyServiceURL: v.GetString("services.vocab_url"),
		},
		Database: DatabaseConfig{
			VocabularyPath: v.GetString("database.vocab_path"),
			UsersPath:      v.GetString("database.users_path"),
			BackupDir:      v.GetString("database.backup_dir"),
		},
		Translation: TranslationConfig{
			Provider:           v.GetString("translation.provider"),
			OpenAIKey:          v.GetString("translation.openai_key"),
			OpenAIModel:        v.GetString("translation.openai_model"),
			OpenAIBaseURL:      v.GetString("translation.openai_base_url"),
			GeminiKey:          v.GetString("translation.gemini_key"),
			GeminiModel:        v.GetString("translation.gemini_model"),
			MaxChunkTokens:     v.GetInt("translation.max_chunk_tokens"),
			BreakerMaxFailures: v.GetUint32("translation.breaker_max_failures"),
			FallbackEnabled:    v.GetBool("translation.fallback_enabled"),
			DictionaryFile:     v.GetString("translation.dictionary_file"),
			DetectLanguage:     v.GetBool("translation.detect_language"),
		},
	}

	// seconds → durations
	config.Services.RequestTimeout = time.Duration(v.GetInt("services.request_timeout_seconds")) * time.Second
	config.Translation.ReadyTimeout = time.Duration(v.GetInt("translation.ready_timeout_seconds")) * time.Second
	config.Translation.BreakerOpenTimeout = time.Duration(v.GetInt("translation.breaker_open_seconds")) * time.Second

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Services.RequestTimeout <= 0 {
		return fmt.Errorf("services.request_timeout_seconds must be positive")
	}
	if c.Translation.ReadyTimeout <= 0 {
		return fmt.Errorf("translation.ready_timeout_seconds must be positive")
	}
	if c.Translation.MaxChunkTokens <= 0 {
		return fmt.Errorf("translation.max_chunk_tokens must be positive")
	}
	switch c.Translation.Provider {
	case translation.ProviderOpenAI, translation.ProviderGemini, translation.ProviderNone, "":
	default:
		return fmt.Errorf("unknown translation provider: %s", c.Translation.Provider)
	}
	return nil
}

// PrimarySettings returns the settings for building the primary backend
func (c *Config) PrimarySettings() *translation.Config {
	return &translation.Config{
		Provider:           c.Translation.Provider,
		OpenAIKey:          c.Translation.OpenAIKey,
		OpenAIModel:        c.Translation.OpenAIModel,
		OpenAIBaseURL:      c.Translation.OpenAIBaseURL,
		GeminiKey:          c.Translation.GeminiKey,
		GeminiModel:        c.Translation.GeminiModel,
		ReadyTimeout:       c.Translation.ReadyTimeout,
		MaxChunkTokens:     c.Translation.MaxChunkTokens,
		BreakerMaxFailures: c.Translation.BreakerMaxFailures,
		BreakerOpenTimeout: c.Translation.BreakerOpenTimeout,
	}
}
