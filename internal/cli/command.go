package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/vocabmt/internal"
	"codeberg.org/snonux/vocabmt/internal/config"
)

// Service names accepted by "serve"
const (
	ServiceTranslate  = "translate"
	ServiceVocabulary = "vocab"
	ServiceUsers      = "users"
)

// Actions are the functions the commands run
type Actions struct {
	Serve     func(cmd *cobra.Command, service string, flags *Flags) error
	Translate func(cmd *cobra.Command, text string, flags *Flags) error
	Import    func(cmd *cobra.Command, file string, flags *Flags) error
	Models    func(cmd *cobra.Command, flags *Flags) error
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags, actions Actions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vocabmt",
		Short: "Vocabulary-aware English to Spanish translation",
		Long: `vocabmt translates English text to Spanish. Known vocabulary terms are
replaced by their definitions before the text reaches the translation model,
and a built-in dictionary takes over when the model fails.

Examples:
  vocabmt serve translate              # Run the translation service
  vocabmt serve vocab                  # Run the vocabulary service
  vocabmt serve users                  # Run the user service
  vocabmt translate "Send the SOW."    # Translate from the command line
  vocabmt vocab import glossary.txt    # Import "term = definition" lines`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newServeCommand(flags, actions),
		newTranslateCommand(flags, actions),
		newVocabCommand(flags, actions),
		newModelsCommand(flags, actions),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.vocabmt.yaml)")

	// Translation flags
	cmd.PersistentFlags().StringVar(&flags.Provider, "provider", flags.Provider, "Primary translator: openai, gemini or none")
	cmd.PersistentFlags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model (default gpt-4o-mini)")
	cmd.PersistentFlags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model")
	cmd.PersistentFlags().BoolVar(&flags.DetectLanguage, "detect-language", false, "Report the detected source language")
	cmd.PersistentFlags().BoolVar(&flags.NoFallback, "no-fallback", false, "Disable the dictionary fallback translator")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translation.provider", cmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("translation.openai_model", cmd.PersistentFlags().Lookup("openai-model"))
	viper.BindPFlag("translation.gemini_model", cmd.PersistentFlags().Lookup("gemini-model"))
	viper.BindPFlag("translation.detect_language", cmd.PersistentFlags().Lookup("detect-language"))
}

func newServeCommand(flags *Flags, actions Actions) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run one of the HTTP services",
	}

	services := []struct {
		name  string
		short string
		key   string
	}{
		{ServiceTranslate, "Run the translation service", "server.translate_addr"},
		{ServiceVocabulary, "Run the vocabulary service", "server.vocab_addr"},
		{ServiceUsers, "Run the user service", "server.users_addr"},
	}

	for _, s := range services {
		name := s.name
		cmd := &cobra.Command{
			Use:   name,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if flags.NoFallback {
					viper.Set("translation.fallback_enabled", false)
				}
				return actions.Serve(cmd, name, flags)
			},
		}
		cmd.Flags().StringVar(&flags.Addr, "addr", "", "Listen address (e.g. :5002)")
		viper.BindPFlag(s.key, cmd.Flags().Lookup("addr"))
		serveCmd.AddCommand(cmd)
	}

	return serveCmd
}

func newTranslateCommand(flags *Flags, actions Actions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate TEXT...",
		Short: "Translate text without running a server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.NoFallback {
				viper.Set("translation.fallback_enabled", false)
			}
			return actions.Translate(cmd, strings.Join(args, " "), flags)
		},
	}
	cmd.Flags().StringVar(&flags.VocabularyFile, "vocab", "", "Vocabulary file with \"term = definition\" lines")
	return cmd
}

func newVocabCommand(flags *Flags, actions Actions) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage the vocabulary database",
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import \"term = definition\" lines into the vocabulary database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return actions.Import(cmd, args[0], flags)
		},
	}
	importCmd.Flags().BoolVar(&flags.SkipBackup, "skip-backup", false, "Do not back up the database before importing")

	vocabCmd.AddCommand(importCmd)
	return vocabCmd
}

func newModelsCommand(flags *Flags, actions Actions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI chat models available for the current API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return actions.Models(cmd, flags)
		},
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env file is normal outside of development
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".vocabmt" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vocabmt")
	}

	// Environment variables
	viper.SetEnvPrefix("VOCABMT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.BindLegacyEnv(viper.GetViper())

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}
