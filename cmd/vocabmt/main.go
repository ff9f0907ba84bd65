package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/vocabmt/internal/archive"
	"codeberg.org/snonux/vocabmt/internal/auth"
	"codeberg.org/snonux/vocabmt/internal/batch"
	"codeberg.org/snonux/vocabmt/internal/cli"
	"codeberg.org/snonux/vocabmt/internal/config"
	"codeberg.org/snonux/vocabmt/internal/models"
	"codeberg.org/snonux/vocabmt/internal/server"
	"codeberg.org/snonux/vocabmt/internal/service"
	"codeberg.org/snonux/vocabmt/internal/translation"
	"codeberg.org/snonux/vocabmt/internal/vocabulary"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags, cli.Actions{
		Serve:     runServe,
		Translate: runTranslate,
		Import:    runImport,
		Models:    runModels,
	})

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, name string, flags *cli.Flags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch name {
	case cli.ServiceTranslate:
		svc, err := newService(cfg,
			auth.NewClient(cfg.Services.UserServiceURL, cfg.Services.RequestTimeout),
			vocabulary.NewClient(cfg.Services.VocabularyServiceURL, cfg.Services.RequestTimeout))
		if err != nil {
			return err
		}
		log.Printf("translation: backends %v", svc.Backends())
		return server.Run(ctx, cfg.Server.TranslateAddr, server.NewTranslateRouter(svc))

	case cli.ServiceVocabulary:
		store, err := vocabulary.OpenStore(cfg.Database.VocabularyPath)
		if err != nil {
			return err
		}
		defer store.Close()

		gate := auth.NewClient(cfg.Services.UserServiceURL, cfg.Services.RequestTimeout)
		router := server.NewVocabularyRouter(store, gate, cfg.Services.RequestTimeout)
		return server.Run(ctx, cfg.Server.VocabularyAddr, router)

	case cli.ServiceUsers:
		store, err := auth.OpenStore(cfg.Database.UsersPath)
		if err != nil {
			return err
		}
		defer store.Close()

		return server.Run(ctx, cfg.Server.UsersAddr, server.NewUserRouter(store))

	default:
		return fmt.Errorf("unknown service: %s", name)
	}
}

// newService builds the backends described by cfg and starts warming the
// primary in the background.
func newService(cfg *config.Config, gate service.Gate, vocab service.VocabularySource) (*service.Service, error) {
	var backends []translation.Backend

	primary, err := translation.NewPrimary(cfg.PrimarySettings())
	switch {
	case err != nil && !cfg.Translation.FallbackEnabled:
		return nil, err
	case err != nil:
		log.Printf("translation: primary disabled: %v", err)
	case primary != nil:
		if lazy, ok := primary.(*translation.Lazy); ok {
			lazy.Warm()
		}
		backends = append(backends, primary)
	}

	if cfg.Translation.FallbackEnabled {
		fallback, err := newDictionary(cfg.Translation.DictionaryFile)
		if err != nil {
			return nil, err
		}
		backends = append(backends, fallback)
	}

	return service.New(gate, vocab, service.Options{
		RequestTimeout: cfg.Services.RequestTimeout,
		DetectLanguage: cfg.Translation.DetectLanguage,
	}, backends...), nil
}

func newDictionary(file string) (*translation.Dictionary, error) {
	dictionary := translation.NewDictionary()
	if file == "" {
		return dictionary, nil
	}

	entries, err := batch.ReadFile(file)
	if err != nil {
		return nil, err
	}
	dictionary.AddEntries(entries)
	log.Printf("translation: added %d dictionary entries from %s", len(entries), file)
	return dictionary, nil
}

// localGate admits the command line user
type localGate struct{}

func (localGate) Validate(ctx context.Context, apiKey string) error {
	return nil
}

// fileVocabulary serves a vocabulary read from a file
type fileVocabulary []vocabulary.Entry

func (f fileVocabulary) Fetch(ctx context.Context, apiKey string) ([]vocabulary.Entry, error) {
	return f, nil
}

func runTranslate(cmd *cobra.Command, text string, flags *cli.Flags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var vocab fileVocabulary
	if flags.VocabularyFile != "" {
		if vocab, err = batch.ReadFile(flags.VocabularyFile); err != nil {
			return err
		}
	}

	svc, err := newService(cfg, localGate{}, vocab)
	if err != nil {
		return err
	}

	result, err := svc.Handle(cmd.Context(), service.Request{Text: text, Credential: "local"})
	if err != nil {
		return err
	}

	if result.Preprocessed {
		fmt.Fprintf(cmd.ErrOrStderr(), "Preprocessed: %s\n", result.PreprocessedText)
	}
	if result.Note != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s\n", result.Note)
	}
	if result.SourceLanguage != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Source language: %s\n", result.SourceLanguage)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Translation)
	return nil
}

func runImport(cmd *cobra.Command, file string, flags *cli.Flags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	entries, err := batch.ReadFile(file)
	if err != nil {
		return err
	}

	if !flags.SkipBackup {
		backupPath, err := archive.BackupDatabase(cfg.Database.VocabularyPath, cfg.Database.BackupDir)
		if err != nil {
			return err
		}
		if backupPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Database backed up to: %s\n", backupPath)
		}
	}

	store, err := vocabulary.OpenStore(cfg.Database.VocabularyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Import(cmd.Context(), entries)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d entries into %s\n", n, len(entries), cfg.Database.VocabularyPath)
	return nil
}

func runModels(cmd *cobra.Command, flags *cli.Flags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	current := cfg.Translation.OpenAIModel
	if current == "" {
		current = translation.DefaultOpenAIModel
	}

	lister := models.NewLister(cli.GetOpenAIKey(), cfg.Translation.OpenAIBaseURL)
	return lister.PrintModels(cmd.Context(), cmd.OutOrStdout(), current)
}
