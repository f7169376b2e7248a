// Package cli provides the command-line interface for Scribe.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/ai"
	configfile "github.com/scribe-labs/scribe-cli/internal/adapters/driven/config/file"
	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/discovery/googlesearch"
	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/discovery/trends"
	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/index/sqlite"
	storagefile "github.com/scribe-labs/scribe-cli/internal/adapters/driven/storage/file"
	"github.com/scribe-labs/scribe-cli/internal/chunker"
	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driving"
	"github.com/scribe-labs/scribe-cli/internal/core/services"
	"github.com/scribe-labs/scribe-cli/internal/crawl"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagDataDir string
	flagConfig  string
)

// Services wired by initServices and consumed by the commands. Tests
// inject mocks directly.
var (
	appSettings      domain.AppSettings
	configStore      *configfile.ConfigStore
	retrievalService driving.RetrievalService
	generatorService driving.ArticleGenerator
	articleStore     driven.ArticleStore
	vectorIndex      driven.VectorStore
	aiServices       *ai.InitResult
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Research-backed article generation from the command line",
	Long: `Scribe turns a topic into a researched article: it discovers trending
keywords and source pages, crawls and indexes their content, and writes
the article grounded in what it retrieved.

Configuration lives in ~/.scribe/config.toml; API keys are read from
OPENAI_API_KEY, ANTHROPIC_API_KEY, GOOGLE_SEARCH_API and GOOGLE_CX.
Without credentials scribe runs in demo mode with placeholder output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		logger.SetOutput(cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose progress output")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override the data directory (default ~/.scribe/data)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "override the config directory (default ~/.scribe)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the full dependency graph. Called lazily by the
// commands that need it so that version and settings work without
// reachable AI backends.
func initServices(ctx context.Context) error {
	if retrievalService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(flagConfig)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	configStore = store

	appSettings = configfile.LoadSettings(store)
	if flagDataDir != "" {
		appSettings.Storage.DataDir = flagDataDir
	}

	aiServices = ai.InitServices(appSettings)
	for _, warning := range aiServices.Warnings {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "warning: %s\n", warning)
	}
	if aiServices.DemoMode {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "running in demo mode; output is placeholder content")
	}

	index, err := sqlite.NewStore(appSettings.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("open vector index: %w", err)
	}
	if appSettings.Storage.DataDir == "" {
		appSettings.Storage.DataDir = filepath.Dir(index.Path())
	}
	vectorIndex = index

	splitter := chunker.New(
		chunker.WithChunkSize(appSettings.Chunking.Size),
		chunker.WithOverlap(appSettings.Chunking.Overlap),
	)
	retrievalService = services.NewRetrievalStore(aiServices.EmbeddingService, index, splitter)

	articles, err := storagefile.NewArticleStore(appSettings.Storage.OutputDir)
	if err != nil {
		return fmt.Errorf("open article store: %w", err)
	}
	articleStore = articles

	var keywords driven.KeywordFinder = trends.NewFinder(trends.Config{})

	var searcher driven.URLSearcher
	if appSettings.Discovery.IsConfigured() {
		s, err := googlesearch.NewSearcher(ctx, googlesearch.Config{
			APIKey:          appSettings.Discovery.SearchAPIKey,
			CX:              appSettings.Discovery.SearchCX,
			ResultsPerQuery: appSettings.Discovery.ResultsPerQuery,
		})
		if err != nil {
			logger.Warn("url discovery unavailable: %v", err)
		} else {
			searcher = s
		}
	} else {
		logger.Debug("url discovery not configured; set GOOGLE_SEARCH_API and GOOGLE_CX")
	}

	crawler := crawl.New(
		crawl.WithTimeout(time.Duration(appSettings.Crawler.TimeoutSeconds)*time.Second),
		crawl.WithDelay(time.Duration(appSettings.Crawler.DelaySeconds)*time.Second),
	)

	generatorService = services.NewPipelineService(
		keywords,
		searcher,
		crawler,
		retrievalService,
		aiServices.LLMService,
		articleStore,
		services.PipelineConfig{
			Temperature: appSettings.LLM.Temperature,
			MaxKeywords: appSettings.Discovery.MaxKeywords,
			DataDir:     appSettings.Storage.DataDir,
		},
	)
	return nil
}
