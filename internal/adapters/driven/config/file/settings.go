package file

import (
	"os"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

// Configuration keys. Nested TOML tables flatten to dot notation, so
// [llm] provider = "openai" is read as "llm.provider".
const (
	keyEmbeddingProvider = "embedding.provider"
	keyEmbeddingModel    = "embedding.model"
	keyEmbeddingBaseURL  = "embedding.base_url"
	keyEmbeddingAPIKey   = "embedding.api_key"

	keyLLMProvider    = "llm.provider"
	keyLLMModel       = "llm.model"
	keyLLMBaseURL     = "llm.base_url"
	keyLLMAPIKey      = "llm.api_key"
	keyLLMTemperature = "llm.temperature"

	keyDiscoverySearchAPIKey = "discovery.search_api_key"
	keyDiscoverySearchCX     = "discovery.search_cx"
	keyDiscoveryResults      = "discovery.results_per_query"
	keyDiscoveryMaxKeywords  = "discovery.max_keywords"

	keyCrawlerTimeout = "crawler.timeout_seconds"
	keyCrawlerDelay   = "crawler.delay_seconds"

	keyChunkingSize    = "chunking.size"
	keyChunkingOverlap = "chunking.overlap"

	keyStorageDataDir   = "storage.data_dir"
	keyStorageOutputDir = "storage.output_dir"
)

// Environment variables override file values for secrets, matching the
// names other tooling in this space already uses.
const (
	envOpenAIKey       = "OPENAI_API_KEY"
	envAnthropicKey    = "ANTHROPIC_API_KEY"
	envGoogleSearchKey = "GOOGLE_SEARCH_API"
	envGoogleCX        = "GOOGLE_CX"
)

// LoadSettings builds application settings from defaults, the config
// store, and environment overrides, in that order of precedence.
func LoadSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.DefaultAppSettings()

	if v := store.GetString(keyEmbeddingProvider); v != "" {
		settings.Embedding.Provider = domain.AIProvider(v)
	}
	if v := store.GetString(keyEmbeddingModel); v != "" {
		settings.Embedding.Model = v
	}
	if v := store.GetString(keyEmbeddingBaseURL); v != "" {
		settings.Embedding.BaseURL = v
	}
	if v := store.GetString(keyEmbeddingAPIKey); v != "" {
		settings.Embedding.APIKey = v
	}

	if v := store.GetString(keyLLMProvider); v != "" {
		settings.LLM.Provider = domain.AIProvider(v)
	}
	if v := store.GetString(keyLLMModel); v != "" {
		settings.LLM.Model = v
	}
	if v := store.GetString(keyLLMBaseURL); v != "" {
		settings.LLM.BaseURL = v
	}
	if v := store.GetString(keyLLMAPIKey); v != "" {
		settings.LLM.APIKey = v
	}
	if v := store.GetFloat(keyLLMTemperature); v > 0 {
		settings.LLM.Temperature = v
	}

	if v := store.GetString(keyDiscoverySearchAPIKey); v != "" {
		settings.Discovery.SearchAPIKey = v
	}
	if v := store.GetString(keyDiscoverySearchCX); v != "" {
		settings.Discovery.SearchCX = v
	}
	if v := store.GetInt(keyDiscoveryResults); v > 0 {
		settings.Discovery.ResultsPerQuery = v
	}
	if v := store.GetInt(keyDiscoveryMaxKeywords); v > 0 {
		settings.Discovery.MaxKeywords = v
	}

	if v := store.GetInt(keyCrawlerTimeout); v > 0 {
		settings.Crawler.TimeoutSeconds = v
	}
	if v := store.GetInt(keyCrawlerDelay); v > 0 {
		settings.Crawler.DelaySeconds = v
	}

	if v := store.GetInt(keyChunkingSize); v > 0 {
		settings.Chunking.Size = v
	}
	if v := store.GetInt(keyChunkingOverlap); v > 0 && v < settings.Chunking.Size {
		settings.Chunking.Overlap = v
	}

	if v := store.GetString(keyStorageDataDir); v != "" {
		settings.Storage.DataDir = v
	}
	if v := store.GetString(keyStorageOutputDir); v != "" {
		settings.Storage.OutputDir = v
	}

	applyEnvOverrides(&settings)
	return settings
}

// applyEnvOverrides fills secrets from the environment. An OpenAI key
// with no provider selected implies the OpenAI stack, mirroring how
// the rest of the config treats unset providers.
func applyEnvOverrides(settings *domain.AppSettings) {
	if key := os.Getenv(envOpenAIKey); key != "" {
		if settings.Embedding.Provider == "" || settings.Embedding.Provider == domain.AIProviderOpenAI {
			settings.Embedding.Provider = domain.AIProviderOpenAI
			settings.Embedding.APIKey = key
		}
		if settings.LLM.Provider == "" || settings.LLM.Provider == domain.AIProviderOpenAI {
			settings.LLM.Provider = domain.AIProviderOpenAI
			settings.LLM.APIKey = key
		}
	}
	if key := os.Getenv(envAnthropicKey); key != "" {
		if settings.LLM.Provider == domain.AIProviderAnthropic {
			settings.LLM.APIKey = key
		}
	}
	if key := os.Getenv(envGoogleSearchKey); key != "" {
		settings.Discovery.SearchAPIKey = key
	}
	if cx := os.Getenv(envGoogleCX); cx != "" {
		settings.Discovery.SearchCX = cx
	}
}

// SaveSettings persists non-secret settings to the config store.
// Secrets stay in the environment; only explicitly configured keys are
// written.
func SaveSettings(store driven.ConfigStore, settings domain.AppSettings) error {
	pairs := []struct {
		key   string
		value any
		write bool
	}{
		{keyEmbeddingProvider, settings.Embedding.Provider.String(), settings.Embedding.Provider != ""},
		{keyEmbeddingModel, settings.Embedding.Model, settings.Embedding.Model != ""},
		{keyEmbeddingBaseURL, settings.Embedding.BaseURL, settings.Embedding.BaseURL != ""},
		{keyLLMProvider, settings.LLM.Provider.String(), settings.LLM.Provider != ""},
		{keyLLMModel, settings.LLM.Model, settings.LLM.Model != ""},
		{keyLLMBaseURL, settings.LLM.BaseURL, settings.LLM.BaseURL != ""},
		{keyLLMTemperature, settings.LLM.Temperature, settings.LLM.Temperature > 0},
		{keyDiscoveryResults, settings.Discovery.ResultsPerQuery, settings.Discovery.ResultsPerQuery > 0},
		{keyDiscoveryMaxKeywords, settings.Discovery.MaxKeywords, settings.Discovery.MaxKeywords > 0},
		{keyCrawlerTimeout, settings.Crawler.TimeoutSeconds, settings.Crawler.TimeoutSeconds > 0},
		{keyCrawlerDelay, settings.Crawler.DelaySeconds, settings.Crawler.DelaySeconds > 0},
		{keyChunkingSize, settings.Chunking.Size, settings.Chunking.Size > 0},
		{keyChunkingOverlap, settings.Chunking.Overlap, settings.Chunking.Overlap > 0},
		{keyStorageDataDir, settings.Storage.DataDir, settings.Storage.DataDir != ""},
		{keyStorageOutputDir, settings.Storage.OutputDir, settings.Storage.OutputDir != ""},
	}

	for _, pair := range pairs {
		if !pair.write {
			continue
		}
		if err := store.Set(pair.key, pair.value); err != nil {
			return err
		}
	}
	return store.Save()
}
