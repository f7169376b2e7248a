package domain

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for embeddings or completions.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderFake is the deterministic demo-mode provider used when no
	// credentials are configured. Completion output is clearly marked as
	// placeholder content.
	AIProviderFake AIProvider = "fake"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic, AIProviderFake:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama || p == AIProviderFake
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderFake:
		return "Demo mode (canned responses)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings holds completion service provider configuration.
type LLMSettings struct {
	// Provider is the completion service provider.
	Provider AIProvider

	// Model is the model identifier.
	Model string

	// BaseURL is the API endpoint (for Ollama or compatible APIs).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string

	// Temperature is the sampling temperature for generation.
	Temperature float64
}

// IsConfigured returns true if the completion provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// DiscoverySettings holds source discovery configuration.
type DiscoverySettings struct {
	// SearchAPIKey is the Google Custom Search API key.
	SearchAPIKey string

	// SearchCX is the Custom Search engine identifier.
	SearchCX string

	// ResultsPerQuery bounds the number of URLs fetched per search query.
	ResultsPerQuery int

	// MaxKeywords bounds the related-keyword list size.
	MaxKeywords int
}

// IsConfigured returns true if URL discovery is set up.
func (d DiscoverySettings) IsConfigured() bool {
	return d.SearchAPIKey != "" && d.SearchCX != ""
}

// CrawlerSettings holds crawl behaviour configuration.
type CrawlerSettings struct {
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int

	// DelaySeconds is the politeness delay between requests.
	DelaySeconds int
}

// ChunkingSettings holds text splitting configuration.
type ChunkingSettings struct {
	// Size is the soft maximum chunk size in characters.
	Size int

	// Overlap is the shared boundary length between consecutive chunks.
	// Invariant: Overlap < Size.
	Overlap int
}

// StorageSettings holds on-disk location configuration.
type StorageSettings struct {
	// DataDir holds the persisted vector index and inspection files.
	// Defaults to ~/.scribe/data.
	DataDir string

	// OutputDir is where generated articles and their metadata sidecars
	// are written. Defaults to ./generated_articles.
	OutputDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// LLM holds completion provider settings.
	LLM LLMSettings

	// Discovery holds keyword and URL discovery settings.
	Discovery DiscoverySettings

	// Crawler holds crawl behaviour settings.
	Crawler CrawlerSettings

	// Chunking holds text splitting settings.
	Chunking ChunkingSettings

	// Storage holds on-disk location settings.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// AI and discovery providers are left unconfigured; secrets are expected
// from the environment (OPENAI_API_KEY, GOOGLE_SEARCH_API, GOOGLE_CX).
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Embedding: EmbeddingSettings{},
		LLM: LLMSettings{
			Temperature: 0.7,
		},
		Discovery: DiscoverySettings{
			ResultsPerQuery: 10,
			MaxKeywords:     10,
		},
		Crawler: CrawlerSettings{
			TimeoutSeconds: 15,
			DelaySeconds:   1,
		},
		Chunking: ChunkingSettings{
			Size:    500,
			Overlap: 50,
		},
		Storage: StorageSettings{
			OutputDir: "generated_articles",
		},
	}
}
