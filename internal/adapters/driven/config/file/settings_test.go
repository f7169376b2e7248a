package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

func TestLoadSettings_Defaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GOOGLE_SEARCH_API", "")
	t.Setenv("GOOGLE_CX", "")

	settings := LoadSettings(store)

	assert.Equal(t, 500, settings.Chunking.Size)
	assert.Equal(t, 50, settings.Chunking.Overlap)
	assert.Equal(t, 15, settings.Crawler.TimeoutSeconds)
	assert.Equal(t, 1, settings.Crawler.DelaySeconds)
	assert.Equal(t, 0.7, settings.LLM.Temperature)
	assert.Equal(t, "generated_articles", settings.Storage.OutputDir)
	assert.False(t, settings.Embedding.IsConfigured())
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	t.Setenv("OPENAI_API_KEY", "")

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Set("llm.model", "llama3.2"))
	require.NoError(t, store.Set("llm.temperature", 0.2))
	require.NoError(t, store.Set("chunking.size", 800))
	require.NoError(t, store.Set("chunking.overlap", 100))

	settings := LoadSettings(store)

	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "llama3.2", settings.LLM.Model)
	assert.Equal(t, 0.2, settings.LLM.Temperature)
	assert.Equal(t, 800, settings.Chunking.Size)
	assert.Equal(t, 100, settings.Chunking.Overlap)
}

func TestLoadSettings_OverlapMustStayBelowSize(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("chunking.size", 100))
	require.NoError(t, store.Set("chunking.overlap", 200))

	settings := LoadSettings(store)

	assert.Equal(t, 100, settings.Chunking.Size)
	assert.Equal(t, 50, settings.Chunking.Overlap) // default retained
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("GOOGLE_SEARCH_API", "search-key")
	t.Setenv("GOOGLE_CX", "cx-id")

	settings := LoadSettings(store)

	assert.Equal(t, domain.AIProviderOpenAI, settings.LLM.Provider)
	assert.Equal(t, "sk-env", settings.LLM.APIKey)
	assert.Equal(t, domain.AIProviderOpenAI, settings.Embedding.Provider)
	assert.Equal(t, "sk-env", settings.Embedding.APIKey)
	assert.Equal(t, "search-key", settings.Discovery.SearchAPIKey)
	assert.Equal(t, "cx-id", settings.Discovery.SearchCX)
	assert.True(t, settings.Discovery.IsConfigured())
}

func TestLoadSettings_EnvDoesNotOverrideOtherProvider(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))
	t.Setenv("OPENAI_API_KEY", "sk-env")

	settings := LoadSettings(store)

	// A configured local provider is not hijacked by an env key.
	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Empty(t, settings.LLM.APIKey)
}

func TestLoadSettings_AnthropicKeyFromEnv(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "anthropic"))
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")

	settings := LoadSettings(store)

	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	assert.Equal(t, "sk-ant-env", settings.LLM.APIKey)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GOOGLE_SEARCH_API", "")
	t.Setenv("GOOGLE_CX", "")

	in := domain.DefaultAppSettings()
	in.LLM.Provider = domain.AIProviderOllama
	in.LLM.Model = "llama3.2"
	in.Chunking.Size = 600
	in.Storage.DataDir = "/tmp/scribe-data"

	require.NoError(t, SaveSettings(store, in))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	out := LoadSettings(reloaded)

	assert.Equal(t, domain.AIProviderOllama, out.LLM.Provider)
	assert.Equal(t, "llama3.2", out.LLM.Model)
	assert.Equal(t, 600, out.Chunking.Size)
	assert.Equal(t, "/tmp/scribe-data", out.Storage.DataDir)
}

func TestSaveSettings_DoesNotPersistSecrets(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	in := domain.DefaultAppSettings()
	in.LLM.Provider = domain.AIProviderOpenAI
	in.LLM.APIKey = "sk-secret"

	require.NoError(t, SaveSettings(store, in))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Empty(t, reloaded.GetString("llm.api_key"))
}
