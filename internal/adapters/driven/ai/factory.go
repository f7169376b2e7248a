// Package ai provides factory functions for creating AI service
// adapters from settings, with connectivity validation and a demo-mode
// fallback when no provider is configured.
package ai

import (
	"context"
	"fmt"
	"time"

	fakeembed "github.com/scribe-labs/scribe-cli/internal/adapters/driven/embedding/fake"
	ollamaembed "github.com/scribe-labs/scribe-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/scribe-labs/scribe-cli/internal/adapters/driven/embedding/openai"
	anthropicllm "github.com/scribe-labs/scribe-cli/internal/adapters/driven/llm/anthropic"
	fakellm "github.com/scribe-labs/scribe-cli/internal/adapters/driven/llm/fake"
	ollamallm "github.com/scribe-labs/scribe-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/scribe-labs/scribe-cli/internal/adapters/driven/llm/openai"
	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// InitResult contains the services selected for a run.
type InitResult struct {
	EmbeddingService driven.EmbeddingService
	LLMService       driven.LLMService
	Warnings         []string // Non-fatal issues that caused fallback.
	DemoMode         bool     // True if either service fell back to fake.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.EmbeddingService != nil {
		r.EmbeddingService.Close()
	}
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// InitServices creates and validates the embedding and LLM services for
// the given settings. An unconfigured or unreachable provider is not
// fatal: the corresponding service falls back to a deterministic fake
// and a warning is recorded, so the pipeline always has something to
// run against.
func InitServices(settings domain.AppSettings) *InitResult {
	result := &InitResult{}

	embed, err := CreateAndValidateEmbeddingService(&settings.Embedding)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}
	if embed == nil {
		if err == nil {
			result.Warnings = append(result.Warnings, "no embedding provider configured, using demo embeddings")
		}
		embed = fakeembed.NewEmbeddingService(0)
		result.DemoMode = true
	}
	result.EmbeddingService = embed

	llm, err := CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}
	if llm == nil {
		if err == nil {
			result.Warnings = append(result.Warnings, "no completion provider configured, using demo responses")
		}
		llm = fakellm.NewLLMService()
		result.DemoMode = true
	}
	result.LLMService = llm

	return result
}

// CreateAndValidateEmbeddingService creates an embedding service and
// checks connectivity. Returns (nil, nil) when no provider is configured.
func CreateAndValidateEmbeddingService(settings *domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	svc, err := CreateEmbeddingService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
	}
	if svc == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)", domain.ErrEmbeddingUnavailable, err)
	}
	return svc, nil
}

// CreateAndValidateLLMService creates an LLM service and checks
// connectivity. Returns (nil, nil) when no provider is configured.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}
	if svc == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)", domain.ErrLLMUnavailable, err)
	}
	return svc, nil
}

// CreateEmbeddingService creates the embedding service for the settings.
// Returns nil if the provider is not configured.
func CreateEmbeddingService(settings *domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	if settings == nil || settings.Provider == "" || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	case domain.AIProviderOpenAI:
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderFake:
		return fakeembed.NewEmbeddingService(0), nil

	case domain.AIProviderAnthropic:
		// Anthropic does not offer an embeddings endpoint.
		return nil, fmt.Errorf("anthropic does not support embeddings, use ollama or openai")

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", settings.Provider)
	}
}

// CreateLLMService creates the completion service for the settings.
// Returns nil if the provider is not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || settings.Provider == "" || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	case domain.AIProviderOpenAI:
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderAnthropic:
		return anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.AIProviderFake:
		return fakellm.NewLLMService(), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}
