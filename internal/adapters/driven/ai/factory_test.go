package ai

import (
	"strings"
	"testing"

	"github.com/scribe-labs/scribe-cli/internal/core/domain"
)

func TestInitResult_Close(t *testing.T) {
	t.Run("close with nil services", func(t *testing.T) {
		result := &InitResult{}
		// Should not panic
		result.Close()
	})
}

func TestCreateEmbeddingService(t *testing.T) {
	tests := []struct {
		name        string
		settings    *domain.EmbeddingSettings
		wantNil     bool
		wantErr     bool
		errContains string
	}{
		{
			name:     "nil settings returns nil",
			settings: nil,
			wantNil:  true,
		},
		{
			name:     "unconfigured settings returns nil",
			settings: &domain.EmbeddingSettings{},
			wantNil:  true,
		},
		{
			name: "ollama provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOllama,
				BaseURL:  "http://localhost:11434",
				Model:    "nomic-embed-text",
			},
		},
		{
			name: "openai provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "sk-test",
				Model:    "text-embedding-3-small",
			},
		},
		{
			name: "openai without key returns nil",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOpenAI,
			},
			wantNil: true,
		},
		{
			name: "fake provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderFake,
			},
		},
		{
			name: "anthropic has no embeddings",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderAnthropic,
				APIKey:   "sk-ant-test",
			},
			wantErr:     true,
			errContains: "does not support embeddings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateEmbeddingService(tt.settings)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil != (svc == nil) {
				t.Errorf("got nil=%v, want nil=%v", svc == nil, tt.wantNil)
			}
			if svc != nil {
				svc.Close()
			}
		})
	}
}

func TestCreateLLMService(t *testing.T) {
	tests := []struct {
		name     string
		settings *domain.LLMSettings
		wantNil  bool
	}{
		{
			name:     "nil settings returns nil",
			settings: nil,
			wantNil:  true,
		},
		{
			name:     "unconfigured settings returns nil",
			settings: &domain.LLMSettings{},
			wantNil:  true,
		},
		{
			name: "ollama provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOllama,
				Model:    "llama3.2",
			},
		},
		{
			name: "openai provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "sk-test",
				Model:    "gpt-4o-mini",
			},
		},
		{
			name: "anthropic provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderAnthropic,
				APIKey:   "sk-ant-test",
			},
		},
		{
			name: "fake provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderFake,
			},
		},
		{
			name: "anthropic without key returns nil",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderAnthropic,
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(tt.settings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil != (svc == nil) {
				t.Errorf("got nil=%v, want nil=%v", svc == nil, tt.wantNil)
			}
			if svc != nil {
				svc.Close()
			}
		})
	}
}

func TestInitServices_FallsBackToDemoMode(t *testing.T) {
	result := InitServices(domain.AppSettings{})
	defer result.Close()

	if !result.DemoMode {
		t.Error("expected demo mode with no providers configured")
	}
	if result.EmbeddingService == nil {
		t.Fatal("expected fallback embedding service")
	}
	if result.LLMService == nil {
		t.Fatal("expected fallback LLM service")
	}
	if result.EmbeddingService.ModelName() != "fake-embed" {
		t.Errorf("unexpected embedding model %q", result.EmbeddingService.ModelName())
	}
	if result.LLMService.ModelName() != "fake-llm" {
		t.Errorf("unexpected LLM model %q", result.LLMService.ModelName())
	}
	if len(result.Warnings) == 0 {
		t.Error("expected warnings explaining the fallback")
	}
}

func TestInitServices_FakeProvidersConfigured(t *testing.T) {
	result := InitServices(domain.AppSettings{
		Embedding: domain.EmbeddingSettings{Provider: domain.AIProviderFake},
		LLM:       domain.LLMSettings{Provider: domain.AIProviderFake},
	})
	defer result.Close()

	if result.EmbeddingService == nil || result.LLMService == nil {
		t.Fatal("expected services for fake providers")
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}
