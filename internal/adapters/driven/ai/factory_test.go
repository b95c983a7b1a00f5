package ai

import (
	"testing"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

func TestCreateReaderService_Defaults(t *testing.T) {
	svc := CreateReaderService(nil, "")
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
	defer svc.Close()

	if svc.ModelName() != domain.DefaultReaderModel {
		t.Errorf("model = %q, want %q", svc.ModelName(), domain.DefaultReaderModel)
	}
}

func TestCreateReaderService_CustomModel(t *testing.T) {
	settings := &domain.ReaderSettings{
		Model: "deepset/minilm-uncased-squad2",
	}

	svc := CreateReaderService(settings, "hf_test_token")
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
	defer svc.Close()

	if svc.ModelName() != "deepset/minilm-uncased-squad2" {
		t.Errorf("model = %q, want %q", svc.ModelName(), "deepset/minilm-uncased-squad2")
	}
}

func TestCreateSummariserService(t *testing.T) {
	tests := []struct {
		name        string
		settings    *domain.SummariserSettings
		wantErr     bool
		errContains string
		wantModel   string
	}{
		{
			name:      "nil settings falls back to hosted provider",
			settings:  nil,
			wantErr:   false,
			wantModel: "sshleifer/distilbart-cnn-12-6",
		},
		{
			name:      "empty provider falls back to hosted provider",
			settings:  &domain.SummariserSettings{},
			wantErr:   false,
			wantModel: "sshleifer/distilbart-cnn-12-6",
		},
		{
			name: "huggingface provider creates service",
			settings: &domain.SummariserSettings{
				Provider: domain.AIProviderHuggingFace,
				Model:    "facebook/bart-large-cnn",
			},
			wantErr:   false,
			wantModel: "facebook/bart-large-cnn",
		},
		{
			name: "ollama provider creates service",
			settings: &domain.SummariserSettings{
				Provider: domain.AIProviderOllama,
				BaseURL:  "http://localhost:11434",
				Model:    "llama3.2",
			},
			wantErr:   false,
			wantModel: "llama3.2",
		},
		{
			name: "openai provider creates service",
			settings: &domain.SummariserSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "test-key",
			},
			wantErr:   false,
			wantModel: "gpt-4o-mini",
		},
		{
			name: "openai provider without key returns error",
			settings: &domain.SummariserSettings{
				Provider: domain.AIProviderOpenAI,
			},
			wantErr:     true,
			errContains: "API key is required",
		},
		{
			name: "unknown provider returns error",
			settings: &domain.SummariserSettings{
				Provider: "bedrock",
			},
			wantErr:     true,
			errContains: "unsupported summariser provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateSummariserService(tt.settings, "", nil)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if svc == nil {
				t.Fatal("expected non-nil service")
			}
			defer svc.Close()

			if svc.ModelName() != tt.wantModel {
				t.Errorf("model = %q, want %q", svc.ModelName(), tt.wantModel)
			}
		})
	}
}

func TestCreateSummariserService_AttachesPromptStore(t *testing.T) {
	store := stubPromptStore{}
	settings := &domain.SummariserSettings{
		Provider: domain.AIProviderOllama,
		Model:    "llama3.2",
	}

	svc, err := CreateSummariserService(settings, "", store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer svc.Close()
	// Attaching must not panic; the ollama adapter accepts the store.
}

func TestValidationTimeout(t *testing.T) {
	hosted := validationTimeout(&domain.SummariserSettings{Provider: domain.AIProviderHuggingFace})
	if hosted != warmupTimeout {
		t.Errorf("hosted timeout = %v, want %v", hosted, warmupTimeout)
	}

	local := validationTimeout(&domain.SummariserSettings{Provider: domain.AIProviderOllama})
	if local != pingTimeout {
		t.Errorf("local timeout = %v, want %v", local, pingTimeout)
	}

	if validationTimeout(nil) != warmupTimeout {
		t.Errorf("nil settings should use the warm-up budget")
	}
}

// stubPromptStore is a no-op prompt store for wiring tests.
type stubPromptStore struct{}

func (stubPromptStore) Load(name string) (string, error) { return "", nil }
func (stubPromptStore) Reload()                          {}

// contains checks if s contains substr.
func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsHelper(s, substr))
}

func containsHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
