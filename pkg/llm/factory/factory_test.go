package factory

import (
	"context"
	"errors"
	"testing"

	"samvidhan-be/pkg/llm"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name         string
		providerType string
		apiKey       string
		wantErr      error
		wantNil      bool
	}{
		{"gemini without key", "gemini", "", llm.ErrMissingCredential, true},
		{"default without key", "", "", llm.ErrMissingCredential, true},
		{"huggingface without key", "huggingface", "", llm.ErrMissingCredential, true},
		{"ollama needs no key", "ollama", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(context.Background(), tt.providerType, "m", "", tt.apiKey)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewLLMProvider() error = %v, want %v", err, tt.wantErr)
			}
			if (p == nil) != tt.wantNil {
				t.Errorf("NewLLMProvider() provider nil = %v, want %v", p == nil, tt.wantNil)
			}
		})
	}

	if _, err := NewLLMProvider(context.Background(), "unknown", "", "", ""); err == nil {
		t.Error("expected error for unknown provider")
	}
}
