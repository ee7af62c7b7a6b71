package factory

import (
	"context"
	"fmt"

	"samvidhan-be/pkg/llm"
	"samvidhan-be/pkg/llm/gemini"
	"samvidhan-be/pkg/llm/huggingface"
	"samvidhan-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured provider. Credentialed providers return
// llm.ErrMissingCredential when apiKey is empty.
func NewLLMProvider(ctx context.Context, providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "", "gemini":
		p, err := gemini.NewGeminiProvider(ctx, apiKey, modelName)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "huggingface":
		p, err := huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
