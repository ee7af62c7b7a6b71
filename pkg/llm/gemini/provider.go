package gemini

import (
	"context"
	"fmt"
	"strings"

	"samvidhan-be/pkg/llm"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

type GeminiProvider struct {
	client    *genai.Client
	ModelName string
}

var _ llm.LLMProvider = &GeminiProvider{}

// NewGeminiProvider returns llm.ErrMissingCredential when apiKey is blank so callers
// can refuse requests up front instead of failing on every call.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.ErrMissingCredential
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{client: client, ModelName: modelName}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Model: g.ModelName}, opts...)

	system := options.System
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			if system != "" {
				system += "\n\n"
			}
			system += msg.Content
		case "assistant", "model":
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	// images ride along with the last user turn
	if len(options.Images) > 0 {
		var last *genai.Content
		for i := len(contents) - 1; i >= 0; i-- {
			if contents[i].Role == genai.RoleUser {
				last = contents[i]
				break
			}
		}
		if last == nil {
			last = genai.NewContentFromParts(nil, genai.RoleUser)
			contents = append(contents, last)
		}
		for _, img := range options.Images {
			last.Parts = append(last.Parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
		}
	}

	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if options.JSONOutput {
		config.ResponseMIMEType = "application/json"
	}
	if options.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(options.Temperature))
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}

	resp, err := g.client.Models.GenerateContent(ctx, options.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate: %v", llm.ErrUpstreamUnavailable, err)
	}

	return resp.Text(), nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
