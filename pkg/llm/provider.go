package llm

import (
	"context"
	"errors"
)

var (
	// ErrUpstreamUnavailable wraps every transport, status or decoding failure of a provider.
	ErrUpstreamUnavailable = errors.New("llm upstream unavailable")
	// ErrMissingCredential is returned by constructors when a required API key is absent.
	ErrMissingCredential = errors.New("llm credential missing")
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Image is an inline binary attachment sent alongside the prompt.
type Image struct {
	MIMEType string
	Data     []byte
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
	System      string
	JSONOutput  bool
	Images      []Image
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithSystemInstruction sets the system prompt for providers that support one.
func WithSystemInstruction(text string) Option {
	return func(o *Options) {
		o.System = text
	}
}

// WithJSONOutput asks the provider to answer with a JSON document.
func WithJSONOutput() Option {
	return func(o *Options) {
		o.JSONOutput = true
	}
}

// WithImage attaches an image. Providers without multimodal support ignore it.
func WithImage(mimeType string, data []byte) Option {
	return func(o *Options) {
		o.Images = append(o.Images, Image{MIMEType: mimeType, Data: data})
	}
}

// Apply resolves opts over the given defaults.
func Apply(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
