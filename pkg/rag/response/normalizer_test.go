package response

import (
	"testing"

	"samvidhan-be/pkg/legal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"json fence", "```json\n{\"response\":\"x\"}\n```", `{"response":"x"}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{}\n```\n ", `{}`},
		{"single line fence", "```{\"a\":1}```", `{"a":1}`},
		{"crlf", "```json\r\n{}\r\n```", `{}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"plain text", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.raw); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalize_Parsed(t *testing.T) {
	raw := "```json\n{\"response\":\"File at the nearest station.\",\"citations\":[\"Section 173 BNSS\"],\"disclaimer\":\"Not legal advice.\"}\n```"

	res := Normalize(raw, legal.MatchResult{})
	require.Equal(t, KindParsed, res.Kind)
	assert.Equal(t, "File at the nearest station.", res.Answer.Response)
	assert.Equal(t, []string{"Section 173 BNSS"}, res.Answer.Citations)
	assert.Equal(t, "Not legal advice.", res.Answer.Disclaimer)
	assert.Empty(t, res.Reason)
}

func TestNormalize_ParsedDefaults(t *testing.T) {
	res := Normalize(`{"response":"ok"}`, legal.MatchResult{})
	require.Equal(t, KindParsed, res.Kind)
	assert.NotNil(t, res.Answer.Citations)
	assert.Empty(t, res.Answer.Citations)
	assert.Equal(t, Disclaimer, res.Answer.Disclaimer)
}

func TestNormalize_Fallback(t *testing.T) {
	fir := legal.DefaultCatalog().Match("how to file an fir")
	require.True(t, fir.Matched())

	tests := []struct {
		name          string
		raw           string
		match         legal.MatchResult
		wantResponse  string
		wantCitations []string
	}{
		{
			name:          "prose with match",
			raw:           "Visit the police station and narrate the incident.",
			match:         fir,
			wantResponse:  "Visit the police station and narrate the incident.",
			wantCitations: fir.Topic.Citations,
		},
		{
			name:          "prose without match",
			raw:           "Paris.",
			match:         legal.MatchResult{},
			wantResponse:  "Paris.",
			wantCitations: []string{PlaceholderCitation},
		},
		{
			name:          "json without response",
			raw:           `{"citations":["x"]}`,
			match:         legal.MatchResult{},
			wantResponse:  `{"citations":["x"]}`,
			wantCitations: []string{PlaceholderCitation},
		},
		{
			name:          "json null",
			raw:           "null",
			match:         legal.MatchResult{},
			wantResponse:  "null",
			wantCitations: []string{PlaceholderCitation},
		},
		{
			name:          "fenced prose",
			raw:           "```json\nFile a complaint with the consumer forum.\n```",
			match:         legal.MatchResult{},
			wantResponse:  "File a complaint with the consumer forum.",
			wantCitations: []string{PlaceholderCitation},
		},
		{
			name:          "blank output",
			raw:           "   ",
			match:         legal.MatchResult{},
			wantResponse:  Apology,
			wantCitations: []string{PlaceholderCitation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.raw, tt.match)
			assert.Equal(t, KindFallback, res.Kind)
			assert.Equal(t, tt.wantResponse, res.Answer.Response)
			assert.Equal(t, tt.wantCitations, res.Answer.Citations)
			assert.Equal(t, Disclaimer, res.Answer.Disclaimer)
			assert.NotEmpty(t, res.Reason)
		})
	}
}

func TestDegraded(t *testing.T) {
	fir := legal.DefaultCatalog().Match("how to file an fir")

	res := Degraded(fir, "timeout")
	assert.Equal(t, KindFallback, res.Kind)
	assert.Equal(t, fir.Topic.Response, res.Answer.Response)
	assert.Equal(t, fir.Topic.Citations, res.Answer.Citations)
	assert.Equal(t, "timeout", res.Reason)

	res = Degraded(legal.MatchResult{}, "timeout")
	assert.Equal(t, Apology, res.Answer.Response)
	assert.Equal(t, []string{PlaceholderCitation}, res.Answer.Citations)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "parsed", KindParsed.String())
	assert.Equal(t, "fallback", KindFallback.String())
}
