package response

import (
	"encoding/json"
	"regexp"
	"strings"

	"samvidhan-be/pkg/legal"
)

const (
	Disclaimer          = "Disclaimer: AI generated advice. Consult a lawyer."
	PlaceholderCitation = "Indian Law"
	Apology             = "Sorry, I could not prepare an answer right now. Please try again later."
)

type Kind int

const (
	KindParsed Kind = iota
	KindFallback
)

func (k Kind) String() string {
	if k == KindParsed {
		return "parsed"
	}
	return "fallback"
}

// Answer is the user-facing payload assembled from the model output.
type Answer struct {
	Response   string   `json:"response"`
	Citations  []string `json:"citations"`
	Disclaimer string   `json:"disclaimer"`
}

// Result tags how the answer was obtained. Reason is set for fallbacks only.
type Result struct {
	Kind   Kind
	Answer Answer
	Reason string
}

var fencePattern = regexp.MustCompile("(?s)^```[A-Za-z0-9_-]*[ \t]*\r?\n?(.*?)\r?\n?```$")

// StripFences removes a single enclosing markdown code fence, with or without a
// language tag. Text that is not fenced is returned trimmed.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

type modelPayload struct {
	Response   string   `json:"response"`
	Citations  []string `json:"citations"`
	Disclaimer string   `json:"disclaimer"`
}

// Normalize turns raw model output into an Answer. It never fails: output that is
// not a JSON object with a non-empty "response" is passed through, fences
// stripped, as the answer text with the matched topic's citations (or a
// placeholder) attached.
func Normalize(raw string, match legal.MatchResult) Result {
	text := StripFences(raw)

	var payload modelPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return fallback(text, match, "invalid json: "+err.Error())
	}
	if strings.TrimSpace(payload.Response) == "" {
		return fallback(text, match, "json without response")
	}

	answer := Answer{
		Response:   payload.Response,
		Citations:  payload.Citations,
		Disclaimer: payload.Disclaimer,
	}
	if answer.Citations == nil {
		answer.Citations = []string{}
	}
	if strings.TrimSpace(answer.Disclaimer) == "" {
		answer.Disclaimer = Disclaimer
	}

	return Result{Kind: KindParsed, Answer: answer}
}

// Degraded builds the answer used when the model could not be reached at all:
// the matched topic's canonical response, or the apology when nothing matched.
func Degraded(match legal.MatchResult, reason string) Result {
	if match.Matched() {
		return Result{
			Kind: KindFallback,
			Answer: Answer{
				Response:   match.Topic.Response,
				Citations:  fallbackCitations(match),
				Disclaimer: Disclaimer,
			},
			Reason: reason,
		}
	}
	return fallback("", match, reason)
}

func fallback(raw string, match legal.MatchResult, reason string) Result {
	text := raw
	if strings.TrimSpace(text) == "" {
		text = Apology
	}
	return Result{
		Kind: KindFallback,
		Answer: Answer{
			Response:   text,
			Citations:  fallbackCitations(match),
			Disclaimer: Disclaimer,
		},
		Reason: reason,
	}
}

func fallbackCitations(match legal.MatchResult) []string {
	if c := match.Citations(); len(c) > 0 {
		return c
	}
	return []string{PlaceholderCitation}
}
