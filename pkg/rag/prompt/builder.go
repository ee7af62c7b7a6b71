package prompt

import (
	"strings"

	"samvidhan-be/pkg/legal"
)

// SystemInstruction frames the model as an Indian legal advisor answering in JSON.
const SystemInstruction = `You are SamvidhanAI, an unbiased advisor on Indian law (Constitution of India, BNS, BNSS, BSA and other central and state Acts).

<guidelines>
- Consider every party involved; do not take sides unless the law clearly does.
- Cite the relevant Sections, Articles and Acts. Prefer BNS, BNSS and BSA, mentioning the older IPC or CrPC section where it helps.
- Structure the answer with ### headers and short bullet points instead of long paragraphs.
- Answer in the language of the question. Hindi answers use Devanagari script.
- End with a short legal disclaimer.
</guidelines>

<output_format>
Return a single JSON object with the keys "response" (markdown string), "citations" (array of strings) and "disclaimer" (string).
</output_format>`

// LegalBuilder composes the user turn: the question plus, when the catalog matched,
// the reference material for the matched topic.
type LegalBuilder struct {
	query string
	match legal.MatchResult
	mode  string
}

func NewLegalBuilder(query string, match legal.MatchResult) *LegalBuilder {
	return &LegalBuilder{query: query, match: match}
}

// WithMode notes how the query was captured (voice transcripts are often noisy).
func (b *LegalBuilder) WithMode(mode string) *LegalBuilder {
	b.mode = mode
	return b
}

func (b *LegalBuilder) Build() string {
	var prompt strings.Builder

	b.writeReferenceMaterial(&prompt)
	b.writeModeHint(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *LegalBuilder) writeReferenceMaterial(prompt *strings.Builder) {
	if !b.match.Matched() {
		return
	}

	prompt.WriteString("<reference_material>\n")
	prompt.WriteString("Use this if accurate, but verify it against your own knowledge.\n\n")
	prompt.WriteString(b.match.Topic.Response)
	prompt.WriteString("\n\nExisting citations: ")
	prompt.WriteString(strings.Join(b.match.Topic.Citations, ", "))
	prompt.WriteString("\n</reference_material>\n\n")
}

func (b *LegalBuilder) writeModeHint(prompt *strings.Builder) {
	switch b.mode {
	case "voice":
		prompt.WriteString("<note>The question was transcribed from speech and may contain recognition errors.</note>\n\n")
	case "visual":
		prompt.WriteString("<note>The user attached an image, most likely a legal document or notice. Read it before answering.</note>\n\n")
	}
}

func (b *LegalBuilder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</user_question>")
}
