package prompt

import (
	"strings"
	"testing"

	"samvidhan-be/pkg/legal"

	"github.com/stretchr/testify/assert"
)

func TestLegalBuilder_Build(t *testing.T) {
	catalog := legal.DefaultCatalog()

	t.Run("matched query carries reference material", func(t *testing.T) {
		match := catalog.Match("how to file an fir")
		out := NewLegalBuilder("how to file an fir", match).Build()

		assert.Contains(t, out, "<reference_material>")
		assert.Contains(t, out, match.Topic.Response)
		assert.Contains(t, out, "Section 173 BNSS - Information in Cognizable Cases")
		assert.True(t, strings.HasSuffix(out, "how to file an fir\n</user_question>"))
	})

	t.Run("unmatched query is the question alone", func(t *testing.T) {
		out := NewLegalBuilder("what is the capital of France", catalog.Match("what is the capital of France")).Build()

		assert.NotContains(t, out, "<reference_material>")
		assert.Equal(t, "<user_question>\nwhat is the capital of France\n</user_question>", out)
	})

	t.Run("mode hint", func(t *testing.T) {
		out := NewLegalBuilder("q", legal.MatchResult{}).WithMode("voice").Build()
		assert.Contains(t, out, "transcribed from speech")

		out = NewLegalBuilder("q", legal.MatchResult{}).WithMode("text").Build()
		assert.NotContains(t, out, "<note>")
	})
}
