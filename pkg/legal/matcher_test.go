package legal

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Match(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name      string
		query     string
		wantTopic string
		wantScore int
	}{
		{"fir lower", "how to file an fir", "fir", 3},
		{"fir upper", "HOW TO FILE AN FIR", "fir", 3},
		{"no match", "what is the capital of France", "", 0},
		{"empty", "", "", 0},
		{"blank", "   \t ", "", 0},
		{"landlord beats land", "my landlord won't return my deposit", "tenancy", 8},
		{"devanagari keyword", "मुझे तलाक चाहिए", "divorce", 4},
		{"article 21 beats rti substring", "what is article 21", "fundamental-rights", 10},
		{"cyber", "I was a victim of online fraud", "cyber-crime", 12},
		{"labour", "my employer has not paid my salary", "labour", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.query)
			if tt.wantTopic == "" {
				if got.Matched() {
					t.Errorf("Match(%q) = %s, want no match", tt.query, got.Topic.ID)
				}
				if got.Score != 0 {
					t.Errorf("Match(%q) score = %d, want 0", tt.query, got.Score)
				}
				return
			}
			if !got.Matched() {
				t.Fatalf("Match(%q) found nothing, want %s", tt.query, tt.wantTopic)
			}
			if got.Topic.ID != tt.wantTopic {
				t.Errorf("Match(%q) = %s, want %s", tt.query, got.Topic.ID, tt.wantTopic)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Match(%q) score = %d, want %d", tt.query, got.Score, tt.wantScore)
			}
		})
	}
}

func TestCatalog_MatchTieGoesToEarliestTopic(t *testing.T) {
	catalog, err := NewCatalog([]Topic{
		{ID: "first", Keywords: []string{"lease"}, Response: "a"},
		{ID: "second", Keywords: []string{"lease"}, Response: "b"},
	})
	require.NoError(t, err)

	got := catalog.Match("can my lease be broken")
	require.True(t, got.Matched())
	assert.Equal(t, "first", got.Topic.ID)
	assert.Equal(t, 5, got.Score)
}

func TestCatalog_MatchIsDeterministic(t *testing.T) {
	catalog := DefaultCatalog()
	first := catalog.Match("landlord wants eviction over rent")
	for i := 0; i < 20; i++ {
		got := catalog.Match("landlord wants eviction over rent")
		assert.Equal(t, first.Topic.ID, got.Topic.ID)
		assert.Equal(t, first.Score, got.Score)
	}
}

func TestCatalog_MatchAll(t *testing.T) {
	results := DefaultCatalog().MatchAll("my landlord won't return my deposit")
	require.Len(t, results, 2)
	assert.Equal(t, "tenancy", results[0].Topic.ID)
	assert.Equal(t, "property", results[1].Topic.ID)

	assert.Empty(t, DefaultCatalog().MatchAll(""))
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name   string
		topics []Topic
	}{
		{"no keywords", []Topic{{ID: "x", Response: "r"}}},
		{"blank keywords", []Topic{{ID: "x", Keywords: []string{" ", ""}, Response: "r"}}},
		{"empty response", []Topic{{ID: "x", Keywords: []string{"k"}, Response: "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.topics)
			if !errors.Is(err, ErrInvalidTopic) {
				t.Errorf("NewCatalog() error = %v, want ErrInvalidTopic", err)
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Equal(t, 11, catalog.Len())
	assert.Same(t, catalog, DefaultCatalog())

	fir, ok := catalog.Get("fir")
	require.True(t, ok)
	assert.Contains(t, fir.Citations, "Section 173 BNSS - Information in Cognizable Cases")

	for _, topic := range catalog.Topics() {
		assert.NotEmpty(t, topic.Keywords, topic.ID)
		assert.NotEmpty(t, topic.Response, topic.ID)
		assert.NotEmpty(t, topic.Citations, topic.ID)
	}
}

func TestCatalog_ResultsDoNotAliasCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	got := catalog.Match("how to file an fir")
	require.True(t, got.Matched())

	got.Topic.Citations[0] = "tampered"
	again := catalog.Match("how to file an fir")
	assert.NotEqual(t, "tampered", again.Topic.Citations[0])
}

func TestCatalog_ConcurrentMatch(t *testing.T) {
	catalog := DefaultCatalog()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := catalog.Match("how to file an fir")
			assert.Equal(t, "fir", got.Topic.ID)
		}()
	}
	wg.Wait()
}
