package legal

import (
	"sort"
	"strings"
	"unicode/utf8"
)

type MatchResult struct {
	Topic *Topic
	Score int
}

func (m MatchResult) Matched() bool {
	return m.Topic != nil
}

// Citations returns the matched topic's citations, or nil when nothing matched.
func (m MatchResult) Citations() []string {
	if m.Topic == nil {
		return nil
	}
	return append([]string(nil), m.Topic.Citations...)
}

// Match scores every topic against the query. A topic scores the summed character
// length of each keyword found as a case-insensitive substring of the query. The
// highest non-zero score wins and the earlier topic wins a tie.
func (c *Catalog) Match(query string) MatchResult {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return MatchResult{}
	}

	best := -1
	bestScore := 0
	for i := range c.topics {
		score := scoreTopic(&c.topics[i], normalized)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		return MatchResult{}
	}

	t := c.topics[best].clone()
	return MatchResult{Topic: &t, Score: bestScore}
}

// MatchAll returns every topic with a non-zero score, best first.
func (c *Catalog) MatchAll(query string) []MatchResult {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}

	var results []MatchResult
	for i := range c.topics {
		score := scoreTopic(&c.topics[i], normalized)
		if score == 0 {
			continue
		}
		t := c.topics[i].clone()
		results = append(results, MatchResult{Topic: &t, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func scoreTopic(t *Topic, normalizedQuery string) int {
	score := 0
	for _, kw := range t.Keywords {
		if strings.Contains(normalizedQuery, kw) {
			score += utf8.RuneCountInString(kw)
		}
	}
	return score
}
