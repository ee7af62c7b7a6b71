package legal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrInvalidTopic = errors.New("invalid legal topic")

// Topic is a single entry of the reference table.
type Topic struct {
	ID        string
	Title     string
	Keywords  []string
	Response  string
	Citations []string
}

func (t Topic) clone() Topic {
	t.Keywords = append([]string(nil), t.Keywords...)
	t.Citations = append([]string(nil), t.Citations...)
	return t
}

// Catalog is an immutable, ordered set of topics. It is safe for concurrent use.
type Catalog struct {
	topics []Topic
}

// NewCatalog validates the given topics and returns a catalog holding its own copy
// of them. Keywords are lower-cased once here so matching never has to.
func NewCatalog(topics []Topic) (*Catalog, error) {
	copied := make([]Topic, 0, len(topics))

	for i, t := range topics {
		if strings.TrimSpace(t.Response) == "" {
			return nil, fmt.Errorf("%w: topic %d (%s) has an empty response", ErrInvalidTopic, i, t.ID)
		}

		keywords := make([]string, 0, len(t.Keywords))
		for _, kw := range t.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			return nil, fmt.Errorf("%w: topic %d (%s) has no keywords", ErrInvalidTopic, i, t.ID)
		}

		copied = append(copied, Topic{
			ID:        t.ID,
			Title:     t.Title,
			Keywords:  keywords,
			Response:  t.Response,
			Citations: append([]string(nil), t.Citations...),
		})
	}

	return &Catalog{topics: copied}, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(defaultTopics)
	if err != nil {
		panic(err)
	}
	return c
})

// DefaultCatalog returns the built-in Indian law reference table.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

func (c *Catalog) Len() int {
	return len(c.topics)
}

// Topics returns a copy of the catalog entries in order.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	for i := range c.topics {
		out[i] = c.topics[i].clone()
	}
	return out
}

func (c *Catalog) Get(id string) (*Topic, bool) {
	for i := range c.topics {
		if c.topics[i].ID == id {
			t := c.topics[i].clone()
			return &t, true
		}
	}
	return nil, false
}
