package pillars

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/common/logger"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// SearchHit is one match in pillar content.
type SearchHit struct {
	Slug    string  `json:"slug"`
	Title   string  `json:"title"`
	Kind    string  `json:"kind"` // "section" or "faq"
	Heading string  `json:"heading"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score,omitempty"`
}

// searchDoc is the indexed shape: one document per section and per FAQ.
type searchDoc struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Searcher answers full-text queries over pillar sections and FAQs. With an
// Elasticsearch client it queries the index built by IndexAll; without one it
// falls back to in-memory substring matching so the endpoint stays available.
type Searcher struct {
	store  *Store
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewSearcher(store *Store, client *elasticsearch.Client, index string, log logger.Logger) *Searcher {
	return &Searcher{
		store:  store,
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"component": "pillar-search"}),
	}
}

// IndexAll writes every pillar section and FAQ into the search index. Called
// once at startup; the content is immutable so there is no refresh path.
func (s *Searcher) IndexAll(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	for _, doc := range s.documents() {
		body, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal search doc: %w", err)
		}

		req := esapi.IndexRequest{
			Index:      s.index,
			DocumentID: fmt.Sprintf("%s-%s-%s", doc.Slug, doc.Kind, slugify(doc.Heading)),
			Body:       strings.NewReader(string(body)),
		}

		res, err := req.Do(ctx, s.client)
		if err != nil {
			return fmt.Errorf("index pillar doc: %w", err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("index pillar doc: %s", res.Status())
		}
	}

	s.logger.Info("pillar search index built", map[string]interface{}{
		"index": s.index,
		"docs":  len(s.documents()),
	})
	return nil
}

// Search returns matching pillar content for a free-text query.
func (s *Searcher) Search(ctx context.Context, query string, size int) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if size <= 0 {
		size = 10
	}

	if s.client == nil {
		return s.searchInMemory(query, size), nil
	}

	hits, err := s.searchES(ctx, query, size)
	if err != nil {
		return nil, errors.NewSearchError(err)
	}
	return hits, nil
}

func (s *Searcher) searchES(ctx context.Context, query string, size int) ([]SearchHit, error) {
	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^3", "heading^2", "body"},
				"type":   "best_fields",
			},
		},
	}

	body, _ := json.Marshal(queryBody)

	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  strings.NewReader(string(body)),
		Size:  &size,
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64   `json:"_score"`
				Source searchDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	hits := make([]SearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hits = append(hits, SearchHit{
			Slug:    h.Source.Slug,
			Title:   h.Source.Title,
			Kind:    h.Source.Kind,
			Heading: h.Source.Heading,
			Snippet: snippet(h.Source.Body),
			Score:   h.Score,
		})
	}
	return hits, nil
}

func (s *Searcher) searchInMemory(query string, size int) []SearchHit {
	needle := strings.ToLower(query)
	var hits []SearchHit
	for _, doc := range s.documents() {
		if len(hits) >= size {
			break
		}
		haystack := strings.ToLower(doc.Title + " " + doc.Heading + " " + doc.Body)
		if strings.Contains(haystack, needle) {
			hits = append(hits, SearchHit{
				Slug:    doc.Slug,
				Title:   doc.Title,
				Kind:    doc.Kind,
				Heading: doc.Heading,
				Snippet: snippet(doc.Body),
			})
		}
	}
	return hits
}

func (s *Searcher) documents() []searchDoc {
	var docs []searchDoc
	for _, p := range s.store.All() {
		for _, sec := range p.Sections {
			body := sec.Body
			if len(sec.Bullets) > 0 {
				body += " " + strings.Join(sec.Bullets, " ")
			}
			docs = append(docs, searchDoc{
				Slug:    p.Slug,
				Title:   p.Title,
				Kind:    "section",
				Heading: sec.Heading,
				Body:    body,
			})
		}
		for _, faq := range p.FAQs {
			docs = append(docs, searchDoc{
				Slug:    p.Slug,
				Title:   p.Title,
				Kind:    "faq",
				Heading: faq.Question,
				Body:    faq.Answer,
			})
		}
	}
	return docs
}

func snippet(body string) string {
	const max = 160
	if len(body) <= max {
		return body
	}
	cut := body[:max]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	// The byte cut may have landed inside a multi-byte rune.
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut + "…"
}

func slugify(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
