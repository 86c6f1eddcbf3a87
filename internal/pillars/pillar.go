// Package pillars holds the static content catalog for the site's core
// pillar pages and resolves URL slugs to records.
package pillars

import (
	"errors"

	"valuemed-backend/internal/common/metrics"
)

// ErrNotFound signals a slug with no matching pillar. This is an expected
// condition (stale link, typo in URL); callers render a fallback view.
var ErrNotFound = errors.New("pillar not found")

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

type Section struct {
	Heading string   `json:"heading"`
	Body    string   `json:"body"`
	Bullets []string `json:"bullets,omitempty"`
}

type QuickPeek struct {
	Icon  IconTag `json:"icon"`
	Title string  `json:"title"`
	Desc  string  `json:"desc"`
}

type Pillar struct {
	Slug             string      `json:"slug"`
	Title            string      `json:"title"`
	Tagline          string      `json:"tagline"`
	ShortDescription string      `json:"shortDescription"`
	Badge            string      `json:"badge,omitempty"`
	Intro            string      `json:"intro,omitempty"`
	Highlights       []string    `json:"highlights,omitempty"`
	Stats            []Stat      `json:"stats,omitempty"`
	FAQs             []FAQ       `json:"faqs,omitempty"`
	QuickPeek        []QuickPeek `json:"quickPeek,omitempty"`
	Sections         []Section   `json:"sections"`
}

// Store is the immutable pillar table, indexed by slug at construction.
// Safe for concurrent readers; never mutated after New.
type Store struct {
	ordered []Pillar
	bySlug  map[string]*Pillar
}

// New builds a store from the given records. Every record must have a unique
// slug and at least one section.
func New(records []Pillar) (*Store, error) {
	s := &Store{
		ordered: records,
		bySlug:  make(map[string]*Pillar, len(records)),
	}
	for i := range records {
		p := &records[i]
		if p.Slug == "" {
			return nil, errors.New("pillar with empty slug")
		}
		if len(p.Sections) == 0 {
			return nil, errors.New("pillar " + p.Slug + " has no sections")
		}
		if _, dup := s.bySlug[p.Slug]; dup {
			return nil, errors.New("duplicate pillar slug " + p.Slug)
		}
		s.bySlug[p.Slug] = p
	}
	return s, nil
}

// NewDefault builds the store from the standard site content.
func NewDefault() *Store {
	s, err := New(defaultPillars())
	if err != nil {
		// The default table is compiled in; a constraint violation here is a
		// programming error.
		panic(err)
	}
	return s
}

// Resolve looks up a pillar by exact slug match.
func (s *Store) Resolve(slug string) (*Pillar, error) {
	p, ok := s.bySlug[slug]
	if !ok {
		metrics.PillarLookupsTotal.WithLabelValues("miss").Inc()
		return nil, ErrNotFound
	}
	metrics.PillarLookupsTotal.WithLabelValues("hit").Inc()
	return p, nil
}

// All returns the pillars in display order.
func (s *Store) All() []Pillar {
	return s.ordered
}
