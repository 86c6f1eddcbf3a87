package pillars

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"valuemed-backend/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFallbackSearcher(t *testing.T) *Searcher {
	t.Helper()
	return NewSearcher(NewDefault(), nil, "pillars", logger.NewTestLogger(t))
}

func TestSearcher_InMemoryFallback(t *testing.T) {
	s := newFallbackSearcher(t)

	hits, err := s.Search(context.Background(), "NABH", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		assert.NotEmpty(t, h.Slug)
		assert.NotEmpty(t, h.Heading)
	}
}

func TestSearcher_FallbackMatchesTitle(t *testing.T) {
	s := newFallbackSearcher(t)

	// "Building" appears only as the pillar title, not in any section or
	// FAQ body, so this hit depends on titles being searched.
	hits, err := s.Search(context.Background(), "Building", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		assert.Equal(t, "building", h.Slug)
	}
}

func TestSearcher_CaseInsensitive(t *testing.T) {
	s := newFallbackSearcher(t)

	lower, err := s.Search(context.Background(), "accreditation", 20)
	require.NoError(t, err)
	upper, err := s.Search(context.Background(), "ACCREDITATION", 20)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSearcher_SizeLimit(t *testing.T) {
	s := newFallbackSearcher(t)

	hits, err := s.Search(context.Background(), "the", 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(hits), 2)
}

func TestSearcher_EmptyQuery(t *testing.T) {
	s := newFallbackSearcher(t)

	hits, err := s.Search(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearcher_NoMatches(t *testing.T) {
	s := newFallbackSearcher(t)

	hits, err := s.Search(context.Background(), "zzzzzz-no-such-term", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Feasibility & Planning", "feasibility--planning"},
		{"What about NABH?", "what-about-nabh"},
		{"  spaced  ", "spaced"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), tt.in)
	}
}

func TestSnippet(t *testing.T) {
	short := "short body"
	assert.Equal(t, short, snippet(short))

	long := ""
	for i := 0; i < 40; i++ {
		long += "word "
	}
	got := snippet(long)
	assert.LessOrEqual(t, len(got), 170)
	assert.Contains(t, got, "…")
}

func TestSnippet_CutOnRuneBoundary(t *testing.T) {
	// 60 three-byte runes and no spaces: a byte cut at 160 lands inside
	// the 54th rune.
	noSpaces := strings.Repeat("健", 60)
	got := snippet(noSpaces)
	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "…")

	// A multi-byte dash straddling byte 160 exactly.
	straddle := strings.Repeat("x", 159) + "–" + strings.Repeat("x", 10)
	got = snippet(straddle)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("x", 159)+"…", got)
}
