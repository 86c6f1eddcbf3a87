package pillars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ResolveKnownSlugs(t *testing.T) {
	store := NewDefault()

	for _, slug := range []string{"building", "caring", "education"} {
		t.Run(slug, func(t *testing.T) {
			p, err := store.Resolve(slug)
			require.NoError(t, err)
			assert.Equal(t, slug, p.Slug)
			assert.NotEmpty(t, p.Sections, "every pillar carries at least one section")
			assert.NotEmpty(t, p.Title)
		})
	}
}

func TestStore_ResolveDeterministic(t *testing.T) {
	store := NewDefault()

	first, err := store.Resolve("building")
	require.NoError(t, err)
	second, err := store.Resolve("building")
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated lookups return the same record")
}

func TestStore_ResolveUnknown(t *testing.T) {
	store := NewDefault()

	for _, slug := range []string{"", "nonexistent-slug", "BUILDING", "building/"} {
		_, err := store.Resolve(slug)
		assert.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}

func TestStore_AllPreservesOrder(t *testing.T) {
	store := NewDefault()

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "building", all[0].Slug)
	assert.Equal(t, "caring", all[1].Slug)
	assert.Equal(t, "education", all[2].Slug)
}

func TestNew_RejectsBadRecords(t *testing.T) {
	section := []Section{{Heading: "H", Body: "B"}}

	tests := []struct {
		name    string
		records []Pillar
	}{
		{"empty slug", []Pillar{{Slug: "", Title: "X", Sections: section}}},
		{"no sections", []Pillar{{Slug: "x", Title: "X"}}},
		{"duplicate slug", []Pillar{
			{Slug: "x", Title: "X", Sections: section},
			{Slug: "x", Title: "Y", Sections: section},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			assert.Error(t, err)
		})
	}
}

func TestDefaultContent_QuickPeekIconsKnown(t *testing.T) {
	for _, p := range NewDefault().All() {
		for _, qp := range p.QuickPeek {
			assert.True(t, qp.Icon.Known(), "pillar %s uses unknown icon %q", p.Slug, qp.Icon)
		}
	}
}
