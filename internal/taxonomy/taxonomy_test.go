package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMoods(t *testing.T) {
	cat := NewCatalog()

	expected := []string{
		"wistful", "chaotic", "heartbroken", "hopeful", "nostalgic",
		"chill", "romantic", "adventurous", "inspired", "reflective",
	}
	assert.Len(t, cat.Moods, len(expected))
	for _, id := range expected {
		p, ok := cat.Mood(id)
		require.True(t, ok, "mood %q missing", id)
		assert.NotEmpty(t, p.Genres, "mood %q has no genre affinities", id)
		assert.NotEmpty(t, p.VibeDescription, "mood %q has no description", id)
		assert.NotEmpty(t, p.SortBy)
	}

	_, ok := cat.Mood("melancholy")
	assert.False(t, ok)
}

func TestCatalogWatchContexts(t *testing.T) {
	cat := NewCatalog()

	for _, id := range []string{"solo", "date", "friends", "family"} {
		p, ok := cat.WatchContext(id)
		require.True(t, ok, "watch context %q missing", id)
		assert.NotEmpty(t, p.Description)
	}

	family, _ := cat.WatchContext("family")
	assert.Equal(t, "US", family.CertificationCountry)
	assert.Equal(t, "G|PG", family.Certification)
}

func TestCatalogGenreKeywordsCoverAllGenres(t *testing.T) {
	cat := NewCatalog()

	for _, g := range cat.Genres {
		if g.ID == 10770 { // TV Movie has no keyword affinities
			continue
		}
		assert.NotEmpty(t, cat.GenreKeywords[g.ID], "genre %s has no keywords", g.Name)
	}
}

func TestCatalogCuratedPathsReferenceKnownTaxa(t *testing.T) {
	cat := NewCatalog()
	require.NotEmpty(t, cat.CuratedPaths)

	for _, p := range cat.CuratedPaths {
		_, ok := cat.Mood(p.Mood)
		assert.True(t, ok, "path %s references unknown mood %q", p.ID, p.Mood)
		_, ok = cat.WatchContext(p.WatchingWith)
		assert.True(t, ok, "path %s references unknown context %q", p.ID, p.WatchingWith)
		for _, d := range p.Decades {
			assert.Contains(t, cat.Decades, d)
		}
	}

	got, ok := cat.Path("rainy-afternoon")
	require.True(t, ok)
	assert.Equal(t, "chill", got.Mood)

	_, ok = cat.Path("nope")
	assert.False(t, ok)
}
