package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-movie-discovery/internal/models"
)

func TestStateDiscardsSupersededResults(t *testing.T) {
	var st State

	slowGen := st.Begin(models.FilterSelection{Mood: "wistful"})
	fastGen := st.Begin(models.FilterSelection{Mood: "chaotic"})

	// The newer search finishes first.
	require.True(t, st.Commit(fastGen, []models.ScoredMovie{{Movie: models.Movie{ID: 2}}}))

	// The superseded search finishes late; its results must not land.
	assert.False(t, st.Commit(slowGen, []models.ScoredMovie{{Movie: models.Movie{ID: 1}}}))

	filters, movies := st.Current()
	assert.Equal(t, "chaotic", filters.Mood)
	require.Len(t, movies, 1)
	assert.Equal(t, 2, movies[0].ID)
}

func TestStateClearInvalidatesInFlightSearches(t *testing.T) {
	var st State

	gen := st.Begin(models.FilterSelection{Mood: "chill"})
	st.Clear()

	assert.False(t, st.Commit(gen, []models.ScoredMovie{{Movie: models.Movie{ID: 7}}}))
	_, movies := st.Current()
	assert.Empty(t, movies)
}

func TestManagerReturnsSameStatePerUser(t *testing.T) {
	m := NewManager()

	a := m.Get("user-a")
	assert.Same(t, a, m.Get("user-a"))
	assert.NotSame(t, a, m.Get("user-b"))
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st := m.Get("shared")
			gen := st.Begin(models.FilterSelection{Mood: "hopeful"})
			st.Commit(gen, nil)
		}()
	}
	wg.Wait()

	filters, _ := m.Get("shared").Current()
	assert.Equal(t, "hopeful", filters.Mood)
}
