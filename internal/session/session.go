package session

import (
	"sync"

	"mood-movie-discovery/internal/models"
)

// State holds one user's current discovery session: the active filter
// selection and the result list it produced. Searches run as asynchronous
// tasks, so a slow search can finish after a newer one started; every
// search takes a generation number at Begin and may only Commit results
// while its generation is still current.
type State struct {
	mu         sync.Mutex
	generation uint64
	filters    models.FilterSelection
	movies     []models.ScoredMovie
}

// Begin records a new filter selection and returns the generation number
// the caller must present at Commit. Any in-flight search with an older
// generation is implicitly superseded.
func (s *State) Begin(filters models.FilterSelection) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.filters = filters
	s.movies = nil
	return s.generation
}

// Commit installs results for the given generation. Late results from a
// superseded generation are discarded; the return value reports whether
// the commit took effect.
func (s *State) Commit(generation uint64, movies []models.ScoredMovie) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.movies = movies
	return true
}

// Current returns the active filters and result list.
func (s *State) Current() (models.FilterSelection, []models.ScoredMovie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters, s.movies
}

// Clear resets the session to its initial state.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.filters = models.FilterSelection{}
	s.movies = nil
}

// Manager hands out per-user session state, created lazily.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*State
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// Get returns the session state for a user scope, creating it if needed.
func (m *Manager) Get(userScope string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[userScope]
	if !ok {
		st = &State{}
		m.sessions[userScope] = st
	}
	return st
}
