package session

import "sync"

// HighScoreStore persists the single best total score across sessions.
// storage.Store implements it on SQLite.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryStore keeps the high score in memory. It is the default store and
// is safe for concurrent use by SSH sessions.
type MemoryStore struct {
	mu    sync.Mutex
	score int
}

// LoadHighScore returns the stored score.
func (m *MemoryStore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// SaveHighScore replaces the stored score.
func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}
