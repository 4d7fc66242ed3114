package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"cubefour/internal/cube"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTooManyGames = errors.New("too many active games")
)

// Manager keeps the in-memory game sessions.
type Manager struct {
	mu          sync.RWMutex
	games       map[string]*Session
	defaultSize int
	maxGames    int

	// OnEvict, when set, is called with the ID of a game dropped to make
	// room. It runs with the manager locked and must not call back into it.
	OnEvict func(id string)
}

func NewManager(defaultSize, maxGames int) *Manager {
	if defaultSize <= 0 {
		defaultSize = cube.DefaultSize
	}
	return &Manager{
		games:       make(map[string]*Session),
		defaultSize: defaultSize,
		maxGames:    maxGames,
	}
}

// NewGame starts a session on an n-lattice (0 means the manager default).
// At capacity the least recently played finished game makes room; if every
// game is still running the call fails with ErrTooManyGames.
func (m *Manager) NewGame(n int) (*Session, error) {
	if n == 0 {
		n = m.defaultSize
	}
	g, err := cube.NewGameState(n)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := ""
	if m.maxGames > 0 && len(m.games) >= m.maxGames {
		if evicted = m.oldestFinishedLocked(); evicted == "" {
			return nil, ErrTooManyGames
		}
		delete(m.games, evicted)
		if m.OnEvict != nil {
			m.OnEvict(evicted)
		}
	}

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}
	m.games[s.ID] = s
	return s, nil
}

func (m *Manager) oldestFinishedLocked() string {
	var (
		id     string
		oldest time.Time
	)
	for k, s := range m.games {
		if !s.finished() {
			continue
		}
		if t := s.UpdatedAt(); id == "" || t.Before(oldest) {
			id, oldest = k, t
		}
	}
	return id
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

// Play looks up a session and applies one move to it.
func (m *Manager) Play(id string, c cube.Coord) (cube.MoveResult, error) {
	s, err := m.Get(id)
	if err != nil {
		return cube.MoveResult{}, err
	}
	return s.Play(c)
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
