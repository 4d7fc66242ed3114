package game

import (
	"sync"
	"time"

	"cubefour/internal/cube"
)

// Session is one game plus the lock that makes its moves one logical turn
// at a time.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *cube.GameState
	updatedAt time.Time
}

// Play applies a move under the session lock.
func (s *Session) Play(c cube.Coord) (cube.MoveResult, error) {
	return s.PlayThen(c, nil)
}

// PlayThen applies a move and, if it was accepted, runs then on the new
// state before the lock is released. Work done in then is ordered the same
// way as the moves.
func (s *Session) PlayThen(c cube.Coord, then func(g *cube.GameState, res cube.MoveResult)) (cube.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.game.AttemptMove(c)
	if err != nil {
		return res, err
	}
	s.updatedAt = time.Now()
	if then != nil {
		then(s.game, res)
	}
	return res, nil
}

// View runs fn with the game locked. fn must not keep the pointer.
func (s *Session) View(fn func(g *cube.GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Snapshot returns a private copy of the game.
func (s *Session) Snapshot() *cube.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func (s *Session) finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status().Terminal()
}
