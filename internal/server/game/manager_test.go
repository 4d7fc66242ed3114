package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"cubefour/internal/cube"
)

func TestNewGameAndGet(t *testing.T) {
	m := NewManager(0, 10)
	s, err := m.NewGame(0)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", s.ID, err)
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get: %v %v", got, err)
	}
	s.View(func(g *cube.GameState) {
		if g.Size() != cube.DefaultSize {
			t.Fatalf("size %d", g.Size())
		}
	})
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get(nope): %v", err)
	}
	if _, err := m.NewGame(cube.MaxSize + 1); !errors.Is(err, cube.ErrInvalidSize) {
		t.Fatalf("oversized game: %v", err)
	}
}

func TestPlayRoutesToSession(t *testing.T) {
	m := NewManager(3, 10)
	s, _ := m.NewGame(0)
	res, err := m.Play(s.ID, cube.Coord{X: 0, Y: 2, Z: 0})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.Player != cube.PlayerA || res.NextPlayer != cube.PlayerB {
		t.Fatalf("result: %+v", res)
	}
	if _, err := m.Play(s.ID, cube.Coord{X: 0, Y: 2, Z: 0}); !errors.Is(err, cube.ErrCellOccupied) {
		t.Fatalf("replay: %v", err)
	}
	if _, err := m.Play("missing", cube.Coord{}); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("missing game: %v", err)
	}
}

func TestConcurrentMovesAreSerialised(t *testing.T) {
	m := NewManager(5, 10)
	s, _ := m.NewGame(0)

	// every goroutine races for the same cell: exactly one may win it
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Play(cube.Coord{X: 2, Y: 4, Z: 2}); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if accepted != 1 {
		t.Fatalf("accepted %d moves on one cell", accepted)
	}
	if snap := s.Snapshot(); snap.Ply() != 1 {
		t.Fatalf("ply %d", snap.Ply())
	}
}

func TestCapacityEvictsFinishedGames(t *testing.T) {
	m := NewManager(1, 2)
	var evicted []string
	m.OnEvict = func(id string) { evicted = append(evicted, id) }

	a, _ := m.NewGame(0)
	b, _ := m.NewGame(0)
	if _, err := m.NewGame(0); !errors.Is(err, ErrTooManyGames) {
		t.Fatalf("third game with none finished: %v", err)
	}

	// a 1-lattice ends in a draw after its only move
	if res, err := a.Play(cube.Coord{}); err != nil || res.Outcome != cube.OutcomeDrawn {
		t.Fatalf("finish a: %+v %v", res, err)
	}
	c, err := m.NewGame(0)
	if err != nil {
		t.Fatalf("NewGame after finish: %v", err)
	}
	if len(evicted) != 1 || evicted[0] != a.ID {
		t.Fatalf("evicted %v want [%s]", evicted, a.ID)
	}
	if _, err := m.Get(a.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatal("finished game still present")
	}
	for _, s := range []*Session{b, c} {
		if _, err := m.Get(s.ID); err != nil {
			t.Fatalf("lost live game %s", s.ID)
		}
	}
	if m.Len() != 2 {
		t.Fatalf("len %d", m.Len())
	}
	if err := m.Delete(b.ID); err != nil || m.Len() != 1 {
		t.Fatalf("Delete: %v len=%d", err, m.Len())
	}
	if err := m.Delete(b.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("double Delete: %v", err)
	}
}
