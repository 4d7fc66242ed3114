package main

import (
	"fmt"
	"math/rand"

	"cubefour/internal/cube"
)

// Stats aggregates the results of a batch of random playouts.
type Stats struct {
	Games      int
	WinsA      int
	WinsB      int
	Draws      int
	Plies      int
	ByLineKind map[string]int // winning line kind: axis / face / body
}

func (s *Stats) add(g *cube.GameState) {
	s.Games++
	s.Plies += g.Ply()
	switch g.Status() {
	case cube.Drawn:
		s.Draws++
	case cube.Won:
		if g.Winner() == cube.PlayerA {
			s.WinsA++
		} else {
			s.WinsB++
		}
		if s.ByLineKind == nil {
			s.ByLineKind = make(map[string]int)
		}
		s.ByLineKind[lineKind(g.WinningLine())]++
	}
}

func lineKind(line []cube.Coord) string {
	if len(line) < 2 {
		return "?"
	}
	d := cube.Direction{
		DX: line[1].X - line[0].X,
		DY: line[1].Y - line[0].Y,
		DZ: line[1].Z - line[0].Z,
	}
	return d.Kind()
}

// playGame plays uniformly random legal moves until the game ends.
func playGame(rng *rand.Rand, n int) (*cube.GameState, error) {
	g, err := cube.NewGameState(n)
	if err != nil {
		return nil, err
	}
	for !g.Status().Terminal() {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			return nil, fmt.Errorf("no legal moves in live position %s", g.Encode())
		}
		if _, err := g.AttemptMove(moves[rng.Intn(len(moves))]); err != nil {
			return nil, fmt.Errorf("legal move rejected: %w", err)
		}
	}
	return g, nil
}

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
