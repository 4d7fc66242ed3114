package cube

import (
	"math/rand"
	"testing"
)

func TestHashIncrementalMatchesFullRecompute(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		g := newTestGame(t)
		if g.Hash() != g.CalculateHash() {
			t.Fatalf("initial hash mismatch")
		}
		seen := map[uint64]bool{g.Hash(): true}
		for !g.Status().Terminal() {
			moves := g.LegalMoves()
			mv := moves[r.Intn(len(moves))]
			if _, err := g.AttemptMove(mv); err != nil {
				t.Fatalf("game %d ply %d: %v", game, g.Ply(), err)
			}
			if got, want := g.Hash(), g.CalculateHash(); got != want {
				t.Fatalf("game %d ply %d: hash %x want %x", game, g.Ply(), got, want)
			}
			if seen[g.Hash()] {
				t.Fatalf("game %d ply %d: hash repeated within a game", game, g.Ply())
			}
			seen[g.Hash()] = true
		}
	}
}

func TestHashDistinguishesSideToMove(t *testing.T) {
	a := newTestGame(t)
	b := a.Clone()
	b.toMove = PlayerB
	if a.CalculateHash() == b.CalculateHash() {
		t.Fatal("side to move does not affect the hash")
	}
}
