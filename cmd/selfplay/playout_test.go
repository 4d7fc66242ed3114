package main

import (
	"testing"

	"cubefour/internal/cube"
)

func TestRandomPlayoutsTerminate(t *testing.T) {
	rng := newRand(7)
	var stats Stats
	for i := 0; i < 200; i++ {
		g, err := playGame(rng, 4)
		if err != nil {
			t.Fatal(err)
		}
		if !g.Status().Terminal() {
			t.Fatalf("game %d not finished", i)
		}
		if g.Ply() > 64 {
			t.Fatalf("game %d: %d plies on 64 cells", i, g.Ply())
		}
		if g.Hash() != g.CalculateHash() {
			t.Fatalf("game %d: hash drifted", i)
		}
		if g.Status() == cube.Won && len(g.WinningLine()) < cube.WinLength {
			t.Fatalf("game %d: short winning line %v", i, g.WinningLine())
		}
		stats.add(g)
	}
	if stats.WinsA+stats.WinsB+stats.Draws != stats.Games {
		t.Fatalf("stats do not add up: %+v", stats)
	}
	kinds := 0
	for _, n := range stats.ByLineKind {
		kinds += n
	}
	if kinds != stats.WinsA+stats.WinsB {
		t.Fatalf("line kinds %v vs %d wins", stats.ByLineKind, stats.WinsA+stats.WinsB)
	}
}

func TestTinyLatticeAlwaysDraws(t *testing.T) {
	rng := newRand(1)
	for i := 0; i < 20; i++ {
		g, err := playGame(rng, 3)
		if err != nil {
			t.Fatal(err)
		}
		if g.Status() != cube.Drawn || g.Ply() != 27 {
			t.Fatalf("3-lattice: status %v after %d plies", g.Status(), g.Ply())
		}
	}
}
