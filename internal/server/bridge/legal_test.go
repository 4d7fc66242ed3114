package main

import (
	"testing"

	"cubefour/internal/cube"
)

func TestLegalMaskFromPosition(t *testing.T) {
	g, _ := cube.NewGameState(3)
	if _, err := g.AttemptMove(cube.Coord{X: 0, Y: 2, Z: 0}); err != nil {
		t.Fatal(err)
	}
	mask, err := legalMask(g.Encode())
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, v := range mask {
		count += int(v)
	}
	if len(mask) != 27 || count != 8 {
		t.Fatalf("mask len=%d count=%d", len(mask), count)
	}
	if mask[6] != 0 { // x·9 + y·3 + z
		t.Fatal("played cell (0,2,0) marked legal")
	}

	if _, err := legalMask("garbage"); err == nil {
		t.Fatal("garbage position decoded")
	}
}

func TestIsLegalAndResult(t *testing.T) {
	g, _ := cube.NewGameState(2)
	pos := g.Encode()
	if ok, err := isLegal(pos, cube.Coord{X: 1, Y: 1, Z: 1}); err != nil || !ok {
		t.Fatalf("top cell: %v %v", ok, err)
	}
	if ok, _ := isLegal(pos, cube.Coord{X: 1, Y: 0, Z: 1}); ok {
		t.Fatal("locked cell reported legal")
	}
	if r := result(pos); r != 0 {
		t.Fatalf("fresh result %d", r)
	}

	for !g.Status().Terminal() {
		g.AttemptMove(g.LegalMoves()[0])
	}
	if r := result(g.Encode()); r != 3 {
		t.Fatalf("full 2-lattice result %d want draw", r)
	}
	if r := result("nope"); r != -1 {
		t.Fatalf("bad position result %d", r)
	}
}
