package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"cubefour/internal/cube"
)

// TestCase is one position a renderer can check its highlighting against.
type TestCase struct {
	Position    string       `json:"position"`
	Size        int          `json:"size"`
	ToMove      string       `json:"to_move"`
	ActiveLevel int          `json:"active_level"`
	Status      string       `json:"status"`
	Layers      []string     `json:"layers"`
	Mask        []int8       `json:"mask"` // lattice index order, 1 = playable
	WinningLine []cube.Coord `json:"winning_line,omitempty"`
}

func toCase(g *cube.GameState) TestCase {
	layers := make([]string, g.Size())
	for y := range layers {
		layers[y] = g.LayerState(y).String()
	}
	legal := g.LegalMask()
	mask := make([]int8, len(legal))
	for i, ok := range legal {
		if ok {
			mask[i] = 1
		}
	}
	return TestCase{
		Position:    g.Encode(),
		Size:        g.Size(),
		ToMove:      g.ActivePlayer().String(),
		ActiveLevel: g.ActiveLevel(),
		Status:      g.Status().String(),
		Layers:      layers,
		Mask:        mask,
		WinningLine: g.WinningLine(),
	}
}

func main() {
	numGames := flag.Int("games", 10, "random games to sample")
	size := flag.Int("size", cube.DefaultSize, "lattice size")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var testCases []TestCase

	for i := 0; i < *numGames; i++ {
		g, err := cube.NewGameState(*size)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for {
			testCases = append(testCases, toCase(g))
			if g.Status().Terminal() {
				break
			}
			moves := g.LegalMoves()
			if _, err := g.AttemptMove(moves[rng.Intn(len(moves))]); err != nil {
				fmt.Fprintln(os.Stderr, "legal move rejected:", err)
				os.Exit(1)
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, file, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
