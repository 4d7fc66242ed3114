package main

import (
	"flag"
	"fmt"
	"os"

	"cubefour/internal/cube"
)

func main() {
	position := flag.String("position", "", "encoded position to analyse (default: a fresh game)")
	size := flag.Int("size", cube.DefaultSize, "lattice size for a fresh game")
	flag.Parse()

	var (
		g   *cube.GameState
		err error
	)
	if *position != "" {
		g, err = cube.Decode(*position)
	} else {
		g, err = cube.NewGameState(*size)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Position:", g.Encode())
	fmt.Printf("Hash: %016x\n", g.Hash())
	fmt.Println("Status:", g.Status(), "To move:", g.ActivePlayer(), "Active level:", g.ActiveLevel())
	if g.Status() == cube.Won {
		fmt.Println("Winner:", g.Winner(), "Line:", g.WinningLine())
	}
	for y := g.Size() - 1; y >= 0; y-- {
		fmt.Printf("Layer %d: %s\n", y, g.LayerState(y))
	}

	fmt.Println("Lines:", len(cube.Lines))
	for _, d := range cube.Lines {
		fmt.Printf("  %+d %+d %+d  %s\n", d.DX, d.DY, d.DZ, d.Kind())
	}

	moves := g.LegalMoves()
	fmt.Println("Legal moves:", len(moves))
	for _, c := range moves {
		fmt.Print(" ", c)
	}
	fmt.Println()
}
