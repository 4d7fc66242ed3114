package main

import "cubefour/internal/cube"

func legalMask(position string) ([]int8, error) {
	g, err := cube.Decode(position)
	if err != nil {
		return nil, err
	}
	legal := g.LegalMask()
	out := make([]int8, len(legal))
	for i, ok := range legal {
		if ok {
			out[i] = 1
		}
	}
	return out, nil
}

func isLegal(position string, c cube.Coord) (bool, error) {
	g, err := cube.Decode(position)
	if err != nil {
		return false, err
	}
	return g.Validate(c) == nil, nil
}

func result(position string) int8 {
	g, err := cube.Decode(position)
	if err != nil {
		return -1
	}
	switch g.Status() {
	case cube.Won:
		return int8(g.Winner())
	case cube.Drawn:
		return 3
	default:
		return 0
	}
}

func main() {}
