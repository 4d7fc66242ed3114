package cube

import (
	"errors"
	"strconv"
	"strings"
)

// Text form: layers y=0..N-1 joined by '|', each layer's rows (x) joined by
// '/', each row lists z=0..N-1 with 'a'/'b' for claimed cells and a digit
// for a run of empty ones. Then the side to move and the active level:
//
//	5/5/5/5/5|5/5/5/5/5|5/5/5/5/5|5/5/5/5/5|5/5/5/5/5 a 4

var ErrInvalidEncoding = errors.New("invalid position encoding")

func (g *GameState) Encode() string {
	n := g.lattice.n
	var sb strings.Builder
	for y := 0; y < n; y++ {
		if y > 0 {
			sb.WriteByte('|')
		}
		for x := 0; x < n; x++ {
			if x > 0 {
				sb.WriteByte('/')
			}
			empty := 0
			for z := 0; z < n; z++ {
				o := g.lattice.cells[g.lattice.IndexOf(Coord{X: x, Y: y, Z: z})]
				if o == Empty {
					empty++
					continue
				}
				if empty > 0 {
					sb.WriteByte(byte('0' + empty))
					empty = 0
				}
				sb.WriteString(o.String())
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
			}
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(g.toMove.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.activeLevel))
	return sb.String()
}

// Decode parses an encoded position and rebuilds the full game state,
// including status and winner. Positions that cannot arise from legal play
// are rejected.
func Decode(s string) (*GameState, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, ErrInvalidEncoding
	}
	layers := strings.Split(parts[0], "|")
	n := len(layers)
	l, err := NewLattice(n)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	for y, layer := range layers {
		rows := strings.Split(layer, "/")
		if len(rows) != n {
			return nil, ErrInvalidEncoding
		}
		for x, row := range rows {
			z := 0
			for _, ch := range row {
				if z >= n {
					return nil, ErrInvalidEncoding
				}
				switch {
				case ch >= '1' && ch <= '9':
					z += int(ch - '0')
				case ch == 'a':
					_ = l.Set(Coord{X: x, Y: y, Z: z}, PlayerA)
					z++
				case ch == 'b':
					_ = l.Set(Coord{X: x, Y: y, Z: z}, PlayerB)
					z++
				default:
					return nil, ErrInvalidEncoding
				}
			}
			if z != n {
				return nil, ErrInvalidEncoding
			}
		}
	}

	var side Occupancy
	switch parts[1] {
	case "a":
		side = PlayerA
	case "b":
		side = PlayerB
	default:
		return nil, ErrInvalidEncoding
	}
	level, err := strconv.Atoi(parts[2])
	if err != nil || level < 0 || level >= n {
		return nil, ErrInvalidEncoding
	}

	return restore(l, side, level)
}

func restore(l *Lattice, side Occupancy, level int) (*GameState, error) {
	n := l.n
	for y := level + 1; y < n; y++ {
		if !l.IsLayerFull(y) {
			return nil, ErrInvalidEncoding
		}
	}
	for y := 0; y < level; y++ {
		if l.LayerCount(y) != 0 {
			return nil, ErrInvalidEncoding
		}
	}

	countA, countB := l.Count(PlayerA), l.Count(PlayerB)
	var lastMover Occupancy
	switch countA - countB {
	case 0:
		lastMover = PlayerB
	case 1:
		lastMover = PlayerA
	default:
		return nil, ErrInvalidEncoding
	}

	g := &GameState{
		lattice:     l,
		activeLevel: level,
		status:      InProgress,
		ply:         countA + countB,
	}

	lineA, wonA := FindAnyRun(l, PlayerA, WinLength)
	lineB, wonB := FindAnyRun(l, PlayerB, WinLength)
	switch {
	case wonA && wonB:
		return nil, ErrInvalidEncoding
	case wonA || wonB:
		winner, line := PlayerA, lineA
		if wonB {
			winner, line = PlayerB, lineB
		}
		if g.ply == 0 || winner != lastMover || side != winner {
			return nil, ErrInvalidEncoding
		}
		g.status = Won
		g.winner = winner
		g.winLine = line
	default:
		if side != lastMover.Opponent() {
			return nil, ErrInvalidEncoding
		}
		if l.IsLayerFull(level) {
			if level != 0 {
				return nil, ErrInvalidEncoding
			}
			g.status = Drawn
		}
	}
	g.toMove = side
	g.hash = g.CalculateHash()
	return g, nil
}
