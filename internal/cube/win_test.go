package cube

import (
	"math/rand"
	"testing"
)

// lineCells returns four colinear in-bounds cells of a 5-lattice along d.
func lineCells(d Direction) []Coord {
	start := func(v int) int {
		switch {
		case v > 0:
			return 0
		case v < 0:
			return 4
		default:
			return 2
		}
	}
	s := Coord{X: start(d.DX), Y: start(d.DY), Z: start(d.DZ)}
	out := make([]Coord, 4)
	for i := range out {
		out[i] = s.Add(d, i)
	}
	return out
}

func TestFindRunAlongEveryLineFromEveryCell(t *testing.T) {
	for _, d := range Lines {
		cells := lineCells(d)
		for last := range cells {
			l, _ := NewLattice(DefaultSize)
			for _, c := range cells {
				if err := l.Set(c, PlayerB); err != nil {
					t.Fatalf("%v: set %v: %v", d, c, err)
				}
			}
			line, ok := FindRun(l, cells[last], PlayerB, WinLength)
			if !ok {
				t.Fatalf("%s line %v: no run found from cell %d", d.Kind(), d, last)
			}
			if len(line) != 4 {
				t.Fatalf("%v: run length %d", d, len(line))
			}
			want := map[Coord]bool{}
			for _, c := range cells {
				want[c] = true
			}
			for _, c := range line {
				if !want[c] {
					t.Fatalf("%v: unexpected cell %v in %v", d, c, line)
				}
			}
			if _, ok := FindRun(l, cells[last], PlayerA, WinLength); ok {
				t.Fatalf("%v: run reported for the other colour", d)
			}
		}
	}
}

func TestFindRunThresholdBoundary(t *testing.T) {
	for _, d := range Lines {
		cells := lineCells(d)
		l, _ := NewLattice(DefaultSize)
		for _, c := range cells[:3] {
			_ = l.Set(c, PlayerA)
		}
		for _, c := range cells[:3] {
			if _, ok := FindRun(l, c, PlayerA, WinLength); ok {
				t.Fatalf("%v: three cells counted as a win", d)
			}
		}

		// an opposing cell breaks the line
		blocked := l.Clone()
		_ = blocked.Set(cells[3], PlayerB)
		if _, ok := FindRun(blocked, cells[2], PlayerA, WinLength); ok {
			t.Fatalf("%v: run crossed an opposing cell", d)
		}

		_ = l.Set(cells[3], PlayerA)
		if _, ok := FindRun(l, cells[3], PlayerA, WinLength); !ok {
			t.Fatalf("%v: fourth cell did not win", d)
		}
	}
}

func TestFindRunCountsBothSidesOnce(t *testing.T) {
	// a _ X _ a pattern: placing the middle of "a a [a] a" joins both halves
	l, _ := NewLattice(DefaultSize)
	for _, z := range []int{0, 1, 3} {
		_ = l.Set(Coord{X: 2, Y: 4, Z: z}, PlayerA)
	}
	mid := Coord{X: 2, Y: 4, Z: 2}
	if _, ok := FindRun(l, mid, PlayerA, 5); ok {
		t.Fatal("four cells reported as a run of five")
	}
	_ = l.Set(mid, PlayerA)
	line, ok := FindRun(l, mid, PlayerA, WinLength)
	if !ok || len(line) != 4 {
		t.Fatalf("got line=%v ok=%v", line, ok)
	}
	if line[0] != (Coord{X: 2, Y: 4, Z: 0}) || line[3] != (Coord{X: 2, Y: 4, Z: 3}) {
		t.Fatalf("line not ordered along the direction: %v", line)
	}
}

// slowHasRun checks every window of need cells through c in all 26 signed
// directions.
func slowHasRun(l *Lattice, c Coord, p Occupancy, need int) bool {
	n := l.Size()
	in := func(v Coord) bool {
		return v.X >= 0 && v.X < n && v.Y >= 0 && v.Y < n && v.Z >= 0 && v.Z < n
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				d := Direction{DX: dx, DY: dy, DZ: dz}
				for off := -(need - 1); off <= 0; off++ {
					hit := 0
					for k := 0; k < need; k++ {
						v := c.Add(d, off+k)
						if !in(v) {
							break
						}
						if v == c || l.At(v) == p {
							hit++
						}
					}
					if hit == need {
						return true
					}
				}
			}
		}
	}
	return false
}

func TestFindRunMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 300; trial++ {
		l, _ := NewLattice(DefaultSize)
		for i := 0; i < l.NumCells(); i++ {
			switch r.Intn(3) {
			case 1:
				_ = l.Set(l.CoordOf(i), PlayerA)
			case 2:
				_ = l.Set(l.CoordOf(i), PlayerB)
			}
		}
		for i := 0; i < l.NumCells(); i++ {
			c := l.CoordOf(i)
			for _, p := range []Occupancy{PlayerA, PlayerB} {
				_, got := FindRun(l, c, p, WinLength)
				want := slowHasRun(l, c, p, WinLength)
				if got != want {
					t.Fatalf("trial %d cell %v player %v: FindRun=%v brute=%v", trial, c, p, got, want)
				}
			}
		}
	}
}
