package cube

import "errors"

const (
	DefaultSize = 5
	MaxSize     = 9 // one digit per empty run in the text encoding

	WinLength = 4
)

var (
	ErrInvalidSize     = errors.New("invalid lattice size")
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrAlreadyOccupied = errors.New("cell already occupied")
	ErrInvalidPlayer   = errors.New("invalid player")
)

// Lattice is an N×N×N grid of cells addressed by x·N² + y·N + z.
// A cell, once claimed, is never overwritten or cleared.
type Lattice struct {
	n      int
	cells  []Occupancy
	filled []int // occupied cells per y-layer
}

func NewLattice(n int) (*Lattice, error) {
	if n < 1 || n > MaxSize {
		return nil, ErrInvalidSize
	}
	return &Lattice{
		n:      n,
		cells:  make([]Occupancy, n*n*n),
		filled: make([]int, n),
	}, nil
}

// Size returns N.
func (l *Lattice) Size() int { return l.n }

// NumCells returns N³.
func (l *Lattice) NumCells() int { return len(l.cells) }

func (l *Lattice) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.n && c.Y >= 0 && c.Y < l.n && c.Z >= 0 && c.Z < l.n
}

// IndexOf maps a coordinate to its flat index. The caller must pass an
// in-bounds coordinate.
func (l *Lattice) IndexOf(c Coord) int {
	return c.X*l.n*l.n + c.Y*l.n + c.Z
}

// CoordOf is the inverse of IndexOf.
func (l *Lattice) CoordOf(i int) Coord {
	return Coord{X: i / (l.n * l.n), Y: (i / l.n) % l.n, Z: i % l.n}
}

// At returns the occupancy of c; out-of-bounds coordinates read as Empty.
func (l *Lattice) At(c Coord) Occupancy {
	if !l.InBounds(c) {
		return Empty
	}
	return l.cells[l.IndexOf(c)]
}

// Set claims c for p.
func (l *Lattice) Set(c Coord, p Occupancy) error {
	if !l.InBounds(c) {
		return ErrOutOfBounds
	}
	if !p.IsPlayer() {
		return ErrInvalidPlayer
	}
	idx := l.IndexOf(c)
	if l.cells[idx] != Empty {
		return ErrAlreadyOccupied
	}
	l.cells[idx] = p
	l.filled[c.Y]++
	return nil
}

// IsLayerFull reports whether every cell with the given y is occupied.
func (l *Lattice) IsLayerFull(y int) bool {
	if y < 0 || y >= l.n {
		return false
	}
	return l.filled[y] == l.n*l.n
}

// LayerCount returns the number of occupied cells in layer y.
func (l *Lattice) LayerCount(y int) int {
	if y < 0 || y >= l.n {
		return 0
	}
	return l.filled[y]
}

// Count returns how many cells p holds.
func (l *Lattice) Count(p Occupancy) int {
	n := 0
	for _, o := range l.cells {
		if o == p {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (l *Lattice) Clone() *Lattice {
	out := &Lattice{
		n:      l.n,
		cells:  make([]Occupancy, len(l.cells)),
		filled: make([]int, len(l.filled)),
	}
	copy(out.cells, l.cells)
	copy(out.filled, l.filled)
	return out
}
