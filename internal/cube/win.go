package cube

// runLength counts p's contiguous cells through c along d, c included.
// It returns how far the run extends on each side of c.
func runLength(l *Lattice, c Coord, p Occupancy, d Direction) (back, fwd int) {
	for k := 1; ; k++ {
		next := c.Add(d, k)
		if !l.InBounds(next) || l.cells[l.IndexOf(next)] != p {
			break
		}
		fwd++
	}
	for k := 1; ; k++ {
		next := c.Add(d, -k)
		if !l.InBounds(next) || l.cells[l.IndexOf(next)] != p {
			break
		}
		back++
	}
	return back, fwd
}

// FindRun looks for a run of at least need cells of colour p passing through c.
// Only cells on the 13 lines through c are inspected. The scan stops at the
// first qualifying line; the returned cells are ordered along that line.
func FindRun(l *Lattice, c Coord, p Occupancy, need int) ([]Coord, bool) {
	if !p.IsPlayer() || !l.InBounds(c) {
		return nil, false
	}
	for _, d := range Lines {
		back, fwd := runLength(l, c, p, d)
		count := 1 + back + fwd
		if count < need {
			continue
		}
		line := make([]Coord, 0, count)
		for k := -back; k <= fwd; k++ {
			line = append(line, c.Add(d, k))
		}
		return line, true
	}
	return nil, false
}

// FindAnyRun reports a run of need cells of colour p anywhere on the
// lattice. Unlike FindRun it scans every occupied cell; it is meant for
// validating decoded positions, not for move processing.
func FindAnyRun(l *Lattice, p Occupancy, need int) ([]Coord, bool) {
	for i, o := range l.cells {
		if o != p {
			continue
		}
		if line, ok := FindRun(l, l.CoordOf(i), p, need); ok {
			return line, true
		}
	}
	return nil, false
}
