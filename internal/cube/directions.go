package cube

// Direction is a unit step through the lattice.
type Direction struct {
	DX, DY, DZ int
}

func (d Direction) Negate() Direction {
	return Direction{DX: -d.DX, DY: -d.DY, DZ: -d.DZ}
}

// Lines holds one direction per lattice line through a cell: every non-zero
// vector in {-1,0,1}³ whose first non-zero component is positive. A vector
// and its negation describe the same line, so there are (27-1)/2 = 13.
var Lines = canonicalLines()

func canonicalLines() []Direction {
	var out []Direction
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				d := Direction{DX: dx, DY: dy, DZ: dz}
				if d.canonical() {
					out = append(out, d)
				}
			}
		}
	}
	return out
}

func (d Direction) canonical() bool {
	switch {
	case d.DX != 0:
		return d.DX > 0
	case d.DY != 0:
		return d.DY > 0
	default:
		return d.DZ > 0
	}
}

// Kind names the line family: "axis", "face" or "body" diagonal.
func (d Direction) Kind() string {
	nz := 0
	for _, v := range [3]int{d.DX, d.DY, d.DZ} {
		if v != 0 {
			nz++
		}
	}
	switch nz {
	case 1:
		return "axis"
	case 2:
		return "face"
	default:
		return "body"
	}
}
