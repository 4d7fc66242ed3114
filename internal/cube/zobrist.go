package cube

// Zobrist-style keys. Lattice size varies per game, so keys are derived on
// the fly from the cell index with splitmix64 instead of a fixed table.

const zobristSeed = uint64(0x9E3779B97F4A7C15)

func splitmix64(x uint64) uint64 {
	x += zobristSeed
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

var sideHashKey = splitmix64(^uint64(0))

func cellHashKey(idx int, p Occupancy) uint64 {
	if !p.IsPlayer() || idx < 0 {
		return 0
	}
	return splitmix64(uint64(idx)<<1 | uint64(p-1))
}

// CalculateHash recomputes the position hash from scratch.
func (g *GameState) CalculateHash() uint64 {
	var h uint64
	for i, o := range g.lattice.cells {
		if o == Empty {
			continue
		}
		h ^= cellHashKey(i, o)
	}
	if g.toMove == PlayerB {
		h ^= sideHashKey
	}
	return h
}
