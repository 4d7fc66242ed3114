package cube

import "errors"

var (
	ErrGameAlreadyWon = errors.New("game already won")
	ErrGameDrawn      = errors.New("game already drawn")
	ErrCellOccupied   = errors.New("cell occupied")
	ErrLevelLocked    = errors.New("level locked")
)

// GameState = lattice + whose turn + which level is open.
// It is not safe for concurrent use; callers serialise AttemptMove.
type GameState struct {
	lattice     *Lattice
	toMove      Occupancy
	activeLevel int
	status      Status
	winner      Occupancy
	winLine     []Coord
	ply         int
	hash        uint64
}

// NewGameState starts a game on an empty n×n×n lattice with PlayerA to move
// and only the top level (y = n-1) open.
func NewGameState(n int) (*GameState, error) {
	l, err := NewLattice(n)
	if err != nil {
		return nil, err
	}
	g := &GameState{
		lattice:     l,
		toMove:      PlayerA,
		activeLevel: n - 1,
		status:      InProgress,
	}
	g.hash = g.CalculateHash()
	return g, nil
}

func (g *GameState) Size() int               { return g.lattice.n }
func (g *GameState) ActivePlayer() Occupancy { return g.toMove }
func (g *GameState) ActiveLevel() int        { return g.activeLevel }
func (g *GameState) Status() Status          { return g.status }
func (g *GameState) Winner() Occupancy       { return g.winner }
func (g *GameState) Ply() int                { return g.ply }
func (g *GameState) Hash() uint64            { return g.hash }

// WinningLine returns the completed run once the game is won.
func (g *GameState) WinningLine() []Coord {
	return append([]Coord(nil), g.winLine...)
}

func (g *GameState) At(c Coord) Occupancy  { return g.lattice.At(c) }
func (g *GameState) IsLayerFull(y int) bool { return g.lattice.IsLayerFull(y) }
func (g *GameState) InBounds(c Coord) bool  { return g.lattice.InBounds(c) }

// LayerState classifies layer y relative to the active level.
func (g *GameState) LayerState(y int) LayerState {
	switch {
	case g.lattice.IsLayerFull(y):
		return LayerFilled
	case y == g.activeLevel && !g.status.Terminal():
		return LayerActive
	case y > g.activeLevel:
		return LayerFilled
	default:
		return LayerLocked
	}
}

// LegalMoves lists the empty cells of the active level, in index order.
// A finished game has none.
func (g *GameState) LegalMoves() []Coord {
	if g.status.Terminal() {
		return nil
	}
	n := g.lattice.n
	out := make([]Coord, 0, n*n-g.lattice.filled[g.activeLevel])
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			c := Coord{X: x, Y: g.activeLevel, Z: z}
			if g.lattice.cells[g.lattice.IndexOf(c)] == Empty {
				out = append(out, c)
			}
		}
	}
	return out
}

// LegalMask marks legal cells by lattice index (x·n²+y·n+z).
func (g *GameState) LegalMask() []bool {
	mask := make([]bool, g.lattice.NumCells())
	for _, c := range g.LegalMoves() {
		mask[g.lattice.IndexOf(c)] = true
	}
	return mask
}

// Validate reports why c would be rejected, without changing anything.
func (g *GameState) Validate(c Coord) error {
	if !g.lattice.InBounds(c) {
		return ErrOutOfBounds
	}
	switch g.status {
	case Won:
		return ErrGameAlreadyWon
	case Drawn:
		return ErrGameDrawn
	}
	// Levels fill top-down, so everything above the active level is already
	// occupied: a replayed cell reports as occupied, an empty cell off the
	// active level as locked.
	if g.lattice.cells[g.lattice.IndexOf(c)] != Empty {
		return ErrCellOccupied
	}
	if c.Y != g.activeLevel {
		return ErrLevelLocked
	}
	return nil
}

// AttemptMove claims c for the player to move. A rejected move leaves the
// state untouched.
func (g *GameState) AttemptMove(c Coord) (MoveResult, error) {
	if err := g.Validate(c); err != nil {
		return MoveResult{}, err
	}

	mover := g.toMove
	if err := g.lattice.Set(c, mover); err != nil {
		// Validate already covered every Set failure.
		return MoveResult{}, err
	}
	g.ply++
	g.hash ^= cellHashKey(g.lattice.IndexOf(c), mover)

	res := MoveResult{
		Cell:   c,
		Player: mover,
		Ply:    g.ply,
	}

	if line, ok := FindRun(g.lattice, c, mover, WinLength); ok {
		g.status = Won
		g.winner = mover
		g.winLine = line
		res.Outcome = OutcomeWon
		res.NextPlayer = g.toMove
		res.ActiveLevel = g.activeLevel
		res.Winner = mover
		res.WinningLine = append([]Coord(nil), line...)
		return res, nil
	}

	g.toMove = mover.Opponent()
	g.hash ^= sideHashKey

	if g.lattice.IsLayerFull(g.activeLevel) {
		if g.activeLevel > 0 {
			g.activeLevel--
			res.LevelUnlocked = true
		} else {
			g.status = Drawn
		}
	}

	res.NextPlayer = g.toMove
	res.ActiveLevel = g.activeLevel
	if g.status == Drawn {
		res.Outcome = OutcomeDrawn
	} else {
		res.Outcome = OutcomeAccepted
	}
	return res, nil
}

// Clone returns an independent copy of the game.
func (g *GameState) Clone() *GameState {
	out := *g
	out.lattice = g.lattice.Clone()
	out.winLine = append([]Coord(nil), g.winLine...)
	return &out
}
