package cube

import "fmt"

// Occupancy is the state of a single lattice cell. It doubles as the
// player tag: PlayerA and PlayerB are the only values a cell can be claimed with.
type Occupancy int8

const (
	Empty   Occupancy = 0
	PlayerA Occupancy = 1
	PlayerB Occupancy = 2
)

func (o Occupancy) String() string {
	switch o {
	case Empty:
		return "empty"
	case PlayerA:
		return "a"
	case PlayerB:
		return "b"
	default:
		return fmt.Sprintf("occupancy(%d)", int8(o))
	}
}

// IsPlayer reports whether o names one of the two players.
func (o Occupancy) IsPlayer() bool {
	return o == PlayerA || o == PlayerB
}

// Opponent returns the other player; Empty stays Empty.
func (o Occupancy) Opponent() Occupancy {
	switch o {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Coord addresses one cell. Y is the level (layer) axis.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Add returns c shifted k steps along d.
func (c Coord) Add(d Direction, k int) Coord {
	return Coord{X: c.X + d.DX*k, Y: c.Y + d.DY*k, Z: c.Z + d.DZ*k}
}

// Status is the game's state-machine state.
type Status int8

const (
	InProgress Status = iota
	Won
	Drawn
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return fmt.Sprintf("status(%d)", int8(s))
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool { return s == Won || s == Drawn }

// Outcome classifies an accepted move.
type Outcome int8

const (
	OutcomeAccepted Outcome = iota
	OutcomeWon
	OutcomeDrawn
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeWon:
		return "won"
	case OutcomeDrawn:
		return "drawn"
	default:
		return fmt.Sprintf("outcome(%d)", int8(o))
	}
}

// LayerState is how a renderer should treat a whole y-layer.
type LayerState int8

const (
	LayerLocked LayerState = iota // below the active level, not playable yet
	LayerActive                   // the only playable layer
	LayerFilled                   // fully occupied
)

func (s LayerState) String() string {
	switch s {
	case LayerLocked:
		return "locked"
	case LayerActive:
		return "active"
	case LayerFilled:
		return "filled"
	default:
		return fmt.Sprintf("layer(%d)", int8(s))
	}
}

// MoveResult describes what an accepted move changed.
type MoveResult struct {
	Cell          Coord
	Player        Occupancy // who moved
	Outcome       Outcome
	NextPlayer    Occupancy // player to move after this one; unchanged on a win
	ActiveLevel   int
	LevelUnlocked bool // the move filled the active level and the next one down opened
	Winner        Occupancy
	WinningLine   []Coord // cells of the completed run, ordered along the line
	Ply           int     // number of accepted moves including this one
}
