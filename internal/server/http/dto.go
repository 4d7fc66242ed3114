package httpserver

import (
	"strconv"

	"cubefour/internal/cube"
)

// NewGameRequest may be empty; Size 0 picks the server default.
type NewGameRequest struct {
	Size int `json:"size"`
}

type PlayRequest struct {
	GameID string     `json:"game_id"`
	Cell   cube.Coord `json:"cell"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// GameView is the full renderer-facing picture of a game.
type GameView struct {
	GameID      string       `json:"game_id"`
	Size        int          `json:"size"`
	Position    string       `json:"position"`
	ToMove      string       `json:"to_move"`
	ActiveLevel int          `json:"active_level"`
	LegalMoves  []cube.Coord `json:"legal_moves"`
	Status      string       `json:"status"`
	Winner      string       `json:"winner,omitempty"`
	WinningLine []cube.Coord `json:"winning_line,omitempty"`
	Ply         int          `json:"ply"`
	Hash        string       `json:"hash"`   // hex; uint64 does not survive JS numbers
	Layers      []string     `json:"layers"` // LayerState per y, bottom first
}

type MoveResultDTO struct {
	Cell          cube.Coord   `json:"cell"`
	Player        string       `json:"player"`
	Outcome       string       `json:"outcome"`
	NextPlayer    string       `json:"next_player"`
	ActiveLevel   int          `json:"active_level"`
	LevelUnlocked bool         `json:"level_unlocked"`
	Winner        string       `json:"winner,omitempty"`
	WinningLine   []cube.Coord `json:"winning_line,omitempty"`
	Ply           int          `json:"ply"`
}

type PlayResponse struct {
	Result MoveResultDTO `json:"result"`
	State  GameView      `json:"state"`
}

// StreamMessage is what websocket subscribers receive after each move.
type StreamMessage struct {
	Type     string        `json:"type"`
	GameID   string        `json:"game_id"`
	Result   MoveResultDTO `json:"result"`
	Position string        `json:"position"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func playerString(p cube.Occupancy) string {
	if !p.IsPlayer() {
		return ""
	}
	return p.String()
}

func gameToView(id string, g *cube.GameState) GameView {
	layers := make([]string, g.Size())
	for y := range layers {
		layers[y] = g.LayerState(y).String()
	}
	legal := g.LegalMoves()
	if legal == nil {
		legal = []cube.Coord{}
	}
	return GameView{
		GameID:      id,
		Size:        g.Size(),
		Position:    g.Encode(),
		ToMove:      playerString(g.ActivePlayer()),
		ActiveLevel: g.ActiveLevel(),
		LegalMoves:  legal,
		Status:      g.Status().String(),
		Winner:      playerString(g.Winner()),
		WinningLine: g.WinningLine(),
		Ply:         g.Ply(),
		Hash:        strconv.FormatUint(g.Hash(), 16),
		Layers:      layers,
	}
}

func resultToDTO(r cube.MoveResult) MoveResultDTO {
	return MoveResultDTO{
		Cell:          r.Cell,
		Player:        playerString(r.Player),
		Outcome:       r.Outcome.String(),
		NextPlayer:    playerString(r.NextPlayer),
		ActiveLevel:   r.ActiveLevel,
		LevelUnlocked: r.LevelUnlocked,
		Winner:        playerString(r.Winner),
		WinningLine:   r.WinningLine,
		Ply:           r.Ply,
	}
}
