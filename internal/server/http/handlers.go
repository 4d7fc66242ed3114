package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"cubefour/internal/cube"
	"cubefour/internal/platform/logger"
	"cubefour/internal/platform/metrics"
	"cubefour/internal/server/game"
	"cubefour/internal/server/stream"
)

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	games   *game.Manager
	hub     *stream.Hub
	metrics *metrics.Collector
	log     *zap.Logger
}

// NewHandler wires the API. hub and m may be nil.
func NewHandler(games *game.Manager, hub *stream.Hub, m *metrics.Collector, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{games: games, hub: hub, metrics: m, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/play":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlay(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/legal":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleLegal(w, r)

	case "/api/stream":
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleStream(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// an empty body asks for the default size
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}

	s, err := h.games.NewGame(req.Size)
	if err != nil {
		status, reason := classify(err)
		writeError(w, status, reason, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordGameStarted()
	}

	var view GameView
	s.View(func(g *cube.GameState) { view = gameToView(s.ID, g) })
	logger.Event(h.log, "game_started", s.ID, zap.Int("size", view.Size))
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}

	s, err := h.games.Get(req.GameID)
	if err != nil {
		status, reason := classify(err)
		writeError(w, status, reason, err)
		return
	}

	var view GameView
	res, err := s.PlayThen(req.Cell, func(g *cube.GameState, res cube.MoveResult) {
		view = gameToView(s.ID, g)
		// publish under the session lock so subscribers see moves in order
		if h.hub != nil {
			h.hub.Publish(s.ID, StreamMessage{
				Type:     "move",
				GameID:   s.ID,
				Result:   resultToDTO(res),
				Position: view.Position,
			})
		}
	})
	if err != nil {
		status, reason := classify(err)
		if h.metrics != nil {
			h.metrics.RecordRejection(reason)
		}
		h.log.Debug("move rejected",
			zap.String("game_id", s.ID),
			zap.Stringer("cell", req.Cell),
			zap.String("reason", reason))
		writeError(w, status, reason, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordMove(res.Outcome == cube.OutcomeWon, res.Outcome == cube.OutcomeDrawn)
	}
	switch res.Outcome {
	case cube.OutcomeWon:
		logger.Event(h.log, "game_won", s.ID,
			zap.Stringer("winner", res.Winner),
			zap.Int("ply", res.Ply))
	case cube.OutcomeDrawn:
		logger.Event(h.log, "game_drawn", s.ID, zap.Int("ply", res.Ply))
	default:
		h.log.Debug("move accepted",
			zap.String("game_id", s.ID),
			zap.Stringer("cell", res.Cell),
			zap.Stringer("player", res.Player),
			zap.Bool("level_unlocked", res.LevelUnlocked))
	}

	writeJSON(w, http.StatusOK, PlayResponse{Result: resultToDTO(res), State: view})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	h.writeView(w, req.GameID)
}

func (h *Handler) handleLegal(w http.ResponseWriter, r *http.Request) {
	s, err := h.games.Get(r.URL.Query().Get("game_id"))
	if err != nil {
		status, reason := classify(err)
		writeError(w, status, reason, err)
		return
	}
	legal := s.Snapshot().LegalMoves()
	if legal == nil {
		legal = []cube.Coord{}
	}
	writeJSON(w, http.StatusOK, legal)
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("game_id")
	if _, err := h.games.Get(id); err != nil {
		status, reason := classify(err)
		writeError(w, status, reason, err)
		return
	}
	if h.hub == nil {
		http.Error(w, "stream disabled", http.StatusServiceUnavailable)
		return
	}
	h.hub.Serve(w, r, id)
}

func (h *Handler) writeView(w http.ResponseWriter, id string) {
	s, err := h.games.Get(id)
	if err != nil {
		status, reason := classify(err)
		writeError(w, status, reason, err)
		return
	}
	var view GameView
	s.View(func(g *cube.GameState) { view = gameToView(s.ID, g) })
	writeJSON(w, http.StatusOK, view)
}

// classify maps an error to an HTTP status and a stable reason code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, cube.ErrCellOccupied):
		return http.StatusConflict, "cell_occupied"
	case errors.Is(err, cube.ErrLevelLocked):
		return http.StatusConflict, "level_locked"
	case errors.Is(err, cube.ErrGameAlreadyWon):
		return http.StatusConflict, "game_already_won"
	case errors.Is(err, cube.ErrGameDrawn):
		return http.StatusConflict, "game_drawn"
	case errors.Is(err, cube.ErrOutOfBounds):
		return http.StatusBadRequest, "out_of_bounds"
	case errors.Is(err, cube.ErrInvalidSize):
		return http.StatusBadRequest, "invalid_size"
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound, "game_not_found"
	case errors.Is(err, game.ErrTooManyGames):
		return http.StatusServiceUnavailable, "too_many_games"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("writeJSON", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, reason string, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Reason: reason})
}
