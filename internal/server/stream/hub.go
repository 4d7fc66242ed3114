// Package stream pushes move results to websocket subscribers of a game.
package stream

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"cubefour/internal/platform/metrics"
)

type message struct {
	gameID  string
	payload []byte
}

// Hub maintains the subscribers of every game and fans messages out to them.
type Hub struct {
	subs       map[string]map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	closeGame  chan string
	done       chan struct{}

	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewHub(log *zap.Logger, m *metrics.Collector) *Hub {
	return &Hub{
		subs:       make(map[string]map[*Client]bool),
		broadcast:  make(chan message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		closeGame:  make(chan string, 16),
		done:       make(chan struct{}),
		logger:     log,
		metrics:    m,
	}
}

// Run owns the subscriber table until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for _, clients := range h.subs {
				for c := range clients {
					h.drop(c)
				}
			}
			h.logger.Info("stream hub shutting down")
			return
		case c := <-h.register:
			if h.subs[c.gameID] == nil {
				h.subs[c.gameID] = make(map[*Client]bool)
			}
			h.subs[c.gameID][c] = true
			h.recordConnection(1)
			h.logger.Debug("stream client connected", zap.String("game_id", c.gameID))
		case c := <-h.unregister:
			if h.subs[c.gameID][c] {
				h.drop(c)
				h.logger.Debug("stream client disconnected", zap.String("game_id", c.gameID))
			}
		case id := <-h.closeGame:
			for c := range h.subs[id] {
				h.drop(c)
			}
		case msg := <-h.broadcast:
			for c := range h.subs[msg.gameID] {
				select {
				case c.send <- msg.payload:
					h.recordMessage(true)
				default:
					// slow consumer
					h.recordMessage(false)
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *Client) {
	delete(h.subs[c.gameID], c)
	if len(h.subs[c.gameID]) == 0 {
		delete(h.subs, c.gameID)
	}
	close(c.send)
	h.recordConnection(-1)
}

// Publish serialises v and queues it for every subscriber of gameID.
func (h *Hub) Publish(gameID string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("marshal stream message", zap.String("game_id", gameID), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- message{gameID: gameID, payload: payload}:
	case <-h.done:
	}
}

// CloseGame disconnects every subscriber of gameID. It does not block.
func (h *Hub) CloseGame(gameID string) {
	select {
	case h.closeGame <- gameID:
	default:
		h.logger.Warn("stream close queue full", zap.String("game_id", gameID))
	}
}

func (h *Hub) recordConnection(delta int64) {
	if h.metrics != nil {
		h.metrics.RecordStreamConnection(delta)
	}
}

func (h *Hub) recordMessage(delivered bool) {
	if h.metrics != nil {
		h.metrics.RecordStreamMessage(delivered)
	}
}
