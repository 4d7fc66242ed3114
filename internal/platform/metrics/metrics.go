// Package metrics counts game-server activity and serves it as JSON or in
// the Prometheus text format.
package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Collector gathers server counters. The zero value is not usable; call
// NewCollector.
type Collector struct {
	GamesStarted  int64
	GamesWon      int64
	GamesDrawn    int64
	GamesEvicted  int64
	MovesAccepted int64

	// Stream metrics
	StreamConnections int64
	StreamMessagesOut int64
	StreamDropped     int64

	StartTime time.Time

	mu         sync.Mutex
	rejections map[string]int64 // by reason
}

func NewCollector() *Collector {
	return &Collector{
		StartTime:  time.Now(),
		rejections: make(map[string]int64),
	}
}

func (c *Collector) RecordGameStarted() { atomic.AddInt64(&c.GamesStarted, 1) }
func (c *Collector) RecordGameEvicted() { atomic.AddInt64(&c.GamesEvicted, 1) }

// RecordMove records an accepted move and whether it ended the game.
func (c *Collector) RecordMove(won, drawn bool) {
	atomic.AddInt64(&c.MovesAccepted, 1)
	if won {
		atomic.AddInt64(&c.GamesWon, 1)
	}
	if drawn {
		atomic.AddInt64(&c.GamesDrawn, 1)
	}
}

// RecordRejection counts a rejected move under its reason code.
func (c *Collector) RecordRejection(reason string) {
	c.mu.Lock()
	c.rejections[reason]++
	c.mu.Unlock()
}

func (c *Collector) RecordStreamConnection(delta int64) {
	atomic.AddInt64(&c.StreamConnections, delta)
}

func (c *Collector) RecordStreamMessage(delivered bool) {
	if delivered {
		atomic.AddInt64(&c.StreamMessagesOut, 1)
	} else {
		atomic.AddInt64(&c.StreamDropped, 1)
	}
}

// Rejections returns a copy of the per-reason rejection counts.
func (c *Collector) Rejections() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.rejections))
	for k, v := range c.rejections {
		out[k] = v
	}
	return out
}

// Snapshot returns current metrics as a map.
func (c *Collector) Snapshot() map[string]interface{} {
	return map[string]interface{}{
		"uptime_seconds": time.Since(c.StartTime).Seconds(),

		"games": map[string]interface{}{
			"started": atomic.LoadInt64(&c.GamesStarted),
			"won":     atomic.LoadInt64(&c.GamesWon),
			"drawn":   atomic.LoadInt64(&c.GamesDrawn),
			"evicted": atomic.LoadInt64(&c.GamesEvicted),
		},

		"moves": map[string]interface{}{
			"accepted": atomic.LoadInt64(&c.MovesAccepted),
			"rejected": c.Rejections(),
		},

		"stream": map[string]interface{}{
			"active_connections": atomic.LoadInt64(&c.StreamConnections),
			"messages_out":       atomic.LoadInt64(&c.StreamMessagesOut),
			"dropped":            atomic.LoadInt64(&c.StreamDropped),
		},
	}
}

// Handler serves the JSON snapshot.
func (c *Collector) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")
		json.NewEncoder(w).Encode(c.Snapshot())
	}
}

// PrometheusHandler serves the counters in Prometheus text format.
func (c *Collector) PrometheusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		fmt.Fprintf(w, "# HELP cube_games_total Games by lifecycle event\n")
		fmt.Fprintf(w, "# TYPE cube_games_total counter\n")
		fmt.Fprintf(w, "cube_games_total{event=\"started\"} %d\n", atomic.LoadInt64(&c.GamesStarted))
		fmt.Fprintf(w, "cube_games_total{event=\"won\"} %d\n", atomic.LoadInt64(&c.GamesWon))
		fmt.Fprintf(w, "cube_games_total{event=\"drawn\"} %d\n", atomic.LoadInt64(&c.GamesDrawn))
		fmt.Fprintf(w, "cube_games_total{event=\"evicted\"} %d\n\n", atomic.LoadInt64(&c.GamesEvicted))

		fmt.Fprintf(w, "# HELP cube_moves_accepted_total Accepted moves\n")
		fmt.Fprintf(w, "# TYPE cube_moves_accepted_total counter\n")
		fmt.Fprintf(w, "cube_moves_accepted_total %d\n\n", atomic.LoadInt64(&c.MovesAccepted))

		rej := c.Rejections()
		reasons := make([]string, 0, len(rej))
		for k := range rej {
			reasons = append(reasons, k)
		}
		sort.Strings(reasons)
		fmt.Fprintf(w, "# HELP cube_moves_rejected_total Rejected moves by reason\n")
		fmt.Fprintf(w, "# TYPE cube_moves_rejected_total counter\n")
		for _, k := range reasons {
			fmt.Fprintf(w, "cube_moves_rejected_total{reason=%q} %d\n", k, rej[k])
		}
		fmt.Fprintln(w)

		fmt.Fprintf(w, "# HELP cube_stream_connections Active stream connections\n")
		fmt.Fprintf(w, "# TYPE cube_stream_connections gauge\n")
		fmt.Fprintf(w, "cube_stream_connections %d\n\n", atomic.LoadInt64(&c.StreamConnections))

		fmt.Fprintf(w, "# HELP cube_stream_messages_total Stream messages by delivery\n")
		fmt.Fprintf(w, "# TYPE cube_stream_messages_total counter\n")
		fmt.Fprintf(w, "cube_stream_messages_total{delivery=\"sent\"} %d\n", atomic.LoadInt64(&c.StreamMessagesOut))
		fmt.Fprintf(w, "cube_stream_messages_total{delivery=\"dropped\"} %d\n", atomic.LoadInt64(&c.StreamDropped))
	}
}
