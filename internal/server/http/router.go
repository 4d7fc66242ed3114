package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"cubefour/internal/platform/metrics"
	"cubefour/internal/server/game"
	"cubefour/internal/server/stream"
)

// Deps is everything the server mux needs.
type Deps struct {
	Games   *game.Manager
	Hub     *stream.Hub
	Metrics *metrics.Collector
	Logger  *zap.Logger
	WebDir  string
}

// NewRouter mounts the API, the metrics endpoints and the static renderer.
func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(d.Games, d.Hub, d.Metrics, d.Logger))
	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Handler())
		mux.Handle("/metrics/prometheus", d.Metrics.PrometheusHandler())
	}
	RegisterStaticRoutes(mux, d.WebDir)
	return mux
}
