// Package mobile is the gomobile entry point: the app extracts the renderer
// assets and runs the game server on loopback.
package mobile

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"cubefour/internal/platform/logger"
	"cubefour/internal/platform/metrics"
	"cubefour/internal/server/game"
	httpserver "cubefour/internal/server/http"
	"cubefour/internal/server/stream"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
// size: lattice size for new games (0 for the default)
func StartServer(webDir string, port string, size int) {
	log, err := logger.New("info")
	if err != nil {
		log = zap.NewNop()
	}

	m := metrics.NewCollector()
	hub := stream.NewHub(log.Named("stream"), m)
	go hub.Run(context.Background())

	games := game.NewManager(size, 64)
	games.OnEvict = func(id string) {
		m.RecordGameEvicted()
		hub.CloseGame(id)
	}

	mux := httpserver.NewRouter(httpserver.Deps{
		Games:   games,
		Hub:     hub,
		Metrics: m,
		Logger:  log.Named("http"),
		WebDir:  webDir,
	})

	// Run in background so it doesn't block the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()
}
