package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cubefour/internal/platform/config"
	"cubefour/internal/platform/logger"
	"cubefour/internal/platform/metrics"
	"cubefour/internal/server/game"
	httpserver "cubefour/internal/server/http"
	"cubefour/internal/server/stream"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless hosts have nothing to open
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// flags override the environment
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.WebDir, "web", cfg.WebDir, "directory with the renderer's index.html / js")
	flag.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "default lattice edge length")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.BoolVar(&cfg.OpenBrowser, "open", cfg.OpenBrowser, "open the default browser on start")
	flag.IntVar(&cfg.MaxGames, "max-games", cfg.MaxGames, "maximum games held in memory")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewCollector()
	hub := stream.NewHub(log.Named("stream"), m)
	go hub.Run(ctx)

	games := game.NewManager(cfg.BoardSize, cfg.MaxGames)
	games.OnEvict = func(id string) {
		m.RecordGameEvicted()
		hub.CloseGame(id)
		logger.Event(log, "game_evicted", id)
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: httpserver.NewRouter(httpserver.Deps{
			Games:   games,
			Hub:     hub,
			Metrics: m,
			Logger:  log.Named("http"),
			WebDir:  cfg.WebDir,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("web_dir", cfg.WebDir),
			zap.Int("board_size", cfg.BoardSize))
		errCh <- srv.ListenAndServe()
	}()

	if cfg.OpenBrowser {
		// give the listener a moment before the browser hits it
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + cfg.Addr)
		}()
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}
}
