package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go.uber.org/zap"

	"cubefour/internal/platform/logger"
)

func main() {
	totalGames := flag.Int("games", 1000, "number of games to play")
	size := flag.Int("size", 5, "lattice size")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	log, err := logger.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if *pprofAddr != "" {
		go func() {
			log.Info("pprof listening", zap.String("addr", *pprofAddr))
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Warn("pprof failed", zap.Error(err))
			}
		}()
	}

	rng := newRand(*seed)
	var stats Stats
	start := time.Now()
	for i := 0; i < *totalGames; i++ {
		g, err := playGame(rng, *size)
		if err != nil {
			log.Fatal("playout failed", zap.Int("game", i+1), zap.Error(err))
		}
		stats.add(g)
		log.Debug("game finished",
			zap.Int("game", i+1),
			zap.Stringer("status", g.Status()),
			zap.Stringer("winner", g.Winner()),
			zap.Int("ply", g.Ply()))
	}
	elapsed := time.Since(start)

	fmt.Printf("=== %d games on %d^3, seed %d ===\n", stats.Games, *size, *seed)
	fmt.Printf("A wins: %d\n", stats.WinsA)
	fmt.Printf("B wins: %d\n", stats.WinsB)
	fmt.Printf("Draws: %d\n", stats.Draws)
	for _, k := range []string{"axis", "face", "body"} {
		fmt.Printf("  won on %s lines: %d\n", k, stats.ByLineKind[k])
	}
	if stats.Games > 0 {
		fmt.Printf("Avg plies: %.1f\n", float64(stats.Plies)/float64(stats.Games))
	}
	fmt.Printf("Time: %v, moves/s: %.0f\n", elapsed, float64(stats.Plies)/elapsed.Seconds())
}
