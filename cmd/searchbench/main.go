package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"minimax-chess/board"
	"minimax-chess/config"
	"minimax-chess/engine"
)

// Positions searched when no -fen is given.
var benchFENs = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
}

func main() {
	cfgPath := flag.String("config", "", "config file (optional)")
	depthFlag := flag.Int("depth", 4, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches per position")
	fenFlag := flag.String("fen", "", "FEN to search (empty = built-in suite)")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	memProfile := flag.String("memprofile", "", "write a heap profile into this directory")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if *depthFlag <= 0 {
		log.Fatalw("depth must be positive", "depth", *depthFlag)
	}

	switch {
	case *cpuProfile != "":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile)).Stop()
	case *memProfile != "":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*memProfile)).Stop()
	}

	fens := benchFENs
	if *fenFlag != "" {
		fens = []string{*fenFlag}
	}

	fmt.Printf("searchbench: positions=%d depth=%d repeat=%d\n", len(fens), *depthFlag, *repeatFlag)

	var totalNodes uint64
	startAll := time.Now()
	for _, fen := range fens {
		pos, err := board.FromFEN(fen)
		if err != nil {
			log.Fatalw("parse FEN", "fen", fen, zap.Error(err))
		}
		for i := 0; i < *repeatFlag; i++ {
			// Fresh cache for every run so repeats stay comparable.
			s := engine.NewSession(cfg.Engine(), log)
			res := s.Search(pos, *depthFlag, engine.Unlimited)
			s.Close()

			totalNodes += res.Stats.Nodes
			fmt.Printf("%-72s bestmove %s score %s %v\n", fen, res.Move.String(), engine.ScoreString(res.Score), res.Stats)
		}
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total nodes: %d time: %v nps: %.0f\n", totalNodes, totalElapsed, float64(totalNodes)/totalElapsed.Seconds())
}
