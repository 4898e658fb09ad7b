package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"minimax-chess/board"
	"minimax-chess/config"
	"minimax-chess/engine"
)

func main() {
	cfgPath := flag.String("config", "", "config file (optional)")
	fen := flag.String("fen", board.StartFEN, "position to analyse")
	depth := flag.Int("depth", 0, "search depth (0 = max_depth from config)")
	top := flag.Int("top", 5, "number of candidate moves to list")
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

	pos, err := board.FromFEN(*fen)
	if err != nil {
		log.Errorw("invalid position", "fen", *fen, zap.Error(err))
		os.Exit(1)
	}
	if *depth <= 0 {
		*depth = cfg.MaxDepth
	}

	s := engine.NewSession(cfg.Engine(), log)
	defer s.Close()
	a := s.Analyze(pos, *depth, *top)

	fmt.Println(pos.Draw())
	fmt.Printf("FEN: %s\n", a.FEN)
	fmt.Printf("Side to move: %v, status: %v\n\n", a.SideToMove, a.Outcome)
	fmt.Println(a.Evaluation)
	fmt.Println()

	if a.Search.HasMove {
		fmt.Printf("Best move: %s (%s), score %s\n", a.BestSAN, a.Search.Move.String(), engine.ScoreString(a.Search.Score))
		fmt.Printf("PV: %s\n", engine.PVString(a.Search.PV))
	} else {
		fmt.Println("No legal moves.")
	}
	fmt.Printf("Stats: %v\n\n", a.Search.Stats)

	if len(a.TopMoves) > 0 {
		fmt.Println("Candidate moves (static, one ply):")
		for i, m := range a.TopMoves {
			fmt.Printf("%2d. %-8s %8s  %s\n", i+1, m.SAN, engine.ScoreString(m.Score), m.Category)
		}
	}
}
