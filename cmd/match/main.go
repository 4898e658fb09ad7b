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

type player struct {
	name   string
	sel    engine.MoveSelector
	points float64
}

func main() {
	cfgPath := flag.String("config", "", "config file (optional)")
	first := flag.String("p1", "search", "first player: random, greedy or search")
	second := flag.String("p2", "greedy", "second player: random, greedy or search")
	games := flag.Int("games", 2, "number of games; colours alternate")
	maxPlies := flag.Int("max-plies", 200, "adjudicate a game as unfinished after this many plies")
	seed := flag.Int64("seed", 1, "seed for random players")
	fen := flag.String("fen", board.StartFEN, "starting position")
	clock := flag.Duration("clock", 0, "per-game clock for search players (0 = fixed time_budget per move)")
	inc := flag.Duration("inc", 0, "clock increment per move")
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

	start, err := board.FromFEN(*fen)
	if err != nil {
		log.Errorw("invalid position", "fen", *fen, zap.Error(err))
		os.Exit(1)
	}

	var sessions []*engine.Session
	defer func() {
		for _, s := range sessions {
			s.Close()
		}
	}()
	var clocks []*engine.Clock
	newPlayer := func(name string, seed int64) *player {
		switch name {
		case "random":
			return &player{name: name, sel: engine.NewRandomSelector(seed)}
		case "greedy":
			return &player{name: name, sel: engine.GreedySelector{}}
		case "search":
			s := engine.NewSession(cfg.Engine(), log.Desugar().WithOptions(zap.IncreaseLevel(zap.WarnLevel)).Sugar())
			sessions = append(sessions, s)
			if *clock > 0 {
				c := &engine.Clock{}
				clocks = append(clocks, c)
				return &player{name: name, sel: engine.TimedSelector{Session: s, Clock: c}}
			}
			return &player{name: name, sel: s}
		}
		log.Errorw("unknown player", "name", name)
		os.Exit(2)
		return nil
	}
	p1 := newPlayer(*first, *seed)
	p2 := newPlayer(*second, *seed+1)
	if p1.name == p2.name {
		p1.name += "#1"
		p2.name += "#2"
	}

	for i := 0; i < *games; i++ {
		white, black := p1, p2
		if i%2 == 1 {
			white, black = p2, p1
		}
		for _, s := range sessions {
			s.ClearCache()
		}
		for _, c := range clocks {
			*c = engine.Clock{Remaining: *clock, Increment: *inc}
		}

		rec, err := engine.PlayGame(white.sel, black.sel, start, *maxPlies)
		if err != nil {
			log.Errorw("game aborted", "game", i+1, zap.Error(err))
			os.Exit(1)
		}
		switch rec.Result {
		case engine.WhiteWins:
			white.points++
		case engine.BlackWins:
			black.points++
		case engine.DrawResult, engine.Unfinished:
			white.points += 0.5
			black.points += 0.5
		}

		log.Infow("game finished",
			"game", i+1,
			"white", white.name,
			"black", black.name,
			"result", rec.Result,
			"outcome", rec.Outcome.String(),
			"plies", len(rec.Moves),
			"time_forfeit", rec.TimeForfeit,
		)
		reason := rec.Outcome.String()
		if rec.TimeForfeit {
			reason = "lost on time"
		}
		fmt.Printf("[Game %d] %s vs %s: %s (%s)\n%s %s\n\n", i+1, white.name, black.name, rec.Result, reason, rec.PGNMoves(), rec.Result)
	}

	fmt.Printf("Score: %s %.1f - %.1f %s\n", p1.name, p1.points, p2.points, p2.name)
}
