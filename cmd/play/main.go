package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"minimax-chess/board"
	"minimax-chess/config"
	"minimax-chess/engine"
)

const help = `Enter moves in SAN (Nf3, O-O, exd5) or UCI (g1f3, e7e8q).
Commands: moves, undo, eval, board, help, quit`

type game struct {
	pos    *board.Position
	s      *engine.Session
	cfg    *config.Config
	human  board.Color
	log    *zap.SugaredLogger
	stdout *bufio.Writer
}

func main() {
	cfgPath := flag.String("config", "", "config file (optional)")
	fen := flag.String("fen", board.StartFEN, "starting position")
	color := flag.String("color", "white", "your colour: white or black")
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

	g := &game{
		pos:    pos,
		s:      engine.NewSession(cfg.Engine(), log),
		cfg:    cfg,
		human:  board.White,
		log:    log,
		stdout: bufio.NewWriter(os.Stdout),
	}
	defer g.s.Close()
	defer g.stdout.Flush()
	if strings.HasPrefix(strings.ToLower(*color), "b") {
		g.human = board.Black
	}

	g.println(help)
	g.println(pos.Draw())
	g.run(bufio.NewScanner(os.Stdin))
}

func (g *game) println(a ...any) {
	fmt.Fprintln(g.stdout, a...)
}

func (g *game) run(in *bufio.Scanner) {
	for !g.pos.IsGameOver() {
		if g.pos.SideToMove() != g.human {
			if !g.engineMove() {
				return
			}
			continue
		}

		fmt.Fprintf(g.stdout, "%v to move> ", g.human)
		g.stdout.Flush()
		if !in.Scan() {
			return
		}
		if quit := g.command(strings.TrimSpace(in.Text())); quit {
			return
		}
	}
	g.println("Game over:", g.pos.Outcome())
}

// command handles one line of input and reports whether to quit.
func (g *game) command(line string) bool {
	switch line {
	case "":
	case "quit", "exit":
		return true
	case "help":
		g.println(help)
	case "board":
		g.println(g.pos.Draw())
	case "eval":
		g.println(engine.Evaluate(g.pos))
	case "moves":
		for _, m := range engine.TopMoves(g.pos, 0) {
			fmt.Fprintf(g.stdout, "%-8s %s\n", m.SAN, m.Category)
		}
	case "undo":
		if g.pos.Ply() < 2 {
			g.println("Nothing to undo.")
			break
		}
		g.pos.Pop()
		g.pos.Pop()
		g.println(g.pos.Draw())
	default:
		m, err := g.pos.ParseMove(line)
		if err != nil {
			g.println(err)
			break
		}
		san, _ := g.pos.SAN(m)
		g.pos.Push(m)
		g.println("You played", san)
	}
	return false
}

func (g *game) engineMove() bool {
	res := g.s.Search(g.pos, g.cfg.MaxDepth, g.cfg.Engine().Budget())
	if !res.HasMove {
		g.log.Warnw("engine found no move", "fen", g.pos.FEN())
		return false
	}
	san, _ := g.pos.SAN(res.Move)
	g.pos.Push(res.Move)
	fmt.Fprintf(g.stdout, "Engine plays %s (score %s, depth %d, %d nodes)\n",
		san, engine.ScoreString(res.Score), res.Depth, res.Stats.Nodes)
	g.println(g.pos.Draw())
	return true
}
