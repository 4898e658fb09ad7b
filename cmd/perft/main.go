package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"minimax-chess/board"
	"minimax-chess/config"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write a CPU profile into this directory")
	flag.Parse()

	logger, err := config.NewLogger("info")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if *depth <= 0 {
		log.Errorw("-depth must be > 0", "depth", *depth)
		os.Exit(2)
	}

	pos, err := board.FromFEN(*fen)
	if err != nil {
		log.Errorw("parse FEN", "fen", *fen, zap.Error(err))
		os.Exit(2)
	}

	if *divide {
		div := pos.PerftDivide(*depth)
		type kv struct {
			m string
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m.String(), n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m < arr[j].m })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProf), profile.Quiet).Stop()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += pos.Perft(*depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
