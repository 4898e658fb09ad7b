package bench

import (
	"testing"
	"time"

	"minimax-chess/board"
	"minimax-chess/engine"
)

func benchPerft(b *testing.B, fen string, depth int) {
	pos := mustFEN(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.Perft(depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.StartFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipete, 3)
}

func benchSearch(b *testing.B, fen string, depth int) {
	pos := mustFEN(b, fen)
	cfg := engine.DefaultConfig()
	cfg.TimeBudget = time.Hour
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := engine.NewSession(cfg, nil)
		res := s.Search(pos, depth, cfg.TimeBudget)
		s.Close()
		b.ReportMetric(float64(res.Stats.Nodes), "nodes/op")
	}
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, board.StartFEN, 3)
}

func BenchmarkSearch_Pos6_D3(b *testing.B) {
	benchSearch(b, pos6, 3)
}
