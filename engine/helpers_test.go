package engine

import (
	"testing"
	"time"

	"minimax-chess/board"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	backRankFEN  = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
)

func mustFEN(t testing.TB, fen string) *board.Position {
	t.Helper()
	p, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return p
}

func mustMove(t testing.TB, p *board.Position, s string) board.Move {
	t.Helper()
	m, err := p.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func testConfig() Config {
	return Config{
		MaxDepth:        3,
		TimeBudget:      time.Minute,
		QuiescenceDepth: 2,
		CacheSizeMB:     1,
	}
}

func newTestSession(t testing.TB) *Session {
	t.Helper()
	s := NewSession(testConfig(), nil)
	t.Cleanup(s.Close)
	return s
}
