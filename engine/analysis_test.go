package engine

import (
	"testing"

	"minimax-chess/board"
)

func TestTopMovesRankForSideToMove(t *testing.T) {
	// White wins the queen with exd5; Black, to move in the mirror, with exd4.
	white := TopMoves(mustFEN(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"), 3)
	if len(white) != 3 || white[0].SAN != "exd5" || white[0].Category != "Capture Q" {
		t.Fatalf("white top moves: %+v", white)
	}
	black := TopMoves(mustFEN(t, "4k3/8/8/4p3/3Q4/8/8/4K3 b - - 0 1"), 0)
	if black[0].SAN != "exd4" {
		t.Fatalf("black top move: %+v", black[0])
	}
	for i := 1; i < len(black); i++ {
		if black[i].Score < black[i-1].Score {
			t.Fatalf("black moves not sorted ascending at %d", i)
		}
	}
}

func TestAnalyze(t *testing.T) {
	s := newTestSession(t)
	p := mustFEN(t, backRankFEN)
	key := p.Key()
	a := s.Analyze(p, 3, 4)
	if a.BestSAN != "Ra8#" || !a.Search.HasMove {
		t.Fatalf("best move %q", a.BestSAN)
	}
	if a.SideToMove != board.White || a.Outcome != board.Ongoing || a.FEN != p.FEN() {
		t.Fatalf("header fields wrong: %+v", a)
	}
	if len(a.TopMoves) != 4 {
		t.Fatalf("expected 4 top moves, got %d", len(a.TopMoves))
	}
	if a.TopMoves[0].SAN != "Ra8#" || a.TopMoves[0].Score != MateScore {
		t.Fatalf("static ranking should find the mate: %+v", a.TopMoves[0])
	}
	if p.Key() != key {
		t.Fatalf("analysis changed the position")
	}
}
