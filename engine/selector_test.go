package engine

import (
	"errors"
	"testing"

	"minimax-chess/board"
)

func TestSelectorsReturnLegalMoves(t *testing.T) {
	selectors := map[string]MoveSelector{
		"random":  NewRandomSelector(1),
		"greedy":  GreedySelector{},
		"session": newTestSession(t),
	}
	for name, sel := range selectors {
		for _, fen := range []string{board.StartFEN, "4k3/8/8/8/8/8/4P3/R3K3 w Q - 0 1"} {
			p := mustFEN(t, fen)
			m, err := sel.SelectMove(p)
			if err != nil {
				t.Fatalf("%s on %s: %v", name, fen, err)
			}
			if !isLegal(p, m) {
				t.Fatalf("%s on %s: illegal move %s", name, fen, m.String())
			}
		}
		if _, err := sel.SelectMove(mustFEN(t, stalemateFEN)); !errors.Is(err, ErrNoLegalMoves) {
			t.Fatalf("%s on stalemate: expected ErrNoLegalMoves, got %v", name, err)
		}
	}
}

func TestRandomSelectorIsSeeded(t *testing.T) {
	a, b := NewRandomSelector(7), NewRandomSelector(7)
	p := board.New()
	for i := 0; i < 10; i++ {
		ma, _ := a.SelectMove(p)
		mb, _ := b.SelectMove(p)
		if ma != mb {
			t.Fatalf("same seed diverged at move %d", i)
		}
		p.Push(ma)
	}
}

func TestGreedyTakesHangingQueen(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	m, err := GreedySelector{}.SelectMove(p)
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "e4d5" {
		t.Fatalf("expected exd5, got %s", m.String())
	}
}

func TestSessionSelectsMate(t *testing.T) {
	s := newTestSession(t)
	m, err := s.SelectMove(mustFEN(t, backRankFEN))
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "a1a8" {
		t.Fatalf("expected Ra8#, got %s", m.String())
	}
}
