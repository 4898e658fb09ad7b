package engine

import (
	"testing"

	"minimax-chess/board"
)

func TestOrderMovesKeepsEveryMove(t *testing.T) {
	for _, fen := range evalFixtures {
		p := mustFEN(t, fen)
		legal := p.LegalMoves()
		ordered := OrderMoves(p, append([]board.Move(nil), legal...), 0)
		if len(ordered) != len(legal) {
			t.Fatalf("%s: %d moves ordered, %d legal", fen, len(ordered), len(legal))
		}
		seen := make(map[board.Move]bool, len(ordered))
		for _, m := range ordered {
			seen[m] = true
		}
		for _, m := range legal {
			if !seen[m] {
				t.Fatalf("%s: %s lost while ordering", fen, m.String())
			}
		}
	}
}

func TestOrderMovesPutsHintFirst(t *testing.T) {
	p := mustFEN(t, kiwipeteFEN)
	legal := p.LegalMoves()
	hint := legal[len(legal)-1]
	ordered := OrderMoves(p, legal, hint)
	if ordered[0] != hint {
		t.Fatalf("hint %s not first, got %s", hint.String(), ordered[0].String())
	}
}

func TestOrderMovesIsStable(t *testing.T) {
	p := board.New()
	legal := p.LegalMoves()
	index := make(map[board.Move]int, len(legal))
	for i, m := range legal {
		index[m] = i
	}
	attacked := p.Attacks(board.White) & p.Pieces(board.Black).All
	ordered := OrderMoves(p, append([]board.Move(nil), legal...), 0)
	for i := 1; i < len(ordered); i++ {
		a, b := ordered[i-1], ordered[i]
		sa, sb := scoreMove(p, a, attacked), scoreMove(p, b, attacked)
		if sa < sb {
			t.Fatalf("%s (%d) ordered before better %s (%d)", a.String(), sa, b.String(), sb)
		}
		if sa == sb && index[a] > index[b] {
			t.Fatalf("tie between %s and %s broke generation order", a.String(), b.String())
		}
	}
}

func TestOrderMovesPrefersCapturesAndChecks(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	ordered := OrderMoves(p, p.LegalMoves(), 0)
	if got := ordered[0].String(); got != "e4d5" {
		t.Fatalf("expected exd5 first, got %s", got)
	}

	// Rxe8+ captures with check; Rxa8 only captures.
	p = mustFEN(t, "r3r1k1/5ppp/8/8/8/8/5PPP/R3R1K1 w - - 0 1")
	ordered = OrderMoves(p, p.LegalMoves(), 0)
	if got := ordered[0].String(); got != "e1e8" {
		t.Fatalf("expected checking capture first, got %s", got)
	}
}

func TestOrderMovesRewardsNewThreats(t *testing.T) {
	// Nc3-d5 forks queen and rook; Nc3-b1 attacks nothing.
	p := mustFEN(t, "4k3/2q1r3/8/8/8/2N5/8/6K1 w - - 0 1")
	attacked := p.Attacks(board.White) & p.Pieces(board.Black).All
	fork := mustMove(t, p, "Nd5")
	retreat := mustMove(t, p, "Nb1")
	if scoreMove(p, fork, attacked) <= scoreMove(p, retreat, attacked) {
		t.Fatalf("fork not preferred over retreat")
	}
	want := centerBonus + 2*threatBonus + pieceValue[board.Queen]/10 + pieceValue[board.Rook]/10
	if got := scoreMove(p, fork, attacked); got != want {
		t.Fatalf("fork scored %d, want %d", got, want)
	}
}

func TestTacticalMovesFilter(t *testing.T) {
	p := mustFEN(t, kiwipeteFEN)
	key := p.Key()
	tactical := TacticalMoves(p)
	if len(tactical) == 0 {
		t.Fatalf("kiwipete has captures")
	}
	count := 0
	for _, m := range p.LegalMoves() {
		if IsTactical(p, m) {
			count++
		}
	}
	if count != len(tactical) {
		t.Fatalf("tactical moves: got %d want %d", len(tactical), count)
	}
	for _, m := range tactical {
		if !p.IsCapture(m) && !board.IsPromotion(m) && !p.GivesCheck(m) {
			t.Fatalf("%s is not tactical", m.String())
		}
	}
	if p.Key() != key {
		t.Fatalf("ordering changed the position")
	}
	if quiet := TacticalMoves(board.New()); len(quiet) != 0 {
		t.Fatalf("start position has no tactical moves, got %d", len(quiet))
	}
}
