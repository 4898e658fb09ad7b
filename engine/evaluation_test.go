package engine

import (
	"strings"
	"testing"

	"minimax-chess/board"
)

// mirrorFEN flips the board vertically and swaps the colours. Positions
// with an en passant square are not supported.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)
	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	if fields[2] != "-" {
		fields[2] = swapCase(fields[2])
		upper, lower := "", ""
		for _, c := range fields[2] {
			if c >= 'A' && c <= 'Z' {
				upper += string(c)
			} else {
				lower += string(c)
			}
		}
		fields[2] = upper + lower
	}
	return strings.Join(fields, " ")
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
}

var evalFixtures = []string{
	board.StartFEN,
	kiwipeteFEN,
	"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"4k3/8/8/8/8/8/4P3/R3K3 w Q - 0 1",
}

func TestStartPositionIsBalanced(t *testing.T) {
	e := Evaluate(board.New())
	if e.Total != 0 {
		t.Fatalf("expected balanced start position, got\n%v", e)
	}
	if e.Endgame {
		t.Fatalf("start position detected as endgame")
	}
}

func TestBreakdownSumsToTotal(t *testing.T) {
	for _, fen := range append(evalFixtures, foolsMateFEN, stalemateFEN) {
		e := Evaluate(mustFEN(t, fen))
		if got := e.sum(); got != e.Total {
			t.Fatalf("%s: components sum to %d, total %d", fen, got, e.Total)
		}
	}
}

func TestEvaluationIsColourSymmetric(t *testing.T) {
	for _, fen := range evalFixtures {
		mirrored := mirrorFEN(fen)
		a, b := Evaluate(mustFEN(t, fen)), Evaluate(mustFEN(t, mirrored))
		if a.Total != -b.Total {
			t.Fatalf("%s scored %d but mirror %s scored %d\n%v\n%v", fen, a.Total, mirrored, b.Total, a, b)
		}
		if a.Endgame != b.Endgame {
			t.Fatalf("%s: endgame detection differs from mirror", fen)
		}
	}
}

func TestEvaluateLeavesPositionUnchanged(t *testing.T) {
	for _, fen := range evalFixtures {
		p := mustFEN(t, fen)
		key, side, before := p.Key(), p.SideToMove(), p.FEN()
		Evaluate(p)
		if p.Key() != key || p.SideToMove() != side || p.FEN() != before {
			t.Fatalf("%s: position changed by evaluation: %s", fen, p.FEN())
		}
	}

	// Right after a double push the board carries an en passant square.
	p := board.New()
	for _, san := range []string{"e4", "d5", "e5", "f5"} {
		p.Push(mustMove(t, p, san))
		before := p.FEN()
		Evaluate(p)
		if p.FEN() != before {
			t.Fatalf("evaluation after %s changed the position: %s", san, p.FEN())
		}
	}
}

func TestTerminalScores(t *testing.T) {
	mate := Evaluate(mustFEN(t, foolsMateFEN))
	if mate.Outcome != board.Checkmate || mate.Terminal != -MateScore || mate.Total != -MateScore {
		t.Fatalf("white is mated, got\n%v", mate)
	}
	if mate.Material != 0 || mate.Mobility != 0 {
		t.Fatalf("heuristics should be skipped on a finished game, got\n%v", mate)
	}

	black := Evaluate(mustFEN(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1"))
	if black.Total != MateScore {
		t.Fatalf("black is mated, expected %d, got %d", MateScore, black.Total)
	}

	stale := Evaluate(mustFEN(t, stalemateFEN))
	if stale.Outcome != board.Stalemate || stale.Total != 0 {
		t.Fatalf("stalemate should score 0, got\n%v", stale)
	}

	bare := Evaluate(mustFEN(t, "8/8/4k3/8/8/2K5/8/8 w - - 0 1"))
	if bare.Outcome != board.InsufficientMaterial || bare.Total != 0 {
		t.Fatalf("bare kings should score 0, got\n%v", bare)
	}
}

func TestPassedPawnsScoreBothWays(t *testing.T) {
	cases := []struct {
		fen  string
		want int32
	}{
		// isolated (-15) and passed five ranks up (20 + 50)
		{"4k3/8/P7/8/8/8/8/4K3 w - - 0 1", 55},
		{"4k3/8/8/8/8/p7/8/4K3 w - - 0 1", -55},
		// each isolated pawn blocks the other
		{"4k3/1p6/P7/8/8/8/8/4K3 w - - 0 1", 0},
	}
	for _, c := range cases {
		e := Evaluate(mustFEN(t, c.fen))
		if e.PawnStructure != c.want {
			t.Fatalf("%s: pawn structure %d, want %d", c.fen, e.PawnStructure, c.want)
		}
	}
}

func TestDoubledPawns(t *testing.T) {
	e := Evaluate(mustFEN(t, "4k3/p7/p7/8/8/8/PP6/4K3 w - - 0 1"))
	// White: a2 and b2 guard each other's files, both blocked. Black: doubled
	// isolated a-pawns, both blocked.
	want := int32(doubledPawnPenalty + 2*isolatedPawnPenalty)
	if e.PawnStructure != want {
		t.Fatalf("pawn structure %d, want %d", e.PawnStructure, want)
	}
}

func TestEndgameDetection(t *testing.T) {
	cases := []struct {
		fen     string
		endgame bool
	}{
		{board.StartFEN, false},
		{"4k3/8/8/8/8/8/4P3/R3K3 w Q - 0 1", true},
		{"3qk3/8/8/8/8/8/8/3QK1N1 w - - 0 1", true},
		{"3qk1n1/8/8/8/8/8/8/3QKBN1 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},
	}
	for _, c := range cases {
		if got := Evaluate(mustFEN(t, c.fen)).Endgame; got != c.endgame {
			t.Fatalf("%s: endgame %v, want %v", c.fen, got, c.endgame)
		}
	}
}

func TestBishopPairAndRooks(t *testing.T) {
	e := Evaluate(mustFEN(t, "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1"))
	if e.BishopPair != bishopPairBonus {
		t.Fatalf("bishop pair %d, want %d", e.BishopPair, bishopPairBonus)
	}

	// Connected rooks on an empty first rank, both on open files.
	e = Evaluate(mustFEN(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1"))
	if want := int32(2*rookOpenFileBonus + rookConnectedBonus); e.RookPlacement != want {
		t.Fatalf("rook placement %d, want %d", e.RookPlacement, want)
	}
}

func TestMobilityCountsBothSides(t *testing.T) {
	e := Evaluate(board.New())
	if e.Mobility != 0 {
		t.Fatalf("start mobility %d, want 0", e.Mobility)
	}
	p := board.New()
	p.Push(mustMove(t, p, "e4"))
	e = Evaluate(p)
	// 30 white moves after 1.e4 against 20 for black.
	if e.Mobility != (30-20)*mobilityWeight {
		t.Fatalf("mobility after 1.e4: %d", e.Mobility)
	}
	if p.SideToMove() != board.Black {
		t.Fatalf("side to move not restored")
	}
}

func TestKingSafety(t *testing.T) {
	cases := []struct {
		fen  string
		want int32
	}{
		// g1 castled behind f2 g2 h2; the lone black queen keeps it a middlegame.
		{"4k3/8/8/q7/8/8/5PPP/6K1 w - - 0 1", castledKingBonus + 3*pawnShieldBonus},
		// c8 castled with b7 c7 in front; a7 is outside the shield.
		{"2k5/ppp5/8/8/8/8/8/Q3K3 w - - 0 1", -(castledKingBonus + 2*pawnShieldBonus)},
		// The shield only counts for a king still on its back rank.
		{"6k1/5pp1/7p/q7/8/8/5PKP/8 w - - 0 1", -(castledKingBonus + 3*pawnShieldBonus)},
		// No queens: endgame, king safety is not scored.
		{"6k1/5ppp/8/8/8/8/5PPP/6K1 w - - 0 1", 0},
	}
	for _, c := range cases {
		e := Evaluate(mustFEN(t, c.fen))
		if e.KingSafety != c.want {
			t.Fatalf("%s: king safety %d, want %d", c.fen, e.KingSafety, c.want)
		}
	}
}

func TestCenterControl(t *testing.T) {
	cases := []struct {
		fen  string
		want int32
	}{
		// Nd4 occupies the center and hits c6 e6 f3 f5 on the outer ring.
		{"4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", centerOccupyBonus + 4*extendedAttackBonus},
		// d3 and e3 attack d4 e4 in the center and c4 f4 on the ring.
		{"4k3/8/8/8/8/3PP3/8/4K3 w - - 0 1", 2*centerAttackBonus + 2*extendedAttackBonus},
	}
	for _, c := range cases {
		e := Evaluate(mustFEN(t, c.fen))
		if e.CenterControl != c.want {
			t.Fatalf("%s: center control %d, want %d", c.fen, e.CenterControl, c.want)
		}
		if m := Evaluate(mustFEN(t, mirrorFEN(c.fen))); m.CenterControl != -c.want {
			t.Fatalf("%s mirrored: center control %d, want %d", c.fen, m.CenterControl, -c.want)
		}
	}
}
