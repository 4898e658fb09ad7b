package board

import (
	"errors"
	"testing"
)

func TestParseMoveUCIAndSAN(t *testing.T) {
	p := New()
	cases := map[string]string{
		"e2e4": "e2e4",
		"e4":   "e2e4",
		"Nf3":  "g1f3",
		"g1f3": "g1f3",
		"Nc3":  "b1c3",
	}
	for in, want := range cases {
		m, err := p.ParseMove(in)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", in, err)
		}
		if m.String() != want {
			t.Fatalf("ParseMove(%q): got %s want %s", in, m.String(), want)
		}
	}
}

func TestParseMoveRejectsIllegal(t *testing.T) {
	p := New()
	for _, in := range []string{"e2e5", "Ke2", "O-O", "zz", "", "e7e5"} {
		if _, err := p.ParseMove(in); !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("ParseMove(%q): expected ErrIllegalMove, got %v", in, err)
		}
	}
}

func TestSANEncoding(t *testing.T) {
	p := mustFEN(t, "r3k2r/1P6/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1")
	cases := map[string]string{
		"e1g1":  "O-O",
		"e1c1":  "O-O-O",
		"e5d6":  "exd6",
		"b7a8q": "bxa8=Q+",
		"a1a7":  "Ra7",
	}
	for uci, want := range cases {
		m := mustMove(t, p, uci)
		got, err := p.SAN(m)
		if err != nil {
			t.Fatalf("SAN(%s): %v", uci, err)
		}
		if got != want {
			t.Fatalf("SAN(%s): got %q want %q", uci, got, want)
		}
		back, err := p.ParseMove(got)
		if err != nil || back != m {
			t.Fatalf("ParseMove(%q) did not round-trip to %s: %v", got, uci, err)
		}
	}
}

func TestCastlingSANAfterMoves(t *testing.T) {
	p := New()
	play(t, p, "e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5")
	m := mustMove(t, p, "O-O")
	if m.String() != "e1g1" || !p.IsCastling(m) {
		t.Fatalf("O-O parsed as %s", m.String())
	}
}

func TestSANMarksChecksAndMates(t *testing.T) {
	cases := []struct {
		fen, uci, want string
	}{
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", "a1a8", "Ra8#"},
		{"6k1/5pp1/8/8/8/8/8/R5K1 w - - 0 1", "a1a8", "Ra8+"},
		{"rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2", "d8h4", "Qh4#"},
	}
	for _, c := range cases {
		p := mustFEN(t, c.fen)
		got, err := p.SAN(mustMove(t, p, c.uci))
		if err != nil || got != c.want {
			t.Fatalf("%s: SAN(%s) = %q, %v; want %q", c.fen, c.uci, got, err, c.want)
		}
	}
}
