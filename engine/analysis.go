package engine

import (
	"cmp"

	"golang.org/x/exp/slices"

	"minimax-chess/board"
)

// ScoredMove is a legal move with the static score of the position it leads to.
type ScoredMove struct {
	Move     board.Move
	SAN      string
	Score    int32
	Category string
}

// Analysis is a full report on one position.
type Analysis struct {
	FEN        string
	SideToMove board.Color
	Outcome    board.Outcome
	Evaluation Breakdown
	Search     Result
	BestSAN    string
	TopMoves   []ScoredMove
}

// Analyze evaluates the position, searches it to depth within the session's
// time budget and ranks its moves by one-ply static evaluation.
func (s *Session) Analyze(pos *board.Position, depth, topN int) Analysis {
	a := Analysis{
		FEN:        pos.FEN(),
		SideToMove: pos.SideToMove(),
		Outcome:    pos.Outcome(),
		Evaluation: Evaluate(pos),
	}
	a.Search = s.Search(pos, depth, s.cfg.Budget())
	if a.Search.HasMove {
		a.BestSAN, _ = pos.SAN(a.Search.Move)
	}
	a.TopMoves = TopMoves(pos, topN)
	return a
}

// TopMoves returns up to n legal moves, best first for the side to move,
// scored by the static evaluation after each move. n <= 0 returns all.
func TopMoves(pos *board.Position, n int) []ScoredMove {
	side := pos.SideToMove()
	moves := pos.LegalMoves()
	scored := make([]ScoredMove, 0, len(moves))
	for _, m := range moves {
		sm := ScoredMove{Move: m, Category: pos.Category(m)}
		sm.SAN, _ = pos.SAN(m)
		if sm.SAN == "" {
			sm.SAN = m.String()
		}
		sm.Score = scoreAfter(pos, m)
		scored = append(scored, sm)
	}
	slices.SortStableFunc(scored, func(a, b ScoredMove) int {
		if side == board.White {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.Score, b.Score)
	})
	if n > 0 && len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func scoreAfter(pos *board.Position, m board.Move) int32 {
	defer pos.Push(m)()
	return evaluate(pos)
}
