package engine

import (
	"math/rand"

	"minimax-chess/board"
)

// MoveSelector picks a move for the side to move. It returns
// ErrNoLegalMoves when there is none.
type MoveSelector interface {
	SelectMove(pos *board.Position) (board.Move, error)
}

// RandomSelector plays a uniformly random legal move.
type RandomSelector struct {
	rng *rand.Rand
}

func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomSelector) SelectMove(pos *board.Position) (board.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return 0, ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// GreedySelector plays the move with the best static evaluation one ply
// ahead. Ties go to the first move in generation order.
type GreedySelector struct{}

func (GreedySelector) SelectMove(pos *board.Position) (board.Move, error) {
	top := TopMoves(pos, 1)
	if len(top) == 0 {
		return 0, ErrNoLegalMoves
	}
	return top[0].Move, nil
}

// SelectMove searches with the session's depth and time budget.
func (s *Session) SelectMove(pos *board.Position) (board.Move, error) {
	res := s.Search(pos, s.cfg.MaxDepth, s.cfg.Budget())
	if !res.HasMove {
		return 0, ErrNoLegalMoves
	}
	return res.Move, nil
}
