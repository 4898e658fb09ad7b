package engine

import "minimax-chess/board"

// Minimax searches the same tree as Session.Search at a fixed depth without
// pruning, caching or a clock. It is exponentially slower and exists to
// check the pruned search against. It returns the score, the best move (zero
// at terminal nodes) and the number of nodes visited.
func Minimax(pos *board.Position, depth, quiescenceDepth int) (int32, board.Move, uint64) {
	m := minimaxer{pos: pos, qcap: quiescenceDepth}
	score, best := m.search(depth)
	return score, best, m.nodes
}

type minimaxer struct {
	pos   *board.Position
	qcap  int
	nodes uint64
}

func (m *minimaxer) search(depth int) (int32, board.Move) {
	m.nodes++
	switch outcome := m.pos.Outcome(); {
	case outcome == board.Checkmate:
		score := MateScore + int32(depth)
		if m.pos.SideToMove() == board.White {
			score = -score
		}
		return score, 0
	case outcome.IsDraw():
		return 0, 0
	}
	if depth <= 0 {
		return m.quiescence(0), 0
	}

	maximizing := m.pos.SideToMove() == board.White
	var best board.Move
	bestScore := Infinity
	if maximizing {
		bestScore = -Infinity
	}
	for _, mv := range OrderMoves(m.pos, m.pos.LegalMoves(), 0) {
		score := m.child(mv, depth-1)
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore, best = score, mv
		}
	}
	return bestScore, best
}

func (m *minimaxer) child(mv board.Move, depth int) int32 {
	defer m.pos.Push(mv)()
	score, _ := m.search(depth)
	return score
}

func (m *minimaxer) quiescence(qply int) int32 {
	m.nodes++
	best := evaluate(m.pos)
	if qply >= m.qcap {
		return best
	}
	maximizing := m.pos.SideToMove() == board.White
	for _, mv := range TacticalMoves(m.pos) {
		score := m.quiescenceChild(mv, qply+1)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

func (m *minimaxer) quiescenceChild(mv board.Move, qply int) int32 {
	defer m.pos.Push(mv)()
	return m.quiescence(qply)
}
