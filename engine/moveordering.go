package engine

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/slices"

	"minimax-chess/board"
)

// Ordering bonuses. They add up, so a checking capture outranks a plain one.
const (
	hintBonus      int32 = 100000
	checkBonus     int32 = 10000
	captureBonus   int32 = 5000
	promotionBonus int32 = 4000
	threatBonus    int32 = 100
	pawnStepBonus  int32 = 5
	castlingBonus  int32 = 500
	centerBonus    int32 = 50
)

type scoredMove struct {
	move  board.Move
	score int32
}

// OrderMoves returns moves sorted best first. The hint, usually the cached
// best move, goes to the front; equal scores keep their generation order.
func OrderMoves(pos *board.Position, moves []board.Move, hint board.Move) []board.Move {
	if len(moves) == 0 {
		return moves
	}
	side := pos.SideToMove()
	alreadyAttacked := pos.Attacks(side) & pos.Pieces(side.Other()).All

	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(pos, m, alreadyAttacked)}
		if hint != 0 && m == hint {
			scored[i].score += hintBonus
		}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return cmp.Compare(b.score, a.score)
	})

	ordered := make([]board.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// scoreMove sums the ordering bonuses of one move. alreadyAttacked holds the
// enemy pieces the mover's side attacks before the move.
func scoreMove(pos *board.Position, m board.Move, alreadyAttacked uint64) (score int32) {
	side := pos.SideToMove()
	mover := pos.MovedPiece(m)
	victim := pos.CapturedPiece(m)

	var givesCheck bool
	var threatened uint64
	func() {
		defer pos.Push(m)()
		givesCheck = pos.InCheck()
		if victim == board.NoPiece && !givesCheck {
			threatened = pos.Attacks(side) & pos.Pieces(side.Other()).All &^ alreadyAttacked
		}
	}()

	if givesCheck {
		score += checkBonus
	}
	if victim != board.NoPiece {
		score += captureBonus + pieceValue[victim]*10 - pieceValue[mover]
	}
	if promo := board.PromotionPieceType(m); promo != board.NoPiece {
		score += promotionBonus + pieceValue[promo]
	}
	for x := threatened; x != 0; x &= x - 1 {
		target := pos.PieceAt(board.Square(bits.TrailingZeros64(x)))
		score += threatBonus + pieceValue[target.Type]/10
	}

	to := board.To(m)
	if mover == board.Pawn {
		if side == board.White {
			score += pawnStepBonus * int32(to.Rank())
		} else {
			score += pawnStepBonus * int32(7-to.Rank())
		}
	}
	if pos.IsCastling(m) {
		score += castlingBonus
	}
	if centerSquares&to.Bit() != 0 {
		score += centerBonus
	}
	return score
}

// IsTactical reports captures, promotions and checking moves.
func IsTactical(pos *board.Position, m board.Move) bool {
	return pos.IsCapture(m) || board.IsPromotion(m) || pos.GivesCheck(m)
}

// TacticalMoves returns the ordered legal moves quiescence search explores.
func TacticalMoves(pos *board.Position) []board.Move {
	legal := pos.LegalMoves()
	tactical := legal[:0]
	for _, m := range legal {
		if IsTactical(pos, m) {
			tactical = append(tactical, m)
		}
	}
	return OrderMoves(pos, tactical, 0)
}
