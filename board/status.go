package board

import "math/bits"

const fiftyMoveLimit = 100

const (
	lightSquares uint64 = 0x55AA55AA55AA55AA
	darkSquares  uint64 = ^lightSquares
)

func (p *Position) InCheck() bool {
	return p.b.OurKingInCheck()
}

func (p *Position) IsCheckmate() bool {
	return p.InCheck() && len(p.LegalMoves()) == 0
}

func (p *Position) IsStalemate() bool {
	return !p.InCheck() && len(p.LegalMoves()) == 0
}

// IsInsufficientMaterial reports positions where neither side can mate:
// no pawns, rooks or queens, and either at most one minor piece in total
// or only bishops that all stand on squares of one colour.
func (p *Position) IsInsufficientMaterial() bool {
	w, b := p.b.White, p.b.Black
	if w.Pawns|b.Pawns|w.Rooks|b.Rooks|w.Queens|b.Queens != 0 {
		return false
	}
	knights := w.Knights | b.Knights
	bishops := w.Bishops | b.Bishops
	if bits.OnesCount64(knights|bishops) <= 1 {
		return true
	}
	if knights != 0 {
		return false
	}
	return bishops&lightSquares == 0 || bishops&darkSquares == 0
}

// IsFiftyMoveDraw reports whether a hundred half-moves passed without a
// capture or pawn move. A checkmate delivered on the hundredth half-move
// still stands.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.rule50() >= fiftyMoveLimit && len(p.LegalMoves()) > 0
}

// IsThreefoldRepetition reports whether the current position occurred at
// least three times, counting only positions since the last irreversible move.
func (p *Position) IsThreefoldRepetition() bool {
	return p.repetitions() >= 3
}

// repetitions counts occurrences of the current position, itself included.
func (p *Position) repetitions() int {
	curr := p.history[len(p.history)-1]
	start := len(p.history) - 1 - curr.rule50
	if start < 0 {
		start = 0
	}
	count := 1
	for i := len(p.history) - 3; i >= start; i -= 2 {
		if p.history[i].hash == curr.hash {
			count++
		}
	}
	return count
}

// Outcome classifies the position. Checkmate takes precedence over the
// drawing rules.
func (p *Position) Outcome() Outcome {
	if len(p.LegalMoves()) == 0 {
		if p.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	switch {
	case p.IsInsufficientMaterial():
		return InsufficientMaterial
	case p.rule50() >= fiftyMoveLimit:
		return FiftyMoveRule
	case p.IsThreefoldRepetition():
		return ThreefoldRepetition
	}
	return Ongoing
}

// IsDraw reports whether any drawing condition holds.
func (p *Position) IsDraw() bool {
	return p.Outcome().IsDraw()
}

// IsGameOver reports whether the game has ended.
func (p *Position) IsGameOver() bool {
	return p.Outcome() != Ongoing
}
