package engine

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"minimax-chess/board"
)

// MateScore is the static score of a checkmated position. Search adds the
// remaining depth so that shallower mates score higher.
const MateScore int32 = 99999

const (
	doubledPawnPenalty  = 20
	isolatedPawnPenalty = 15
	passedPawnBase      = 20
	passedPawnPerRank   = 10

	castledKingBonus = 30
	pawnShieldBonus  = 10

	mobilityWeight = 5

	centerOccupyBonus   = 10
	centerAttackBonus   = 5
	extendedAttackBonus = 2

	rookSeventhBonus   = 20
	rookOpenFileBonus  = 15
	rookSemiOpenBonus  = 10
	rookConnectedBonus = 10

	bishopPairBonus = 30
)

// Breakdown is a static evaluation split into its components, in
// centipawns from White's point of view. Total is always the sum of the
// nine score fields.
type Breakdown struct {
	Material      int32
	PiecePosition int32
	PawnStructure int32
	KingSafety    int32
	Mobility      int32
	CenterControl int32
	RookPlacement int32
	BishopPair    int32
	// Terminal carries the checkmate or draw score; the heuristic
	// components are zero whenever the game is over.
	Terminal int32

	Endgame bool
	Outcome board.Outcome
	Total   int32
}

func (e *Breakdown) sum() int32 {
	return e.Material + e.PiecePosition + e.PawnStructure + e.KingSafety +
		e.Mobility + e.CenterControl + e.RookPlacement + e.BishopPair + e.Terminal
}

func (e Breakdown) String() string {
	var sb strings.Builder
	rows := []struct {
		name  string
		value int32
	}{
		{"material", e.Material},
		{"piece position", e.PiecePosition},
		{"pawn structure", e.PawnStructure},
		{"king safety", e.KingSafety},
		{"mobility", e.Mobility},
		{"center control", e.CenterControl},
		{"rook placement", e.RookPlacement},
		{"bishop pair", e.BishopPair},
		{"terminal", e.Terminal},
	}
	for _, r := range rows {
		fmt.Fprintf(&sb, "%-16s %7d\n", r.name, r.value)
	}
	fmt.Fprintf(&sb, "%-16s %7d\n", "total", e.Total)
	fmt.Fprintf(&sb, "endgame: %v, outcome: %v", e.Endgame, e.Outcome)
	return sb.String()
}

// Evaluate scores a position statically. It never leaves the position
// changed: mobility temporarily switches the side to move and restores it.
func Evaluate(pos *board.Position) Breakdown {
	var e Breakdown
	e.Outcome = pos.Outcome()
	switch {
	case e.Outcome == board.Checkmate:
		e.Terminal = MateScore
		if pos.SideToMove() == board.White {
			e.Terminal = -MateScore
		}
		e.Total = e.Terminal
		return e
	case e.Outcome.IsDraw():
		return e
	}

	w, b := pos.Pieces(board.White), pos.Pieces(board.Black)
	e.Endgame = isEndgame(&w, &b)

	e.Material = material(&w) - material(&b)
	e.PiecePosition = piecePosition(&w, false, e.Endgame) - piecePosition(&b, true, e.Endgame)
	e.PawnStructure = pawnStructure(w.Pawns, b.Pawns, board.White) - pawnStructure(b.Pawns, w.Pawns, board.Black)
	if !e.Endgame {
		e.KingSafety = kingSafety(&w, board.White) - kingSafety(&b, board.Black)
	}
	e.Mobility = mobility(pos)
	e.CenterControl = centerControl(pos, &w, &b)
	e.RookPlacement = rookPlacement(pos, &w, w.Pawns, b.Pawns, board.White) -
		rookPlacement(pos, &b, b.Pawns, w.Pawns, board.Black)
	e.BishopPair = bishopPair(&w) - bishopPair(&b)

	e.Total = e.sum()
	return e
}

func evaluate(pos *board.Position) int32 {
	return Evaluate(pos).Total
}

// isEndgame: no queens left, or each side keeps a queen but at most two
// minor pieces remain on the board.
func isEndgame(w, b *dragontoothmg.Bitboards) bool {
	wq, bq := bits.OnesCount64(w.Queens), bits.OnesCount64(b.Queens)
	if wq+bq == 0 {
		return true
	}
	minors := bits.OnesCount64(w.Knights | w.Bishops | b.Knights | b.Bishops)
	return wq > 0 && bq > 0 && minors <= 2
}

func material(bb *dragontoothmg.Bitboards) int32 {
	return int32(bits.OnesCount64(bb.Pawns))*pieceValue[board.Pawn] +
		int32(bits.OnesCount64(bb.Knights))*pieceValue[board.Knight] +
		int32(bits.OnesCount64(bb.Bishops))*pieceValue[board.Bishop] +
		int32(bits.OnesCount64(bb.Rooks))*pieceValue[board.Rook] +
		int32(bits.OnesCount64(bb.Queens))*pieceValue[board.Queen] +
		int32(bits.OnesCount64(bb.Kings))*pieceValue[board.King]
}

func countPieceTable(pieces uint64, table *[64]int32, flip bool) (score int32) {
	for x := pieces; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		if flip {
			sq = FlipView[sq]
		}
		score += table[sq]
	}
	return score
}

func piecePosition(bb *dragontoothmg.Bitboards, flip, endgame bool) (score int32) {
	score += countPieceTable(bb.Pawns, &PSQT[board.Pawn], flip)
	score += countPieceTable(bb.Knights, &PSQT[board.Knight], flip)
	score += countPieceTable(bb.Bishops, &PSQT[board.Bishop], flip)
	score += countPieceTable(bb.Rooks, &PSQT[board.Rook], flip)
	score += countPieceTable(bb.Queens, &PSQT[board.Queen], flip)
	if endgame {
		score += countPieceTable(bb.Kings, &KingEndgamePSQT, flip)
	} else {
		score += countPieceTable(bb.Kings, &PSQT[board.King], flip)
	}
	return score
}

// pawnStructure scores one side's pawns: doubled and isolated penalties and
// a passed pawn bonus growing with advancement.
func pawnStructure(own, enemy uint64, side board.Color) (score int32) {
	for f := 0; f < 8; f++ {
		if n := bits.OnesCount64(own & onlyFile[f]); n > 1 {
			score -= doubledPawnPenalty * int32(n-1)
		}
	}
	for x := own; x != 0; x &= x - 1 {
		sq := board.Square(bits.TrailingZeros64(x))
		f, r := sq.File(), sq.Rank()
		if own&adjacentFiles[f] == 0 {
			score -= isolatedPawnPenalty
		}

		ahead, advanced := ranksAbove[r], r
		if side == board.Black {
			ahead, advanced = ranksBelow[r], 7-r
		}
		if enemy&neighbourhood[f]&ahead == 0 {
			score += passedPawnBase + passedPawnPerRank*int32(advanced)
		}
	}
	return score
}

// kingSafety rewards a castled king and the friendly pawns sheltering a
// king that is still on its back rank.
func kingSafety(bb *dragontoothmg.Bitboards, side board.Color) (score int32) {
	king := board.Square(bits.TrailingZeros64(bb.Kings))
	backRank, shield := 0, onlyRank[1]|onlyRank[2]
	if side == board.Black {
		backRank, shield = 7, onlyRank[6]|onlyRank[5]
	}
	if king.Rank() != backRank {
		return 0
	}
	if f := king.File(); f == 2 || f == 6 {
		score += castledKingBonus
	}
	shield &= neighbourhood[king.File()]
	score += pawnShieldBonus * int32(bits.OnesCount64(bb.Pawns&shield))
	return score
}

// mobility compares legal move counts with each side in turn to move.
func mobility(pos *board.Position) int32 {
	var white, black int
	pos.WithSideToMove(board.White, func() { white = len(pos.LegalMoves()) })
	pos.WithSideToMove(board.Black, func() { black = len(pos.LegalMoves()) })
	return int32(white-black) * mobilityWeight
}

func centerControl(pos *board.Position, w, b *dragontoothmg.Bitboards) (score int32) {
	score += centerOccupyBonus * int32(bits.OnesCount64(w.All&centerSquares)-bits.OnesCount64(b.All&centerSquares))

	wAtt, bAtt := pos.Attacks(board.White), pos.Attacks(board.Black)
	score += centerAttackBonus * int32(bits.OnesCount64(wAtt&centerSquares)-bits.OnesCount64(bAtt&centerSquares))
	score += extendedAttackBonus * int32(bits.OnesCount64(wAtt&extendedCenter)-bits.OnesCount64(bAtt&extendedCenter))
	return score
}

func rookPlacement(pos *board.Position, bb *dragontoothmg.Bitboards, ownPawns, enemyPawns uint64, side board.Color) (score int32) {
	seventh := onlyRank[6]
	if side == board.Black {
		seventh = onlyRank[1]
	}
	score += rookSeventhBonus * int32(bits.OnesCount64(bb.Rooks&seventh))

	for x := bb.Rooks; x != 0; x &= x - 1 {
		file := onlyFile[bits.TrailingZeros64(x)&7]
		switch {
		case (ownPawns|enemyPawns)&file == 0:
			score += rookOpenFileBonus
		case ownPawns&file == 0:
			score += rookSemiOpenBonus
		}
	}

	if bits.OnesCount64(bb.Rooks) == 2 && rooksConnected(pos, bb.Rooks) {
		score += rookConnectedBonus
	}
	return score
}

// rooksConnected reports two rooks sharing a rank or file with nothing
// between them.
func rooksConnected(pos *board.Position, rooks uint64) bool {
	a := board.Square(bits.TrailingZeros64(rooks))
	b := board.Square(63 - bits.LeadingZeros64(rooks))
	occ := pos.Occupied()
	switch {
	case a.Rank() == b.Rank():
		for f := a.File() + 1; f < b.File(); f++ {
			if occ&board.SquareOf(f, a.Rank()).Bit() != 0 {
				return false
			}
		}
		return true
	case a.File() == b.File():
		for r := a.Rank() + 1; r < b.Rank(); r++ {
			if occ&board.SquareOf(a.File(), r).Bit() != 0 {
				return false
			}
		}
		return true
	}
	return false
}

func bishopPair(bb *dragontoothmg.Bitboards) int32 {
	if bits.OnesCount64(bb.Bishops) >= 2 {
		return bishopPairBonus
	}
	return 0
}
