package board

import "strings"

// From returns the origin square of m.
func From(m Move) Square { return Square(m.From()) }

// To returns the destination square of m.
func To(m Move) Square { return Square(m.To()) }

// PromotionPieceType returns the piece m promotes to, or NoPiece.
func PromotionPieceType(m Move) PieceType { return m.Promote() }

// MovedPiece returns the type of the piece the side to move plays with m.
func (p *Position) MovedPiece(m Move) PieceType {
	bbs := p.Pieces(p.SideToMove())
	pt, _ := pieceTypeAt(From(m), &bbs)
	return pt
}

// CapturedPiece returns the type of the piece m captures, reporting a pawn
// for en passant and NoPiece for quiet moves.
func (p *Position) CapturedPiece(m Move) PieceType {
	bbs := p.Pieces(p.SideToMove().Other())
	if pt, ok := pieceTypeAt(To(m), &bbs); ok {
		return pt
	}
	if p.IsEnPassant(m) {
		return Pawn
	}
	return NoPiece
}

func (p *Position) IsCapture(m Move) bool {
	return p.CapturedPiece(m) != NoPiece
}

// IsEnPassant reports a diagonal pawn move onto an empty square.
func (p *Position) IsEnPassant(m Move) bool {
	from, to := From(m), To(m)
	if from.File() == to.File() || p.Occupied()&to.Bit() != 0 {
		return false
	}
	bbs := p.Pieces(p.SideToMove())
	return bbs.Pawns&from.Bit() != 0
}

// IsCastling reports a king moving two files.
func (p *Position) IsCastling(m Move) bool {
	from, to := From(m), To(m)
	if p.MovedPiece(m) != King {
		return false
	}
	d := from.File() - to.File()
	return d == 2 || d == -2
}

// IsPromotion reports whether m promotes a pawn.
func IsPromotion(m Move) bool {
	return m.Promote() != NoPiece
}

// GivesCheck reports whether m leaves the opponent in check.
func (p *Position) GivesCheck(m Move) bool {
	defer p.Push(m)()
	return p.InCheck()
}

// Category describes a move in a few words, e.g. "Check, Capture N".
func (p *Position) Category(m Move) string {
	var parts []string
	if p.GivesCheck(m) {
		parts = append(parts, "Check")
	}
	if p.IsEnPassant(m) {
		parts = append(parts, "En Passant")
	} else if victim := p.CapturedPiece(m); victim != NoPiece {
		parts = append(parts, "Capture "+PieceLetter(victim))
	}
	if promo := m.Promote(); promo != NoPiece {
		parts = append(parts, "Promote to "+PieceLetter(promo))
	}
	if p.IsCastling(m) {
		if To(m).File() == 6 {
			parts = append(parts, "Kingside Castle")
		} else {
			parts = append(parts, "Queenside Castle")
		}
	}
	if len(parts) == 0 {
		return "Quiet"
	}
	return strings.Join(parts, ", ")
}
