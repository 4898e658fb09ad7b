package board

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = fileA << 7
)

var (
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
	// pawnAttacks[c][sq] are the squares a pawn of colour c on sq attacks.
	pawnAttacks [2][64]uint64
)

func init() {
	for sq := 0; sq < 64; sq++ {
		bb := uint64(1) << sq

		kingAttacks[sq] = (bb<<8 | bb>>8) |
			((bb<<1 | bb<<9 | bb>>7) &^ fileA) |
			((bb>>1 | bb>>9 | bb<<7) &^ fileH)

		notA := ^fileA
		notAB := ^(fileA | fileA<<1)
		notH := ^fileH
		notGH := ^(fileH | fileH>>1)
		knightAttacks[sq] = (bb<<17)&notA | (bb<<15)&notH |
			(bb<<10)&notAB | (bb<<6)&notGH |
			(bb>>15)&notA | (bb>>17)&notH |
			(bb>>6)&notAB | (bb>>10)&notGH

		pawnAttacks[White][sq] = (bb<<9)&notA | (bb<<7)&notH
		pawnAttacks[Black][sq] = (bb>>7)&notA | (bb>>9)&notH
	}
}

func bitScan(bb uint64) int {
	return bits.TrailingZeros64(bb)
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) uint64 { return knightAttacks[sq] }

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) uint64 { return kingAttacks[sq] }

// attackersTo returns the pieces of colour by that attack sq given the
// occupancy occ.
func (p *Position) attackersTo(sq Square, by Color, occ uint64) uint64 {
	bbs := p.Pieces(by)
	diag := dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
	orth := dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
	return pawnAttacks[by.Other()][sq]&bbs.Pawns |
		knightAttacks[sq]&bbs.Knights |
		kingAttacks[sq]&bbs.Kings |
		diag&(bbs.Bishops|bbs.Queens) |
		orth&(bbs.Rooks|bbs.Queens)
}

// AttackedBy reports whether any piece of colour by attacks sq.
func (p *Position) AttackedBy(by Color, sq Square) bool {
	return p.attackersTo(sq, by, p.Occupied()) != 0
}

// Attackers returns the bitboard of by's pieces attacking sq.
func (p *Position) Attackers(by Color, sq Square) uint64 {
	return p.attackersTo(sq, by, p.Occupied())
}

// Attacks returns every square attacked by colour by.
func (p *Position) Attacks(by Color) uint64 {
	bbs := p.Pieces(by)
	occ := p.Occupied()

	var att uint64
	if by == White {
		att = (bbs.Pawns<<9)&^fileA | (bbs.Pawns<<7)&^fileH
	} else {
		att = (bbs.Pawns>>7)&^fileA | (bbs.Pawns>>9)&^fileH
	}
	for x := bbs.Knights; x != 0; x &= x - 1 {
		att |= knightAttacks[bitScan(x)]
	}
	for x := bbs.Bishops | bbs.Queens; x != 0; x &= x - 1 {
		att |= dragontoothmg.CalculateBishopMoveBitboard(uint8(bitScan(x)), occ)
	}
	for x := bbs.Rooks | bbs.Queens; x != 0; x &= x - 1 {
		att |= dragontoothmg.CalculateRookMoveBitboard(uint8(bitScan(x)), occ)
	}
	for x := bbs.Kings; x != 0; x &= x - 1 {
		att |= kingAttacks[bitScan(x)]
	}
	return att
}
