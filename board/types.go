package board

import (
	"errors"

	"github.com/dylhunn/dragontoothmg"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
)

// Move is the generator's packed move encoding. The zero value is "no move".
type Move = dragontoothmg.Move

// PieceType shares dragontoothmg's numbering so it can index the piece tables directly.
type PieceType = dragontoothmg.Piece

const (
	NoPiece PieceType = dragontoothmg.Nothing
	Pawn    PieceType = dragontoothmg.Pawn
	Knight  PieceType = dragontoothmg.Knight
	Bishop  PieceType = dragontoothmg.Bishop
	Rook    PieceType = dragontoothmg.Rook
	Queen   PieceType = dragontoothmg.Queen
	King    PieceType = dragontoothmg.King
)

var pieceLetters = [7]byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}

// PieceLetter returns the upper case letter of a piece type.
func PieceLetter(pt PieceType) string {
	if int(pt) >= len(pieceLetters) {
		return "?"
	}
	return string(pieceLetters[pt])
}

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is a coloured piece; Type is NoPiece for an empty square.
type Piece struct {
	Type  PieceType
	Color Color
}

// Square indexes the board from a1 = 0 to h8 = 63.
type Square uint8

func SquareOf(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }

func (s Square) Bit() uint64 { return uint64(1) << s }

func (s Square) String() string {
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare parses algebraic square names such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return 0, false
	}
	return SquareOf(int(name[0]-'a'), int(name[1]-'1')), true
}

// Outcome describes why a game ended, or Ongoing.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	}
	return "ongoing"
}

// IsDraw reports whether the outcome is one of the drawing conditions.
func (o Outcome) IsDraw() bool {
	return o != Ongoing && o != Checkmate
}
