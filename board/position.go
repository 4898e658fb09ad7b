package board

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// state is one entry of the position history: what we need to reason about
// repetitions and the fifty-move rule, plus the closure that undoes the move
// which produced it.
type state struct {
	hash   uint64
	rule50 int
	move   Move
	undo   func()
	// ep is set while the board carries an en passant square.
	ep bool
}

// Position is a mutable chess position with a push/pop move stack.
// It is not safe for concurrent use.
type Position struct {
	b       dragontoothmg.Board
	history []state
	// root is the history index of the position this handle was created
	// with; entries before it only feed repetition detection.
	root int
}

// New returns the standard starting position.
func New() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

func newPosition(b dragontoothmg.Board, rule50 int, ep bool) *Position {
	p := &Position{b: b, history: make([]state, 1, 64)}
	p.history[0] = state{hash: b.Hash(), rule50: rule50, ep: ep}
	return p
}

// Clone returns an independent copy of the current position. The clone
// keeps the hash history for repetition detection but cannot pop past the
// current position.
func (p *Position) Clone() *Position {
	c := &Position{b: p.b, history: make([]state, len(p.history), cap(p.history))}
	for i, st := range p.history {
		c.history[i] = state{hash: st.hash, rule50: st.rule50, move: st.move, ep: st.ep}
	}
	c.root = len(c.history) - 1
	return c
}

func (p *Position) FEN() string {
	return p.b.ToFen()
}

// Key is the Zobrist hash of the position. It ignores the move counters.
func (p *Position) Key() uint64 {
	return p.b.Hash()
}

func (p *Position) SideToMove() Color {
	if p.b.Wtomove {
		return White
	}
	return Black
}

// Ply is the number of moves pushed since the position was created.
func (p *Position) Ply() int {
	return len(p.history) - 1 - p.root
}

// Moves returns the pushed moves, oldest first.
func (p *Position) Moves() []Move {
	moves := make([]Move, 0, p.Ply())
	for _, st := range p.history[p.root+1:] {
		moves = append(moves, st.move)
	}
	return moves
}

// LastMove returns the most recently pushed move, if any.
func (p *Position) LastMove() (Move, bool) {
	if p.Ply() == 0 {
		return 0, false
	}
	return p.history[len(p.history)-1].move, true
}

func (p *Position) LegalMoves() []Move {
	return p.b.GenerateLegalMoves()
}

// Push plays a legal move and returns a function that pops it again, so a
// caller can write `defer pos.Push(m)()`.
func (p *Position) Push(m Move) func() {
	rule50 := p.rule50() + 1
	pawn := p.MovedPiece(m) == Pawn
	if pawn || p.IsCapture(m) {
		rule50 = 0
	}
	step := int(To(m)) - int(From(m))
	undo := p.b.Apply(m)
	p.history = append(p.history, state{
		hash:   p.b.Hash(),
		rule50: rule50,
		move:   m,
		undo:   undo,
		ep:     pawn && (step == 16 || step == -16),
	})
	return p.Pop
}

// Pop undoes the most recent Push. Popping past the root is a no-op.
func (p *Position) Pop() {
	n := len(p.history)
	if n-1 <= p.root {
		return
	}
	top := p.history[n-1]
	p.history = p.history[:n-1]
	top.undo()
}

// WithSideToMove runs fn with c temporarily set as the side to move and
// restores the position before returning, even if fn panics. While the
// turn is switched the board has no en passant square, since that square
// only ever belongs to the real side to move. fn must not push or pop
// moves.
func (p *Position) WithSideToMove(c Color, fn func()) {
	if c == p.SideToMove() {
		fn()
		return
	}
	saved := p.b
	defer func() { p.b = saved }()
	if p.history[len(p.history)-1].ep {
		// The generator tests en passant captures by editing the bitboards
		// in place, which is only sound for the side owning the square.
		fields := strings.Fields(p.b.ToFen())
		fields[1], fields[3] = "w", "-"
		if c == Black {
			fields[1] = "b"
		}
		p.b = dragontoothmg.ParseFen(strings.Join(fields, " "))
	} else {
		p.b.Wtomove = c == White
	}
	fn()
}

// Pieces returns the bitboards of one side.
func (p *Position) Pieces(c Color) dragontoothmg.Bitboards {
	if c == White {
		return p.b.White
	}
	return p.b.Black
}

// Occupied returns the bitboard of all pieces.
func (p *Position) Occupied() uint64 {
	return p.b.White.All | p.b.Black.All
}

// PieceAt returns the piece on sq, with Type NoPiece when the square is empty.
func (p *Position) PieceAt(sq Square) Piece {
	if pt, ok := pieceTypeAt(sq, &p.b.White); ok {
		return Piece{Type: pt, Color: White}
	}
	if pt, ok := pieceTypeAt(sq, &p.b.Black); ok {
		return Piece{Type: pt, Color: Black}
	}
	return Piece{}
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	bb := p.Pieces(c)
	return Square(bitScan(bb.Kings))
}

func (p *Position) rule50() int {
	return p.history[len(p.history)-1].rule50
}

func pieceTypeAt(sq Square, bbs *dragontoothmg.Bitboards) (PieceType, bool) {
	bit := sq.Bit()
	if bbs.All&bit == 0 {
		return NoPiece, false
	}
	switch {
	case bbs.Pawns&bit != 0:
		return Pawn, true
	case bbs.Knights&bit != 0:
		return Knight, true
	case bbs.Bishops&bit != 0:
		return Bishop, true
	case bbs.Rooks&bit != 0:
		return Rook, true
	case bbs.Queens&bit != 0:
		return Queen, true
	case bbs.Kings&bit != 0:
		return King, true
	}
	return NoPiece, false
}
