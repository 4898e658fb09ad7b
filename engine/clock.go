package engine

import (
	"math/bits"
	"time"

	"minimax-chess/board"
)

// Clock is one player's game clock. Budget turns it into a per-move search
// budget; Spend charges a finished move against it.
type Clock struct {
	Remaining time.Duration
	Increment time.Duration
}

const (
	moveOverhead   = 30 * time.Millisecond
	minMoveTime    = 5 * time.Millisecond
	maxClockShare  = 0.7
	panicThreshold = time.Second
	panicIncShare  = 0.9
)

// Budget estimates the moves left from the material phase and spends a
// matching share of the remaining time plus most of the increment.
func (c *Clock) Budget(pos *board.Position) time.Duration {
	rem, inc := c.Remaining, c.Increment
	movesLeft := time.Duration(estimateMovesRemaining(gamePhase(pos)))

	var moveTime time.Duration
	switch {
	case inc > 0 && rem < panicThreshold:
		moveTime = time.Duration(float64(inc) * panicIncShare)
	case inc > 0:
		moveTime = rem/movesLeft + inc
	default:
		moveTime = rem / 40
	}

	moveTime = max(moveTime, minMoveTime)
	moveTime = min(moveTime, time.Duration(float64(rem)*maxClockShare), rem-moveOverhead)
	return max(moveTime, minMoveTime)
}

// Spend deducts the time a move took and adds the increment.
func (c *Clock) Spend(elapsed time.Duration) {
	c.Remaining += c.Increment - elapsed
}

// Flagged reports whether the clock ran out.
func (c *Clock) Flagged() bool {
	return c.Remaining <= 0
}

// gamePhase counts non-pawn material: 24 with all pieces on the board, 0
// with bare kings and pawns.
func gamePhase(pos *board.Position) int {
	w, b := pos.Pieces(board.White), pos.Pieces(board.Black)
	minors := bits.OnesCount64(w.Knights | w.Bishops | b.Knights | b.Bishops)
	rooks := bits.OnesCount64(w.Rooks | b.Rooks)
	queens := bits.OnesCount64(w.Queens | b.Queens)
	return min(minors+2*rooks+4*queens, 24)
}

// estimateMovesRemaining interpolates between 20 moves (endgame) and 45
// (opening).
func estimateMovesRemaining(phase int) int {
	return phase*25/24 + 20
}

// TimedSelector searches with budgets drawn from a game clock. It returns
// ErrFlagged when the clock runs out, before or during the search.
type TimedSelector struct {
	Session *Session
	Clock   *Clock
}

func (t TimedSelector) SelectMove(pos *board.Position) (board.Move, error) {
	if t.Clock.Flagged() {
		return 0, ErrFlagged
	}
	start := time.Now()
	res := t.Session.Search(pos, t.Session.cfg.MaxDepth, t.Clock.Budget(pos))
	t.Clock.Spend(time.Since(start))
	if !res.HasMove {
		return 0, ErrNoLegalMoves
	}
	if t.Clock.Flagged() {
		t.Session.log.Infow("flagged", "remaining", t.Clock.Remaining)
		return 0, ErrFlagged
	}
	t.Session.log.Debugw("clock", "remaining", t.Clock.Remaining, "depth", res.Depth)
	return res.Move, nil
}
