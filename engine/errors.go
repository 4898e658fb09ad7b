package engine

import "errors"

// ErrNoLegalMoves is returned by move selectors when the side to move has
// no legal move.
var ErrNoLegalMoves = errors.New("no legal moves")

// ErrFlagged is returned by TimedSelector once its clock has run out.
var ErrFlagged = errors.New("clock flagged")
