package engine

import (
	"errors"
	"fmt"
	"strings"

	"minimax-chess/board"
)

// Game results in PGN notation.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	DrawResult = "1/2-1/2"
	Unfinished = "*"
)

// GameRecord is a finished (or abandoned) game between two selectors.
type GameRecord struct {
	StartFEN string
	FinalFEN string
	Moves    []board.Move
	SAN      []string
	Outcome  board.Outcome
	Result   string
	// TimeForfeit is set when the side to move lost on time.
	TimeForfeit bool
}

// PGNMoves renders the move list with move numbers, e.g. "1. e4 e5 2. Nf3".
func (g *GameRecord) PGNMoves() string {
	var sb strings.Builder
	black := strings.Contains(g.StartFEN, " b ")
	number := 1
	if fields := strings.Fields(g.StartFEN); len(fields) == 6 {
		fmt.Sscanf(fields[5], "%d", &number)
	}
	for i, san := range g.SAN {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case !black:
			fmt.Fprintf(&sb, "%d. ", number)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", number)
		}
		sb.WriteString(san)
		if black {
			number++
		}
		black = !black
	}
	return sb.String()
}

// PlayGame lets white and black alternate from pos until the game ends or
// maxPlies moves have been played (maxPlies <= 0 means no limit). A
// selector returning ErrFlagged loses the game on time. pos itself is not
// modified.
func PlayGame(white, black MoveSelector, pos *board.Position, maxPlies int) (GameRecord, error) {
	game := pos.Clone()
	rec := GameRecord{StartFEN: game.FEN()}

	for maxPlies <= 0 || len(rec.Moves) < maxPlies {
		if game.IsGameOver() {
			break
		}
		selector := white
		if game.SideToMove() == board.Black {
			selector = black
		}
		m, err := selector.SelectMove(game)
		if errors.Is(err, ErrFlagged) {
			rec.FinalFEN = game.FEN()
			rec.Outcome = game.Outcome()
			rec.Result, rec.TimeForfeit = WhiteWins, true
			if game.SideToMove() == board.White {
				rec.Result = BlackWins
			}
			return rec, nil
		}
		if err != nil {
			return rec, fmt.Errorf("ply %d: %w", len(rec.Moves)+1, err)
		}
		san, err := game.SAN(m)
		if err != nil {
			return rec, fmt.Errorf("ply %d: %w", len(rec.Moves)+1, err)
		}
		rec.Moves = append(rec.Moves, m)
		rec.SAN = append(rec.SAN, san)
		game.Push(m)
	}

	rec.FinalFEN = game.FEN()
	rec.Outcome = game.Outcome()
	rec.Result = resultOf(game, rec.Outcome)
	return rec, nil
}

func resultOf(pos *board.Position, outcome board.Outcome) string {
	switch {
	case outcome == board.Checkmate && pos.SideToMove() == board.White:
		return BlackWins
	case outcome == board.Checkmate:
		return WhiteWins
	case outcome.IsDraw():
		return DrawResult
	}
	return Unfinished
}
