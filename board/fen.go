package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FromFEN parses and validates a FEN string. The move counters may be
// omitted, in which case they default to "0 1".
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	switch len(fields) {
	case 4:
		fields = append(fields, "0", "1")
	case 6:
	default:
		return nil, fmt.Errorf("%w: expected 4 or 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	if err := validatePlacement(fields[0]); err != nil {
		return nil, err
	}
	if fields[1] != "w" && fields[1] != "b" {
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	if err := validateCastling(fields[2]); err != nil {
		return nil, err
	}
	if fields[3] != "-" {
		// White captures onto the sixth rank, Black onto the third.
		rank := 5
		if fields[1] == "b" {
			rank = 2
		}
		sq, ok := ParseSquare(fields[3])
		if !ok || sq.Rank() != rank {
			return nil, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
	}
	rule50, err := strconv.Atoi(fields[4])
	if err != nil || rule50 < 0 {
		return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
	}
	if n, err := strconv.Atoi(fields[5]); err != nil || n < 1 {
		return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
	}

	b, err := parseBoard(strings.Join(fields, " "))
	if err != nil {
		return nil, err
	}
	p := newPosition(b, rule50, fields[3] != "-")

	stm := p.SideToMove()
	if p.AttackedBy(stm, p.KingSquare(stm.Other())) {
		return nil, fmt.Errorf("%w: %s king is in check with %s to move", ErrInvalidFEN, stm.Other(), stm)
	}
	return p, nil
}

// parseBoard hands a validated FEN to the generator, which panics on input
// it cannot handle.
func parseBoard(fen string) (b dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidFEN, r)
		}
	}()
	return dragontoothmg.ParseFen(fen), nil
}

func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	kings := map[rune]int{}
	for i, rank := range ranks {
		files := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				files += int(c - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", c):
				if (c == 'p' || c == 'P') && (i == 0 || i == 7) {
					return fmt.Errorf("%w: pawn on back rank", ErrInvalidFEN)
				}
				if c == 'k' || c == 'K' {
					kings[c]++
				}
				files++
			default:
				return fmt.Errorf("%w: unexpected character %q", ErrInvalidFEN, c)
			}
		}
		if files != 8 {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, 8-i, files)
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return fmt.Errorf("%w: each side needs exactly one king", ErrInvalidFEN)
	}
	return nil
}

func validateCastling(rights string) error {
	if rights == "-" {
		return nil
	}
	seen := map[rune]bool{}
	for _, c := range rights {
		if !strings.ContainsRune("KQkq", c) || seen[c] {
			return fmt.Errorf("%w: castling rights %q", ErrInvalidFEN, rights)
		}
		seen[c] = true
	}
	return nil
}
