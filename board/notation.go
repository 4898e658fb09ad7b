package board

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

// notnilPosition mirrors p in notnil/chess, which handles SAN for us.
func (p *Position) notnilPosition() (*chess.Position, error) {
	opt, err := chess.FEN(p.FEN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// SAN encodes a legal move in standard algebraic notation.
func (p *Position) SAN(m Move) (string, error) {
	pos, err := p.notnilPosition()
	if err != nil {
		return "", err
	}
	// Only generated moves carry the check tags that give SAN its +/#.
	uci := m.String()
	for _, nm := range pos.ValidMoves() {
		if (chess.UCINotation{}).Encode(pos, nm) == uci {
			return chess.AlgebraicNotation{}.Encode(pos, nm), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// ParseMove accepts a move in UCI ("e2e4", "e7e8q") or SAN ("Nf3", "O-O")
// and returns the matching legal move.
func (p *Position) ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if uci := strings.ToLower(s); looksLikeUCI(uci) {
		if m, err := dragontoothmg.ParseMove(uci); err == nil {
			if legal, ok := p.findLegal(m); ok {
				return legal, nil
			}
		}
	}

	pos, err := p.notnilPosition()
	if err != nil {
		return 0, err
	}
	nm, err := chess.AlgebraicNotation{}.Decode(pos, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	uci := chess.UCINotation{}.Encode(pos, nm)
	if !looksLikeUCI(uci) {
		return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	m, err := dragontoothmg.ParseMove(uci)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	if legal, ok := p.findLegal(m); ok {
		return legal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}

// looksLikeUCI guards the generator's parser, which assumes well-formed input.
func looksLikeUCI(s string) bool {
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if _, ok := ParseSquare(s[0:2]); !ok {
		return false
	}
	if _, ok := ParseSquare(s[2:4]); !ok {
		return false
	}
	return len(s) == 4 || strings.ContainsRune("nbrq", rune(s[4]))
}

func (p *Position) findLegal(m Move) (Move, bool) {
	for _, legal := range p.LegalMoves() {
		if legal == m {
			return legal, true
		}
	}
	return 0, false
}

// Draw renders the board as text, White at the bottom.
func (p *Position) Draw() string {
	pos, err := p.notnilPosition()
	if err != nil {
		return p.FEN()
	}
	return pos.Board().Draw()
}
