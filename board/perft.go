package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.Push(m)
		nodes += p.Perft(depth - 1)
		p.Pop()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func (p *Position) PerftDivide(depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range p.LegalMoves() {
		p.Push(m)
		div[m] = p.Perft(depth - 1)
		p.Pop()
	}
	return div
}
