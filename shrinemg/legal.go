package shrinemg

// KingAttacked reports whether any pseudo-legal move of the opponent lands on
// side's king. A side without a king is never attacked.
func (b *Board) KingAttacked(side Side) bool {
	ksq := b.KingSquare(side)
	if ksq == NoSquare {
		return false
	}
	var buf [256]Move
	for _, m := range b.GeneratePseudoMovesInto(buf[:0], side.Other()) {
		if m.To() == ksq {
			return true
		}
	}
	return false
}

// InCheck reports whether side's king is currently attacked.
func (b *Board) InCheck(side Side) bool { return b.KingAttacked(side) }

// LegalMoves returns the pseudo-legal moves of side that do not leave its own
// king attacked. Each candidate is tried on a scratch copy of the board.
func (b *Board) LegalMoves(side Side) []Move {
	pseudo := b.GeneratePseudoMoves(side)
	legal := pseudo[:0]
	for _, m := range pseudo {
		scratch := *b
		if err := scratch.Apply(m); err != nil {
			continue
		}
		if !scratch.KingAttacked(side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether side has at least one legal move.
func (b *Board) HasLegalMoves(side Side) bool {
	for _, m := range b.GeneratePseudoMoves(side) {
		scratch := *b
		if err := scratch.Apply(m); err == nil && !scratch.KingAttacked(side) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether side is in check with no legal reply.
func (b *Board) IsCheckmate(side Side) bool {
	return b.InCheck(side) && !b.HasLegalMoves(side)
}

// IsStalemate reports whether side is not in check but has no legal move.
func (b *Board) IsStalemate(side Side) bool {
	return !b.InCheck(side) && !b.HasLegalMoves(side)
}
