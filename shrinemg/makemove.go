package shrinemg

import (
	"errors"
	"fmt"
)

// ErrNoPieceAtSource is returned by Apply when the move's source square is empty.
var ErrNoPieceAtSource = errors.New("no piece on source square")

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Apply plays m on the board in place. Any piece on the destination is captured,
// a promotion replaces the pawn with the promoted kind of the same side, and the
// en passant target is updated. If no piece stands on the source square the
// board is left unchanged and ErrNoPieceAtSource is returned.
//
// Apply does not check legality; moves should come from the generator or from
// text already matched against LegalMoves.
func (b *Board) Apply(m Move) error {
	from, to := m.From(), m.To()
	moving := b.PieceAt(from)
	if moving == NoPiece {
		return fmt.Errorf("%w: %s", ErrNoPieceAtSource, from)
	}
	side := moving.Side()
	fromBB, toBB := bb(from), bb(to)

	place := moving
	if promo := m.Promotion(); promo != NoKind {
		place = MakePiece(side, promo)
	}

	// En passant: a pawn moving diagonally onto the empty target captures the
	// pawn that just passed it.
	if moving.Kind() == Pawn && to == b.EnPassant && from.File() != to.File() && b.AllOccupancy()&toBB == 0 {
		capSq := to - 8
		if side == Black {
			capSq = to + 8
		}
		b.Pieces[MakePiece(side.Other(), Pawn)] &^= bb(capSq)
	}

	b.Pieces[moving] &^= fromBB
	for i := range b.Pieces {
		if Piece(i) != place {
			b.Pieces[i] &^= toBB
		}
	}
	b.Pieces[place] |= toBB

	b.EnPassant = NoSquare
	if moving.Kind() == Pawn && abs(int(to)-int(from)) == 16 {
		b.EnPassant = (from + to) / 2
	}
	return nil
}
