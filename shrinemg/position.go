package shrinemg

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrIllegalMove is returned when a move is well formed but not legal in the position.
var ErrIllegalMove = errors.New("illegal move")

// Position pairs a board with the side to move. The board itself carries no
// turn information; the protocol adapters thread it through here.
type Position struct {
	Board Board
	Side  Side
}

// NewPosition returns the standard starting position with White to move.
func NewPosition() Position {
	return Position{Board: Startpos(), Side: White}
}

// LegalMoves returns the legal moves of the side to move.
func (p *Position) LegalMoves() []Move { return p.Board.LegalMoves(p.Side) }

// Play applies m and passes the turn. The board is untouched on error.
func (p *Position) Play(m Move) error {
	if err := p.Board.Apply(m); err != nil {
		return err
	}
	p.Side = p.Side.Other()
	return nil
}

// FindLegal parses coordinate text and returns the matching legal move.
func (p *Position) FindLegal(movestr string) (Move, error) {
	parsed, err := ParseMove(movestr)
	if err != nil {
		return NoMove, err
	}
	legal := p.LegalMoves()
	if i := slices.Index(legal, parsed); i >= 0 {
		return legal[i], nil
	}
	return NoMove, fmt.Errorf("%w: %s for %s", ErrIllegalMove, parsed, p.Side)
}

// PlayUCI validates and plays a sequence of moves in coordinate notation. It
// stops at the first move that fails, leaving the moves before it applied.
func (p *Position) PlayUCI(moves ...string) error {
	for _, text := range moves {
		m, err := p.FindLegal(text)
		if err != nil {
			return err
		}
		if err := p.Play(m); err != nil {
			return err
		}
	}
	return nil
}
