package shrinemg

import (
	"math/bits"
	"strings"
)

// Side identifies one of the two players.
type Side uint8

const (
	White Side = 0
	Black Side = 1
)

// Other returns the opposing side.
func (s Side) Other() Side { return s ^ 1 }

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Kind is a colorless piece type. NoKind doubles as "no promotion" inside a Move.
type Kind uint8

const (
	NoKind Kind = 0
	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

// Piece is an index into Board.Pieces: 0-5 are White pawn..king, 6-11 Black pawn..king.
type Piece int8

const NoPiece Piece = -1

// MakePiece combines a side and a kind into a bitboard index.
func MakePiece(side Side, kind Kind) Piece {
	if kind == NoKind || kind > King {
		return NoPiece
	}
	return Piece(int(side)*6 + int(kind) - 1)
}

// Side returns the owner of the piece. NoPiece reports White.
func (p Piece) Side() Side {
	if p >= 6 {
		return Black
	}
	return White
}

// Kind returns the colorless type of the piece.
func (p Piece) Kind() Kind {
	if p == NoPiece {
		return NoKind
	}
	return Kind(p%6) + 1
}

// Square is a board index 0-63 in row-major order from a1.
type Square int8

const NoSquare Square = -1

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns 0 for rank 1 through 7 for rank 8.
func (sq Square) Rank() int { return int(sq) >> 3 }

// Board holds the twelve piece bitboards plus the en passant target.
// It is a plain value: assigning it copies the whole position.
type Board struct {
	Pieces    [12]uint64
	EnPassant Square
}

// Startpos returns the standard initial position.
func Startpos() Board {
	return Board{
		Pieces: [12]uint64{
			0xFF << 8,
			1<<1 | 1<<6,
			1<<2 | 1<<5,
			1<<0 | 1<<7,
			1 << 3,
			1 << 4,
			0xFF << 48,
			1<<57 | 1<<62,
			1<<58 | 1<<61,
			1<<56 | 1<<63,
			1 << 59,
			1 << 60,
		},
		EnPassant: NoSquare,
	}
}

// EmptyBoard returns a board with no pieces and no en passant target.
func EmptyBoard() Board { return Board{EnPassant: NoSquare} }

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) Square {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return Square(idx)
}

// Occupancy returns every square held by the given side.
func (b *Board) Occupancy(side Side) uint64 {
	off := int(side) * 6
	return b.Pieces[off] | b.Pieces[off+1] | b.Pieces[off+2] |
		b.Pieces[off+3] | b.Pieces[off+4] | b.Pieces[off+5]
}

// AllOccupancy returns every occupied square.
func (b *Board) AllOccupancy() uint64 { return b.Occupancy(White) | b.Occupancy(Black) }

// Bitboard returns the bitboard of a single piece index.
func (b *Board) Bitboard(p Piece) uint64 {
	if p == NoPiece {
		return 0
	}
	return b.Pieces[p]
}

// PieceAt returns the piece index occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	mask := bb(sq)
	for i := range b.Pieces {
		if b.Pieces[i]&mask != 0 {
			return Piece(i)
		}
	}
	return NoPiece
}

// KingSquare returns the square of the side's king, or NoSquare when it has none.
func (b *Board) KingSquare(side Side) Square {
	k := b.Pieces[MakePiece(side, King)]
	if k == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(k))
}

// SetPiece places p on sq, replacing whatever stood there.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.ClearSquare(sq)
	if p != NoPiece {
		b.Pieces[p] |= bb(sq)
	}
}

// ClearSquare removes any piece from sq.
func (b *Board) ClearSquare(sq Square) {
	mask := ^bb(sq)
	for i := range b.Pieces {
		b.Pieces[i] &= mask
	}
}

// Validate checks that no square is claimed by two bitboards and that each side
// has at most one king.
func (b *Board) Validate() bool {
	var seen uint64
	for _, set := range b.Pieces {
		if seen&set != 0 {
			return false
		}
		seen |= set
	}
	for _, side := range []Side{White, Black} {
		if bits.OnesCount64(b.Pieces[MakePiece(side, King)]) > 1 {
			return false
		}
	}
	if b.EnPassant != NoSquare && (b.EnPassant < 0 || b.EnPassant > 63) {
		return false
	}
	return true
}

var pieceChars = [12]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// String renders the board as an 8x8 diagram, rank 8 first.
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			p := b.PieceAt(Square(rank*8 + file))
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(pieceChars[p])
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
