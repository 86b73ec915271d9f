package shrinemg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is returned when a FEN string cannot be decoded into a position.
var ErrInvalidFEN = errors.New("invalid FEN")

func kindFromChess(pt chess.PieceType) Kind {
	switch pt {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	case chess.King:
		return King
	default:
		return NoKind
	}
}

// ParseFEN decodes a FEN string into a Position. Castling rights and the move
// clocks are accepted but not kept: this engine plays neither castling nor
// clock-based draws.
func ParseFEN(fen string) (Position, error) {
	opt, err := chess.FEN(strings.TrimSpace(fen))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	pos := chess.NewGame(opt).Position()

	p := Position{Board: EmptyBoard(), Side: White}
	if pos.Turn() == chess.Black {
		p.Side = Black
	}
	for sq, pc := range pos.Board().SquareMap() {
		side := White
		if pc.Color() == chess.Black {
			side = Black
		}
		piece := MakePiece(side, kindFromChess(pc.Type()))
		if piece == NoPiece {
			continue
		}
		p.Board.SetPiece(Square(sq), piece)
	}
	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		p.Board.EnPassant = Square(ep)
	}
	if !p.Board.Validate() {
		return Position{}, fmt.Errorf("%w: inconsistent piece placement", ErrInvalidFEN)
	}
	return p, nil
}

// MustParseFEN is ParseFEN for constant inputs; it panics on error.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FEN produces the FEN string of the position. Castling is always "-" and the
// clocks are reported as "0 1".
func (p Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			piece := p.Board.PieceAt(Square(rank*8 + file))
			if piece == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceChars[piece])
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	// 2. Side to move
	if p.Side == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}

	// 3. Castling, 4. en passant, 5-6. clocks
	sb.WriteString(" - ")
	sb.WriteString(p.Board.EnPassant.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
