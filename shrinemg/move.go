package shrinemg

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedMove is returned for move or square text that is not valid coordinate notation.
var ErrMalformedMove = errors.New("malformed move")

// Move encodes a move in 16 bits.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePromoteShift = 12 // 3 bits
)

// NoMove is the zero Move (a1a1), which the generator never produces.
const NoMove Move = 0

// NewMove constructs a Move. promo is NoKind for anything but a promotion.
func NewMove(from, to Square, promo Kind) Move {
	return Move(uint16(from&0x3F)<<moveFromShift |
		uint16(to&0x3F)<<moveToShift |
		uint16(promo&0x7)<<movePromoteShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint16(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint16(m) >> moveToShift) & 0x3F) }

// Promotion returns the promotion kind, or NoKind.
func (m Move) Promotion() Kind { return Kind((uint16(m) >> movePromoteShift) & 0x7) }

var promoLetters = map[Kind]byte{Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n'}

// String produces coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if ch, ok := promoLetters[m.Promotion()]; ok {
		str += string(ch)
	}
	return str
}

// String converts a square index to algebraic form ("a1".."h8").
func (sq Square) String() string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic text such as "e4" into a square index.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: square %q has wrong length", ErrMalformedMove, alg)
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: square %q out of range", ErrMalformedMove, alg)
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

// ParseMove converts coordinate text (e2e4, e7e8q) into a Move. It checks the
// syntax only; whether the move is playable is decided against a position.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return NoMove, fmt.Errorf("%w: %q must be 4 or 5 characters", ErrMalformedMove, movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return NoMove, err
	}
	promo := NoKind
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NoMove, fmt.Errorf("%w: invalid promotion piece %q", ErrMalformedMove, movestr[4])
		}
	}
	return NewMove(from, to, promo), nil
}
