package engine

import (
	"math/bits"

	mg "shrine-engine/shrinemg"
)

// Material values indexed by bitboard offset: pawn, knight, bishop, rook, queen.
// The king is never counted.
var PieceValues = [5]int{1, 3, 3, 5, 9}

// Evaluate returns the material balance of the board. Positive scores favour White.
func Evaluate(b *mg.Board) int {
	score := 0
	for i, v := range PieceValues {
		white := bits.OnesCount64(b.Pieces[i])
		black := bits.OnesCount64(b.Pieces[i+6])
		score += v * (white - black)
	}
	return score
}
