package shrinemg

// One-dimensional board offsets. A step of -9, +7 or -1 moves one file toward
// the a-file; +9, -7 or +1 moves toward the h-file.
var (
	knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopDirs    = [4]int{-9, -7, 7, 9}
	rookDirs      = [4]int{-8, -1, 1, 8}
)

var promotionOrder = [4]Kind{Queen, Rook, Bishop, Knight}

// pawnGeometry holds the per-side pawn offsets and ranks.
type pawnGeometry struct {
	forward, left, right int
	startRank, farRank   int
	epRank               int // rank of an en passant target this side may capture onto
}

var pawnGeo = [2]pawnGeometry{
	White: {forward: 8, left: 7, right: 9, startRank: 1, farRank: 7, epRank: 5},
	Black: {forward: -8, left: -9, right: -7, startRank: 6, farRank: 0, epRank: 2},
}

// edgeBlocks reports whether a step in dir from sq would wrap around the board
// onto the opposite file.
func edgeBlocks(sq Square, dir int) bool {
	switch dir {
	case -9, 7, -1:
		return sq.File() == 0
	case 9, -7, 1:
		return sq.File() == 7
	}
	return false
}

func onBoard(t int) bool { return t >= 0 && t < 64 }

func fileDistance(a, b Square) int {
	d := a.File() - b.File()
	if d < 0 {
		return -d
	}
	return d
}

// GeneratePseudoMoves returns every pseudo-legal move for side. Moves may leave
// the mover's own king in check; see LegalMoves.
func (b *Board) GeneratePseudoMoves(side Side) []Move {
	return b.GeneratePseudoMovesInto(make([]Move, 0, 64), side)
}

// GeneratePseudoMovesInto appends the pseudo-legal moves for side into dst[:0].
// Order is pawns, knights, bishops, rooks, queens, king, each by ascending square.
func (b *Board) GeneratePseudoMovesInto(dst []Move, side Side) []Move {
	moves := dst[:0]
	off := int(side) * 6
	friends := b.Occupancy(side)
	enemies := b.Occupancy(side.Other())

	moves = b.pawnMoves(moves, side, friends|enemies, enemies)
	moves = knightMoves(moves, b.Pieces[off+1], friends)
	moves = slidingMoves(moves, b.Pieces[off+2], bishopDirs[:], friends, enemies)
	moves = slidingMoves(moves, b.Pieces[off+3], rookDirs[:], friends, enemies)
	moves = slidingMoves(moves, b.Pieces[off+4], kingOffsets[:], friends, enemies)
	moves = kingMoves(moves, b.Pieces[off+5], friends)
	return moves
}

func (b *Board) pawnMoves(moves []Move, side Side, everyone, enemies uint64) []Move {
	geo := pawnGeo[side]
	pawns := b.Pieces[int(side)*6]
	for pawns != 0 {
		from := popLSB(&pawns)

		push := int(from) + geo.forward
		if onBoard(push) && everyone&bb(Square(push)) == 0 {
			moves = appendPawnMove(moves, from, Square(push), geo.farRank)
			if from.Rank() == geo.startRank {
				double := push + geo.forward
				if everyone&bb(Square(double)) == 0 {
					moves = append(moves, NewMove(from, Square(double), NoKind))
				}
			}
		}

		if from.File() != 0 {
			moves = b.pawnCapture(moves, from, int(from)+geo.left, everyone, enemies, geo)
		}
		if from.File() != 7 {
			moves = b.pawnCapture(moves, from, int(from)+geo.right, everyone, enemies, geo)
		}
	}
	return moves
}

func (b *Board) pawnCapture(moves []Move, from Square, t int, everyone, enemies uint64, geo pawnGeometry) []Move {
	if !onBoard(t) {
		return moves
	}
	to := Square(t)
	if enemies&bb(to) != 0 {
		return appendPawnMove(moves, from, to, geo.farRank)
	}
	if to == b.EnPassant && to.Rank() == geo.epRank && everyone&bb(to) == 0 {
		return append(moves, NewMove(from, to, NoKind))
	}
	return moves
}

// appendPawnMove adds a pawn move, fanning out into the four promotions on the far rank.
func appendPawnMove(moves []Move, from, to Square, farRank int) []Move {
	if to.Rank() != farRank {
		return append(moves, NewMove(from, to, NoKind))
	}
	for _, k := range promotionOrder {
		moves = append(moves, NewMove(from, to, k))
	}
	return moves
}

func knightMoves(moves []Move, knights, friends uint64) []Move {
	for knights != 0 {
		from := popLSB(&knights)
		for _, off := range knightOffsets {
			t := int(from) + off
			if !onBoard(t) {
				continue
			}
			to := Square(t)
			// a 1-D offset that wrapped across a row lands more than two files away
			if fileDistance(from, to) > 2 {
				continue
			}
			if friends&bb(to) != 0 {
				continue
			}
			moves = append(moves, NewMove(from, to, NoKind))
		}
	}
	return moves
}

func slidingMoves(moves []Move, sliders uint64, dirs []int, friends, enemies uint64) []Move {
	for sliders != 0 {
		from := popLSB(&sliders)
		for _, dir := range dirs {
			sq := from
			for !edgeBlocks(sq, dir) {
				t := int(sq) + dir
				if !onBoard(t) {
					break
				}
				sq = Square(t)
				if friends&bb(sq) != 0 {
					break
				}
				moves = append(moves, NewMove(from, sq, NoKind))
				if enemies&bb(sq) != 0 {
					break
				}
			}
		}
	}
	return moves
}

func kingMoves(moves []Move, kings, friends uint64) []Move {
	for kings != 0 {
		from := popLSB(&kings)
		for _, dir := range kingOffsets {
			if edgeBlocks(from, dir) {
				continue
			}
			t := int(from) + dir
			if !onBoard(t) {
				continue
			}
			to := Square(t)
			if friends&bb(to) != 0 {
				continue
			}
			moves = append(moves, NewMove(from, to, NoKind))
		}
	}
	return moves
}
