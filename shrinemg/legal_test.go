package shrinemg_test

import (
	"testing"

	mg "shrine-engine/shrinemg"
)

func TestKingAttacked_RookFiles(t *testing.T) {
	b := boardWith(t, map[string]mg.Piece{
		"e1": mg.MakePiece(mg.White, mg.King),
		"e8": mg.MakePiece(mg.Black, mg.Rook),
	})
	if !b.InCheck(mg.White) {
		t.Fatalf("expected White in check from rook on file")
	}
	b.SetPiece(mustSquare(t, "e3"), mg.MakePiece(mg.White, mg.Pawn))
	if b.KingAttacked(mg.White) {
		t.Fatalf("did not expect e1 attacked after blocker added")
	}
}

func TestKingAttacked_BishopDiagonals(t *testing.T) {
	// b4 -> c3 -> d2 -> e1
	b := boardWith(t, map[string]mg.Piece{
		"e1": mg.MakePiece(mg.White, mg.King),
		"b4": mg.MakePiece(mg.Black, mg.Bishop),
	})
	if !b.KingAttacked(mg.White) {
		t.Fatalf("expected e1 attacked by bishop along diagonal")
	}
	b.SetPiece(mustSquare(t, "d2"), mg.MakePiece(mg.White, mg.Pawn))
	if b.KingAttacked(mg.White) {
		t.Fatalf("did not expect e1 attacked after diagonal blocker")
	}
}

func TestKingAttacked_PawnsKnightsKings(t *testing.T) {
	tests := []struct {
		name     string
		attacker string
		piece    mg.Piece
		want     bool
	}{
		{"black pawn d2", "d2", mg.MakePiece(mg.Black, mg.Pawn), true},
		{"black pawn e2 pushes, does not capture", "e2", mg.MakePiece(mg.Black, mg.Pawn), false},
		{"knight f3", "f3", mg.MakePiece(mg.Black, mg.Knight), true},
		{"knight e3", "e3", mg.MakePiece(mg.Black, mg.Knight), false},
		{"adjacent king d2", "d2", mg.MakePiece(mg.Black, mg.King), true},
		{"queen h4", "h4", mg.MakePiece(mg.Black, mg.Queen), true},
		{"white pawn d2 is friendly", "d2", mg.MakePiece(mg.White, mg.Pawn), false},
	}
	for _, tc := range tests {
		b := boardWith(t, map[string]mg.Piece{
			"e1":        mg.MakePiece(mg.White, mg.King),
			tc.attacker: tc.piece,
		})
		if got := b.KingAttacked(mg.White); got != tc.want {
			t.Errorf("%s: KingAttacked = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestKingAttackedWithoutKing(t *testing.T) {
	b := boardWith(t, map[string]mg.Piece{"e8": mg.MakePiece(mg.Black, mg.Queen)})
	if b.KingAttacked(mg.White) {
		t.Fatalf("a side with no king cannot be attacked")
	}
}

func TestPinnedPieceHasNoLegalMoves(t *testing.T) {
	p := mustFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	e2 := mustSquare(t, "e2")
	if len(destinations(p.Board.GeneratePseudoMoves(mg.White), e2)) == 0 {
		t.Fatalf("expected pseudo-legal bishop moves")
	}
	legal := p.Board.LegalMoves(mg.White)
	if got := destinations(legal, e2); len(got) != 0 {
		t.Fatalf("pinned bishop moved: %v", got)
	}
	if len(legal) != 4 {
		t.Fatalf("expected 4 king moves, got %v", legal)
	}
}

func TestLegalMovesKeepKingSafe(t *testing.T) {
	fens := []string{
		mg.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
		"4k3/8/8/8/1b6/8/3P4/4K2R w - - 0 1",
	}
	for _, fen := range fens {
		p := mustFEN(t, fen)
		for _, m := range p.LegalMoves() {
			after := p.Board
			if err := after.Apply(m); err != nil {
				t.Fatalf("%s: Apply(%s): %v", fen, m, err)
			}
			ksq := after.KingSquare(p.Side)
			var reach uint64
			for _, reply := range after.GeneratePseudoMoves(p.Side.Other()) {
				reach |= 1 << uint(reply.To())
			}
			if ksq != mg.NoSquare && reach&(1<<uint(ksq)) != 0 {
				t.Errorf("%s: %s leaves the king on %s en prise", fen, m, ksq)
			}
		}
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	mate := mustFEN(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if !mate.Board.IsCheckmate(mg.Black) {
		t.Fatalf("expected back-rank mate")
	}
	if mate.Board.IsStalemate(mg.Black) {
		t.Fatalf("mate reported as stalemate")
	}

	stale := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !stale.Board.IsStalemate(mg.Black) {
		t.Fatalf("expected stalemate")
	}
	if stale.Board.IsCheckmate(mg.Black) {
		t.Fatalf("stalemate reported as mate")
	}

	start := mg.Startpos()
	if start.IsCheckmate(mg.White) || start.IsStalemate(mg.White) || !start.HasLegalMoves(mg.White) {
		t.Fatalf("initial position misclassified")
	}
}
