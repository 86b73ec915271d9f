package shrinemg_test

import (
	"errors"
	"testing"

	mg "shrine-engine/shrinemg"
)

func mustMove(t *testing.T, text string) mg.Move {
	t.Helper()
	m, err := mg.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

func TestApplyRoundTrip(t *testing.T) {
	start := mg.Startpos()
	b := start
	for _, text := range []string{"g1f3", "f3g1", "b8c6", "c6b8"} {
		if err := b.Apply(mustMove(t, text)); err != nil {
			t.Fatalf("Apply(%s): %v", text, err)
		}
		if !b.Validate() {
			t.Fatalf("board invalid after %s", text)
		}
	}
	if b != start {
		t.Fatalf("board not restored after move and reverse:\n%s", b)
	}
}

func TestApplyCapture(t *testing.T) {
	p := mustFEN(t, "r3k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	b := p.Board
	if err := b.Apply(mustMove(t, "a1a8")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !b.Validate() {
		t.Fatalf("board invalid after capture")
	}
	if b.Pieces[mg.MakePiece(mg.Black, mg.Rook)] != 0 {
		t.Fatalf("captured rook still on the board")
	}
	if got := b.PieceAt(mustSquare(t, "a8")); got != mg.MakePiece(mg.White, mg.Rook) {
		t.Fatalf("a8 holds %d after capture", got)
	}
	if b.PieceAt(mustSquare(t, "a1")) != mg.NoPiece {
		t.Fatalf("a1 not vacated")
	}
}

func TestApplyNoPieceLeavesBoardUntouched(t *testing.T) {
	b := mg.Startpos()
	before := b
	err := b.Apply(mustMove(t, "e4e5"))
	if !errors.Is(err, mg.ErrNoPieceAtSource) {
		t.Fatalf("expected ErrNoPieceAtSource, got %v", err)
	}
	if b != before {
		t.Fatalf("board changed after rejected move")
	}
}

func TestApplyTracksEnPassantTarget(t *testing.T) {
	b := mg.Startpos()
	if err := b.Apply(mustMove(t, "e2e4")); err != nil {
		t.Fatal(err)
	}
	if b.EnPassant != mustSquare(t, "e3") {
		t.Fatalf("en passant target after e2e4 = %s, want e3", b.EnPassant)
	}
	if err := b.Apply(mustMove(t, "g8f6")); err != nil {
		t.Fatal(err)
	}
	if b.EnPassant != mg.NoSquare {
		t.Fatalf("en passant target not cleared, got %s", b.EnPassant)
	}
	if err := b.Apply(mustMove(t, "e4e5")); err != nil {
		t.Fatal(err)
	}
	if b.EnPassant != mg.NoSquare {
		t.Fatalf("single push set en passant target %s", b.EnPassant)
	}
	if err := b.Apply(mustMove(t, "d7d5")); err != nil {
		t.Fatal(err)
	}
	if b.EnPassant != mustSquare(t, "d6") {
		t.Fatalf("en passant target after d7d5 = %s, want d6", b.EnPassant)
	}
}

func TestApplyEnPassantCapture(t *testing.T) {
	p := mustFEN(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	b := p.Board
	if err := b.Apply(mustMove(t, "e5d6")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !b.Validate() {
		t.Fatalf("board invalid after en passant")
	}
	if b.Pieces[mg.MakePiece(mg.Black, mg.Pawn)] != 0 {
		t.Fatalf("passed pawn on d5 was not removed")
	}
	if b.PieceAt(mustSquare(t, "d6")) != mg.MakePiece(mg.White, mg.Pawn) {
		t.Fatalf("capturing pawn not on d6")
	}
}

func TestApplyPromotionKeepsSide(t *testing.T) {
	p := mustFEN(t, "k7/8/8/8/8/8/4p3/K7 b - - 0 1")
	b := p.Board
	if err := b.Apply(mustMove(t, "e2e1n")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := b.PieceAt(mustSquare(t, "e1")); got != mg.MakePiece(mg.Black, mg.Knight) {
		t.Fatalf("e1 holds %d, want black knight", got)
	}
	if b.Pieces[mg.MakePiece(mg.Black, mg.Pawn)] != 0 {
		t.Fatalf("pawn bit survived promotion")
	}
}
