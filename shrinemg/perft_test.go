package shrinemg_test

import (
	"testing"

	mg "shrine-engine/shrinemg"
)

// Castling-free perft references; castling is not part of this move generator.
var perftCases = []struct {
	name  string
	fen   string
	nodes []uint64 // nodes[i] is perft(i+1)
}{
	{"initial", mg.FENStartPos, []uint64{20, 400, 8902}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"promotions", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1", []uint64{24, 496, 9483}},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		p := mustFEN(t, tc.fen)
		for i, want := range tc.nodes {
			depth := i + 1
			if got := mg.Perft(p.Board, p.Side, depth); got != want {
				div := mg.PerftDivide(p.Board, p.Side, depth)
				for m, n := range div {
					t.Logf("  %s: %d", m, n)
				}
				t.Fatalf("%s perft(%d): got %d want %d", tc.name, depth, got, want)
			}
		}
	}
}

func TestPerftInitialDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth-4 perft in short mode")
	}
	if got := mg.Perft(mg.Startpos(), mg.White, 4); got != 197281 {
		t.Fatalf("perft(4): got %d want %d", got, 197281)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := mg.Startpos()
	div := mg.PerftDivide(b, mg.White, 3)
	if len(div) != 20 {
		t.Fatalf("divide has %d root moves, want 20", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide sum = %d, want 8902", sum)
	}
	lines := mg.DivideLines(div)
	if lines[0] != "a2a3: 380" || lines[len(lines)-1] != "Nodes searched: 8902" {
		t.Fatalf("unexpected divide lines: first %q last %q", lines[0], lines[len(lines)-1])
	}
	if mg.Perft(b, mg.White, 0) != 1 || len(mg.PerftDivide(b, mg.White, 0)) != 0 {
		t.Fatalf("depth 0 perft should count the root only")
	}
}
