package shrinemg

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b Board, side Side, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves(side)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := b
		if err := child.Apply(m); err != nil {
			continue
		}
		nodes += Perft(child, side.Other(), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
func PerftDivide(b Board, side Side, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.LegalMoves(side) {
		child := b
		if err := child.Apply(m); err != nil {
			continue
		}
		result[m] = Perft(child, side.Other(), depth-1)
	}
	return result
}

// DivideLines renders a divide result as "move: nodes" lines in move text
// order, followed by the total.
func DivideLines(div map[Move]uint64) []string {
	byText := make(map[string]uint64, len(div))
	var total uint64
	for m, n := range div {
		byText[m.String()] = n
		total += n
	}
	keys := maps.Keys(byText)
	slices.Sort(keys)

	lines := make([]string, 0, len(keys)+2)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %d", k, byText[k]))
	}
	return append(lines, "", fmt.Sprintf("Nodes searched: %d", total))
}
