package engine

import (
	"fmt"

	mg "shrine-engine/shrinemg"
)

// MatePlies returns how many plies from the root the mate encoded by score
// happens, given the depth the root was searched to. ok is false for
// non-mate scores.
func MatePlies(score, depth int) (plies int, ok bool) {
	if !IsMateScore(score) {
		return 0, false
	}
	if score < 0 {
		score = -score
	}
	plies = depth - (score - MateScore)
	if plies < 0 {
		plies = 0
	}
	return plies, true
}

// ScoreString formats a White-positive score as a UCI score fragment from the
// point of view of side. Material scores are reported in centipawns.
func ScoreString(score int, side mg.Side, depth int) string {
	rel := score
	if side == mg.Black {
		rel = -score
	}
	plies, ok := MatePlies(score, depth)
	if !ok {
		return fmt.Sprintf("cp %d", rel*100)
	}
	if rel > 0 {
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	if plies < 2 {
		return "mate 0"
	}
	return fmt.Sprintf("mate -%d", plies/2)
}
