package engine

import (
	"fmt"
	"io"
)

// Stats collects node counts for a single search.
type Stats struct {
	Nodes      uint64 // every position visited, root included
	Leaves     uint64 // depth-0 positions scored by Evaluate
	Mates      uint64 // interior positions with no legal move while in check
	Stalemates uint64 // interior positions with no legal move and no check
}

func (s *Searcher) resetStats() {
	s.stats = Stats{}
}

// Stats returns the counters of the most recent search.
func (s *Searcher) Stats() Stats { return s.stats }

// DumpStats writes the counters of the most recent search as UCI info strings.
func (s *Searcher) DumpStats(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.stats.Nodes)
	fmt.Fprintf(w, "info string   Leaves: %d\n", s.stats.Leaves)
	fmt.Fprintf(w, "info string   Mates: %d\n", s.stats.Mates)
	fmt.Fprintf(w, "info string   Stalemates: %d\n", s.stats.Stalemates)
}
