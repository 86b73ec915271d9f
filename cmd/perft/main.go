package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"

	mg "shrine-engine/shrinemg"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Compare per-move node counts against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := mg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		if diffs := verifyDivide(pos, *depth); diffs > 0 {
			fmt.Printf("%d root moves disagree\n", diffs)
			os.Exit(1)
		}
		fmt.Println("ok")
		return
	}

	if *divide {
		for _, line := range mg.DivideLines(mg.PerftDivide(pos.Board, pos.Side, *depth)) {
			fmt.Println(line)
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += mg.Perft(pos.Board, pos.Side, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// verifyDivide prints every root move whose subtree count differs from
// dragontoothmg's and returns how many did. The position is written back out
// without castling rights first, since this generator never castles.
func verifyDivide(pos mg.Position, depth int) int {
	ref := dragontoothmg.ParseFen(pos.FEN())
	want := make(map[string]uint64)
	for _, m := range ref.GenerateLegalMoves() {
		undo := ref.Apply(m)
		want[m.String()] = dragonPerft(&ref, depth-1)
		undo()
	}

	diffs := 0
	got := mg.PerftDivide(pos.Board, pos.Side, depth)
	for m, n := range got {
		if w, ok := want[m.String()]; !ok || w != n {
			fmt.Printf("%s: ours %d, dragontoothmg %d\n", m, n, w)
			diffs++
		}
		delete(want, m.String())
	}
	for text, n := range want {
		fmt.Printf("%s: missing, dragontoothmg %d\n", text, n)
		diffs++
	}
	return diffs
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		undo()
	}
	return nodes
}
